package services

import (
	"math"
	"testing"

	"github.com/Sudan08/wiseai-assement/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDerivePreferencesDistinctSets(t *testing.T) {
	properties := []models.Property{
		{City: "NYC", PropertyType: "apartment", Price: 100},
		{City: "NYC", PropertyType: "house", Price: 200},
		{City: "LA", PropertyType: "apartment", Price: 300},
	}

	prefs := derivePreferences(properties, 0.7, 1.3)

	if len(prefs.Cities) != 2 {
		t.Errorf("cities: got %v, want 2 distinct entries", prefs.Cities)
	}
	if len(prefs.PropertyTypes) != 2 {
		t.Errorf("property types: got %v, want 2 distinct entries", prefs.PropertyTypes)
	}
}

func TestDerivePreferencesPriceBand(t *testing.T) {
	properties := []models.Property{
		{City: "NYC", PropertyType: "apartment", Price: 100},
		{City: "NYC", PropertyType: "apartment", Price: 300},
	}

	prefs := derivePreferences(properties, 0.7, 1.3)

	// Mean price 200, band 140-260.
	if !almostEqual(prefs.PriceRange.Min, 140) {
		t.Errorf("min: got %.2f, want 140", prefs.PriceRange.Min)
	}
	if !almostEqual(prefs.PriceRange.Max, 260) {
		t.Errorf("max: got %.2f, want 260", prefs.PriceRange.Max)
	}
}

func TestDerivePreferencesSingleProperty(t *testing.T) {
	properties := []models.Property{
		{City: "NYC", PropertyType: "studio", Price: 1000},
	}

	prefs := derivePreferences(properties, 0.7, 1.3)

	if !almostEqual(prefs.PriceRange.Min, 700) {
		t.Errorf("min: got %.2f, want 700", prefs.PriceRange.Min)
	}
	if !almostEqual(prefs.PriceRange.Max, 1300) {
		t.Errorf("max: got %.2f, want 1300", prefs.PriceRange.Max)
	}
	if len(prefs.Cities) != 1 || prefs.Cities[0] != "NYC" {
		t.Errorf("cities: got %v, want [NYC]", prefs.Cities)
	}
}

func TestDerivePreferencesEmptyInput(t *testing.T) {
	prefs := derivePreferences(nil, 0.7, 1.3)

	if len(prefs.Cities) != 0 || len(prefs.PropertyTypes) != 0 {
		t.Errorf("empty input should derive empty sets, got %v / %v", prefs.Cities, prefs.PropertyTypes)
	}
	if prefs.PriceRange.Min != 0 || prefs.PriceRange.Max != 0 {
		t.Errorf("empty input should leave the band zero, got %+v", prefs.PriceRange)
	}
}
