package services

import "github.com/Sudan08/wiseai-assement/models"

// PreferenceProfile is a user's implicit taste, summarized from their
// recent favourites.
type PreferenceProfile struct {
	Cities        []string
	PropertyTypes []string
	PriceRange    PriceRange
}

// derivePreferences builds a profile from a sample of favourited
// properties: the distinct cities and property types seen, and a price
// band around the sample's mean. The band is a heuristic, not a
// statistical model; no outlier rejection happens. A single-property
// sample collapses the band to that one price scaled by the factors.
func derivePreferences(properties []models.Property, bandLow, bandHigh float64) PreferenceProfile {
	cities := make([]string, 0, len(properties))
	seenCities := make(map[string]bool)
	propertyTypes := make([]string, 0, len(properties))
	seenTypes := make(map[string]bool)

	var priceSum float64
	for _, p := range properties {
		if !seenCities[p.City] {
			seenCities[p.City] = true
			cities = append(cities, p.City)
		}
		if !seenTypes[p.PropertyType] {
			seenTypes[p.PropertyType] = true
			propertyTypes = append(propertyTypes, p.PropertyType)
		}
		priceSum += p.Price
	}

	var priceRange PriceRange
	if len(properties) > 0 {
		avg := priceSum / float64(len(properties))
		priceRange = PriceRange{Min: avg * bandLow, Max: avg * bandHigh}
	}

	return PreferenceProfile{
		Cities:        cities,
		PropertyTypes: propertyTypes,
		PriceRange:    priceRange,
	}
}
