package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusPending   = "pending"
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title" validate:"required,max=255"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=5000"`
	Price        float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Address      string             `bson:"address" json:"address" validate:"required,max=500"`
	City         string             `bson:"city" json:"city" validate:"required,max=100"`
	State        string             `bson:"state" json:"state" validate:"required,max=100"`
	ZipCode      string             `bson:"zipCode" json:"zipCode" validate:"required,max=20"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms" validate:"min=0"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms" validate:"min=0"`
	Area         float64            `bson:"area" json:"area" validate:"required,gt=0"`
	PropertyType string             `bson:"propertyType" json:"propertyType" validate:"required,oneof=apartment house condo villa townhouse studio"`
	Status       string             `bson:"status" json:"status" validate:"omitempty,oneof=available sold rented pending"`
	Images       []string           `bson:"images" json:"images"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	// FavouriteCount is aggregated at query time, never stored.
	FavouriteCount int64     `bson:"favouriteCount,omitempty" json:"favouriteCount"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UpdatePropertyRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string   `json:"description" validate:"omitempty,max=5000"`
	Price        *float64  `json:"price" validate:"omitempty,gt=0"`
	Address      *string   `json:"address" validate:"omitempty,min=1,max=500"`
	City         *string   `json:"city" validate:"omitempty,min=1,max=100"`
	State        *string   `json:"state" validate:"omitempty,min=1,max=100"`
	ZipCode      *string   `json:"zipCode" validate:"omitempty,min=1,max=20"`
	Bedrooms     *int      `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms    *int      `json:"bathrooms" validate:"omitempty,min=0"`
	Area         *float64  `json:"area" validate:"omitempty,gt=0"`
	PropertyType *string   `json:"propertyType" validate:"omitempty,oneof=apartment house condo villa townhouse studio"`
	Status       *string   `json:"status" validate:"omitempty,oneof=available sold rented pending"`
	Images       *[]string `json:"images"`
}

type PropertyListResponse struct {
	Data       []Property `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int64      `json:"totalPages"`
}
