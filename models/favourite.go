package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favourite links a user to a property. The (userId, propertyId) pair
// is unique, enforced by an index on the collection.
type Favourite struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateFavouriteRequest struct {
	UserID     string `json:"userId" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}
