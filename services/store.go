package services

import (
	"context"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NeighborOverlap is a user who shares favourited properties with the
// target user, with the number of shared properties.
type NeighborOverlap struct {
	UserID      primitive.ObjectID `bson:"_id"`
	SharedCount int64              `bson:"sharedCount"`
}

type PriceRange struct {
	Min float64
	Max float64
}

// PropertyMatch describes an attribute match against available
// properties. Branches are combined with OR: a property qualifies by
// city, by property type, or by price band. When Bedrooms is set the
// price branch additionally requires an exact bedroom count, which is
// how similar-property lookup differs from content-based matching.
type PropertyMatch struct {
	Cities        []string
	PropertyTypes []string
	PriceRange    *PriceRange
	Bedrooms      *int
}

// RecommendationStore is the read-only data access port the
// recommendation engine runs against. Implementations must only ever
// return properties with status "available" from the candidate
// queries, and must honor exclude lists exactly.
type RecommendationStore interface {
	// FindFavouritePropertyIDs returns every property id the user has
	// favourited.
	FindFavouritePropertyIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)

	// CountSharedFavourites finds other users who favourited any of the
	// given properties, ordered by descending shared count, capped to topN.
	CountSharedFavourites(ctx context.Context, propertyIDs []primitive.ObjectID, excludeUserID primitive.ObjectID, topN int) ([]NeighborOverlap, error)

	// FindAvailableFavouritedBy returns available properties favourited
	// by at least one of the given users, excluding excludeIDs, ordered
	// by descending favourite count across all users.
	FindAvailableFavouritedBy(ctx context.Context, userIDs []primitive.ObjectID, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error)

	// FindRecentFavouriteProperties returns the properties behind the
	// user's most recent favourites, newest favourite first.
	FindRecentFavouriteProperties(ctx context.Context, userID primitive.ObjectID, count int) ([]models.Property, error)

	// FindAvailableMatching returns available properties matching any
	// branch of the given match, excluding excludeIDs.
	FindAvailableMatching(ctx context.Context, match PropertyMatch, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error)

	// FindPopular returns available properties ordered by descending
	// favourite count, then newest first, excluding excludeIDs.
	FindPopular(ctx context.Context, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error)

	// FindPropertyByID returns the property or nil when it does not exist.
	FindPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
}
