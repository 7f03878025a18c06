package services

import (
	"context"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// contentBasedStrategy recommends properties that look like what the
// user has been favouriting lately: same cities, same property types,
// or a price near the mean of the recent sample. A property qualifies
// on any one attribute.
type contentBasedStrategy struct {
	store  RecommendationStore
	config RecommendationConfig
}

func (s *contentBasedStrategy) name() string { return "content-based" }

func (s *contentBasedStrategy) recommend(ctx context.Context, rctx recommendContext, limit int, excludeIDs []primitive.ObjectID) ([]models.Property, error) {
	if rctx.UserID == nil {
		return nil, nil
	}

	recent, err := s.store.FindRecentFavouriteProperties(ctx, *rctx.UserID, s.config.RecentFavourites)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}

	preferences := derivePreferences(recent, s.config.PriceBandLow, s.config.PriceBandHigh)

	priceRange := preferences.PriceRange
	match := PropertyMatch{
		Cities:        preferences.Cities,
		PropertyTypes: preferences.PropertyTypes,
		PriceRange:    &priceRange,
	}

	return s.store.FindAvailableMatching(ctx, match, excludeIDs, limit)
}
