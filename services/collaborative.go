package services

import (
	"context"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// collaborativeStrategy recommends properties favourited by users who
// share favourites with the target user. Neighbors are ranked by how
// many favourites they share, capped to keep the query bounded;
// candidates are then ranked by overall favourite count. This is
// user-user collaborative filtering without a similarity matrix, which
// is enough at this data scale.
type collaborativeStrategy struct {
	store  RecommendationStore
	config RecommendationConfig
}

func (s *collaborativeStrategy) name() string { return "collaborative" }

func (s *collaborativeStrategy) recommend(ctx context.Context, rctx recommendContext, limit int, excludeIDs []primitive.ObjectID) ([]models.Property, error) {
	if rctx.UserID == nil {
		return nil, nil
	}

	ownFavourites, err := s.store.FindFavouritePropertyIDs(ctx, *rctx.UserID)
	if err != nil {
		return nil, err
	}
	if len(ownFavourites) == 0 {
		return nil, nil
	}

	neighbors, err := s.store.CountSharedFavourites(ctx, ownFavourites, *rctx.UserID, s.config.NeighborCap)
	if err != nil {
		return nil, err
	}
	if len(neighbors) == 0 {
		return nil, nil
	}

	neighborIDs := make([]primitive.ObjectID, 0, len(neighbors))
	for _, n := range neighbors {
		neighborIDs = append(neighborIDs, n.UserID)
	}

	// Never recommend what the user already favourited.
	exclude := make([]primitive.ObjectID, 0, len(ownFavourites)+len(excludeIDs))
	exclude = append(exclude, ownFavourites...)
	exclude = append(exclude, excludeIDs...)

	return s.store.FindAvailableFavouritedBy(ctx, neighborIDs, exclude, limit)
}
