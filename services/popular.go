package services

import (
	"context"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// popularStrategy ranks available properties by favourite count, with
// newest listings breaking ties. It needs no user signal, so it serves
// anonymous requests and backfills whatever quota the personalized
// strategies leave open.
type popularStrategy struct {
	store RecommendationStore
}

func (s *popularStrategy) name() string { return "popular" }

func (s *popularStrategy) recommend(ctx context.Context, rctx recommendContext, limit int, excludeIDs []primitive.ObjectID) ([]models.Property, error) {
	return s.store.FindPopular(ctx, excludeIDs, limit)
}
