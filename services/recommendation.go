package services

import (
	"context"
	"fmt"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationConfig carries the tuning knobs of the engine so tests
// can override them instead of chasing hardcoded literals.
type RecommendationConfig struct {
	// DefaultLimit is used when a caller passes a non-positive limit.
	DefaultLimit int
	// NeighborCap bounds how many similar users the collaborative
	// strategy considers.
	NeighborCap int
	// RecentFavourites is how many of the newest favourites feed the
	// preference profile.
	RecentFavourites int
	// PriceBandLow/High scale the mean favourite price into the
	// content-based price band.
	PriceBandLow  float64
	PriceBandHigh float64
	// SimilarPriceLow/High scale a reference property's price into the
	// similar-property price band.
	SimilarPriceLow  float64
	SimilarPriceHigh float64
}

func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		DefaultLimit:     5,
		NeighborCap:      10,
		RecentFavourites: 5,
		PriceBandLow:     0.7,
		PriceBandHigh:    1.3,
		SimilarPriceLow:  0.8,
		SimilarPriceHigh: 1.2,
	}
}

// recommendContext carries per-request identity through the strategy
// chain. UserID is nil for anonymous requests.
type recommendContext struct {
	UserID *primitive.ObjectID
}

// strategy is one source of recommendation candidates. Strategies with
// no signal for the given context return an empty slice, not an error,
// so the orchestrator can fall through to the next one. Every strategy
// must omit excludeIDs from its output and return at most limit
// properties, all with status "available".
type strategy interface {
	name() string
	recommend(ctx context.Context, rctx recommendContext, limit int, excludeIDs []primitive.ObjectID) ([]models.Property, error)
}

// RecommendationService blends collaborative filtering, content-based
// filtering and popularity ranking into one bounded recommendation
// list. Strategies run in priority order; each later strategy only
// fills whatever quota the earlier ones left open and never repeats
// their picks.
type RecommendationService struct {
	store      RecommendationStore
	config     RecommendationConfig
	strategies []strategy
}

func NewRecommendationService(store RecommendationStore, config RecommendationConfig) *RecommendationService {
	return &RecommendationService{
		store:  store,
		config: config,
		strategies: []strategy{
			&collaborativeStrategy{store: store, config: config},
			&contentBasedStrategy{store: store, config: config},
			&popularStrategy{store: store},
		},
	}
}

// GetRecommendations returns up to limit available properties for the
// user, none of which appear in excludePropertyIDs. userID is nil for
// anonymous callers, who get the pure popularity ranking. Results are
// read-only snapshots; favouriting changes future results, so callers
// must not cache responses across user actions.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID *primitive.ObjectID, limit int, excludePropertyIDs []primitive.ObjectID) ([]models.Property, error) {
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}

	rctx := recommendContext{UserID: userID}

	exclude := make([]primitive.ObjectID, len(excludePropertyIDs))
	copy(exclude, excludePropertyIDs)
	seen := make(map[primitive.ObjectID]bool, len(exclude)+limit)
	for _, id := range exclude {
		seen[id] = true
	}

	results := make([]models.Property, 0, limit)
	for _, st := range s.strategies {
		if len(results) >= limit {
			break
		}
		picked, err := st.recommend(ctx, rctx, limit-len(results), exclude)
		if err != nil {
			return nil, fmt.Errorf("%s strategy: %w", st.name(), err)
		}
		for _, p := range picked {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			exclude = append(exclude, p.ID)
			results = append(results, p)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// GetSimilarProperties returns up to limit available properties
// resembling the given one: same city, same property type, or a price
// within the similarity band combined with the same bedroom count. A
// missing reference property yields an empty list, not an error.
func (s *RecommendationService) GetSimilarProperties(ctx context.Context, propertyID primitive.ObjectID, limit int) ([]models.Property, error) {
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}

	property, err := s.store.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return []models.Property{}, nil
	}

	bedrooms := property.Bedrooms
	match := PropertyMatch{
		Cities:        []string{property.City},
		PropertyTypes: []string{property.PropertyType},
		PriceRange: &PriceRange{
			Min: property.Price * s.config.SimilarPriceLow,
			Max: property.Price * s.config.SimilarPriceHigh,
		},
		Bedrooms: &bedrooms,
	}

	return s.store.FindAvailableMatching(ctx, match, []primitive.ObjectID{property.ID}, limit)
}
