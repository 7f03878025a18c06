package services

import (
	"context"
	"sort"
	"time"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore mirrors the MongoDB store's query semantics in memory:
// candidate queries only ever return available properties, exclusions
// are honored exactly, and popularity sorting is favourite count
// descending with creation time as tie-break.
type fakeStore struct {
	properties []models.Property
	favourites []models.Favourite
}

func (f *fakeStore) favouriteCount(propertyID primitive.ObjectID) int64 {
	var count int64
	for _, fav := range f.favourites {
		if fav.PropertyID == propertyID {
			count++
		}
	}
	return count
}

func idIn(id primitive.ObjectID, ids []primitive.ObjectID) bool {
	for _, other := range ids {
		if id == other {
			return true
		}
	}
	return false
}

func (f *fakeStore) sortByPopularity(properties []models.Property) {
	sort.SliceStable(properties, func(i, j int) bool {
		ci, cj := f.favouriteCount(properties[i].ID), f.favouriteCount(properties[j].ID)
		if ci != cj {
			return ci > cj
		}
		return properties[i].CreatedAt.After(properties[j].CreatedAt)
	})
}

func truncate(properties []models.Property, limit int) []models.Property {
	if len(properties) > limit {
		return properties[:limit]
	}
	return properties
}

func (f *fakeStore) FindFavouritePropertyIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, fav := range f.favourites {
		if fav.UserID == userID {
			ids = append(ids, fav.PropertyID)
		}
	}
	return ids, nil
}

func (f *fakeStore) CountSharedFavourites(ctx context.Context, propertyIDs []primitive.ObjectID, excludeUserID primitive.ObjectID, topN int) ([]NeighborOverlap, error) {
	counts := map[primitive.ObjectID]int64{}
	for _, fav := range f.favourites {
		if fav.UserID != excludeUserID && idIn(fav.PropertyID, propertyIDs) {
			counts[fav.UserID]++
		}
	}
	neighbors := make([]NeighborOverlap, 0, len(counts))
	for userID, count := range counts {
		neighbors = append(neighbors, NeighborOverlap{UserID: userID, SharedCount: count})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].SharedCount > neighbors[j].SharedCount
	})
	if len(neighbors) > topN {
		neighbors = neighbors[:topN]
	}
	return neighbors, nil
}

func (f *fakeStore) FindAvailableFavouritedBy(ctx context.Context, userIDs []primitive.ObjectID, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	favouritedByNeighbor := map[primitive.ObjectID]bool{}
	for _, fav := range f.favourites {
		if idIn(fav.UserID, userIDs) {
			favouritedByNeighbor[fav.PropertyID] = true
		}
	}
	var result []models.Property
	for _, p := range f.properties {
		if p.Status == models.PropertyStatusAvailable && favouritedByNeighbor[p.ID] && !idIn(p.ID, excludeIDs) {
			result = append(result, p)
		}
	}
	f.sortByPopularity(result)
	return truncate(result, limit), nil
}

func (f *fakeStore) FindRecentFavouriteProperties(ctx context.Context, userID primitive.ObjectID, count int) ([]models.Property, error) {
	var own []models.Favourite
	for _, fav := range f.favourites {
		if fav.UserID == userID {
			own = append(own, fav)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreatedAt.After(own[j].CreatedAt)
	})
	if len(own) > count {
		own = own[:count]
	}
	var result []models.Property
	for _, fav := range own {
		for _, p := range f.properties {
			if p.ID == fav.PropertyID {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

func (f *fakeStore) FindAvailableMatching(ctx context.Context, match PropertyMatch, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	matches := func(p models.Property) bool {
		for _, city := range match.Cities {
			if p.City == city {
				return true
			}
		}
		for _, propertyType := range match.PropertyTypes {
			if p.PropertyType == propertyType {
				return true
			}
		}
		if match.PriceRange != nil && p.Price >= match.PriceRange.Min && p.Price <= match.PriceRange.Max {
			if match.Bedrooms == nil || p.Bedrooms == *match.Bedrooms {
				return true
			}
		}
		return false
	}

	var result []models.Property
	for _, p := range f.properties {
		if p.Status == models.PropertyStatusAvailable && !idIn(p.ID, excludeIDs) && matches(p) {
			result = append(result, p)
		}
	}
	f.sortByPopularity(result)
	return truncate(result, limit), nil
}

func (f *fakeStore) FindPopular(ctx context.Context, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	var result []models.Property
	for _, p := range f.properties {
		if p.Status == models.PropertyStatusAvailable && !idIn(p.ID, excludeIDs) {
			result = append(result, p)
		}
	}
	f.sortByPopularity(result)
	return truncate(result, limit), nil
}

func (f *fakeStore) FindPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

// fixture helpers

func newProperty(title, city, propertyType string, price float64, bedrooms int, status string, createdAt time.Time) models.Property {
	return models.Property{
		ID:           primitive.NewObjectID(),
		Title:        title,
		City:         city,
		PropertyType: propertyType,
		Price:        price,
		Bedrooms:     bedrooms,
		Status:       status,
		CreatedAt:    createdAt,
	}
}

func favourite(userID primitive.ObjectID, propertyID primitive.ObjectID, createdAt time.Time) models.Favourite {
	return models.Favourite{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  createdAt,
	}
}
