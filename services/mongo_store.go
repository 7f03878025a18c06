package services

import (
	"context"

	"github.com/Sudan08/wiseai-assement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRecommendationStore answers the engine's queries from the
// properties and favourites collections. Favourite counts are computed
// per query with a $lookup; nothing denormalized is stored.
type MongoRecommendationStore struct {
	properties *mongo.Collection
	favourites *mongo.Collection
}

func NewMongoRecommendationStore(properties, favourites *mongo.Collection) *MongoRecommendationStore {
	return &MongoRecommendationStore{
		properties: properties,
		favourites: favourites,
	}
}

func (s *MongoRecommendationStore) FindFavouritePropertyIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := s.favourites.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var favourite models.Favourite
		if err := cursor.Decode(&favourite); err != nil {
			continue
		}
		ids = append(ids, favourite.PropertyID)
	}
	return ids, cursor.Err()
}

func (s *MongoRecommendationStore) CountSharedFavourites(ctx context.Context, propertyIDs []primitive.ObjectID, excludeUserID primitive.ObjectID, topN int) ([]NeighborOverlap, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"propertyId": bson.M{"$in": propertyIDs},
			"userId":     bson.M{"$ne": excludeUserID},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$userId",
			"sharedCount": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sharedCount", Value: -1}}}},
		{{Key: "$limit", Value: topN}},
	}

	cursor, err := s.favourites.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var neighbors []NeighborOverlap
	if err := cursor.All(ctx, &neighbors); err != nil {
		return nil, err
	}
	return neighbors, nil
}

func (s *MongoRecommendationStore) FindAvailableFavouritedBy(ctx context.Context, userIDs []primitive.ObjectID, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id":    bson.M{"$nin": excludeIDs},
			"status": models.PropertyStatusAvailable,
		}}},
	}
	pipeline = append(pipeline, s.favouriteCountStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$match", Value: bson.M{
			"favs.userId": bson.M{"$in": userIDs},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "favouriteCount", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"favs": 0}}},
	)

	return s.aggregateProperties(ctx, s.properties, pipeline)
}

func (s *MongoRecommendationStore) FindRecentFavouriteProperties(ctx context.Context, userID primitive.ObjectID, count int) ([]models.Property, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: count}},
		{{Key: "$lookup", Value: bson.M{
			"from":         s.properties.Name(),
			"localField":   "propertyId",
			"foreignField": "_id",
			"as":           "property",
		}}},
		{{Key: "$unwind", Value: "$property"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$property"}}},
	}

	return s.aggregateProperties(ctx, s.favourites, pipeline)
}

func (s *MongoRecommendationStore) FindAvailableMatching(ctx context.Context, match PropertyMatch, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	var or []bson.M
	if len(match.Cities) > 0 {
		or = append(or, bson.M{"city": bson.M{"$in": match.Cities}})
	}
	if len(match.PropertyTypes) > 0 {
		or = append(or, bson.M{"propertyType": bson.M{"$in": match.PropertyTypes}})
	}
	if match.PriceRange != nil {
		priceBranch := bson.M{
			"price": bson.M{"$gte": match.PriceRange.Min, "$lte": match.PriceRange.Max},
		}
		if match.Bedrooms != nil {
			priceBranch["bedrooms"] = *match.Bedrooms
		}
		or = append(or, priceBranch)
	}
	if len(or) == 0 {
		return []models.Property{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id":    bson.M{"$nin": excludeIDs},
			"status": models.PropertyStatusAvailable,
			"$or":    or,
		}}},
	}
	pipeline = append(pipeline, s.favouriteCountStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "favouriteCount", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"favs": 0}}},
	)

	return s.aggregateProperties(ctx, s.properties, pipeline)
}

func (s *MongoRecommendationStore) FindPopular(ctx context.Context, excludeIDs []primitive.ObjectID, limit int) ([]models.Property, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id":    bson.M{"$nin": excludeIDs},
			"status": models.PropertyStatusAvailable,
		}}},
	}
	pipeline = append(pipeline, s.favouriteCountStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "favouriteCount", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{"favs": 0}}},
	)

	return s.aggregateProperties(ctx, s.properties, pipeline)
}

func (s *MongoRecommendationStore) FindPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := s.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// favouriteCountStages joins each property with its favourites and
// adds a favouriteCount field for popularity sorting. The favs array
// stays in the document so callers can match on it before projecting
// it away.
func (s *MongoRecommendationStore) favouriteCountStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         s.favourites.Name(),
			"localField":   "_id",
			"foreignField": "propertyId",
			"as":           "favs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"favouriteCount": bson.M{"$size": "$favs"},
		}}},
	}
}

func (s *MongoRecommendationStore) aggregateProperties(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]models.Property, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}
