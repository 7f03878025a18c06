package handlers

import (
	"net/http"
	"time"

	"github.com/Sudan08/wiseai-assement/config"
	"github.com/Sudan08/wiseai-assement/models"
	"github.com/Sudan08/wiseai-assement/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavouriteController struct {
	collection         *mongo.Collection
	userCollection     *mongo.Collection
	propertyCollection *mongo.Collection
}

func NewFavouriteController() *FavouriteController {
	return &FavouriteController{
		collection:         config.GetCollection(config.CollectionName("MONGODB_COLLECTION_FAVOURITES", "favourites")),
		userCollection:     config.GetCollection(config.CollectionName("MONGODB_COLLECTION_USERS", "users")),
		propertyCollection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
	}
}

func (fc *FavouriteController) ListFavourites(c echo.Context) error {
	ctx := c.Request().Context()

	query := bson.M{}
	if userID := c.QueryParam("userId"); userID != "" {
		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
		}
		query["userId"] = id
	}
	if propertyID := c.QueryParam("propertyId"); propertyID != "" {
		id, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
		}
		query["propertyId"] = id
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := fc.collection.Find(ctx, query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favourites"})
	}
	defer cursor.Close(ctx)

	favourites := []models.Favourite{}
	for cursor.Next(ctx) {
		var favourite models.Favourite
		if err := cursor.Decode(&favourite); err != nil {
			continue
		}
		favourites = append(favourites, favourite)
	}
	return c.JSON(http.StatusOK, favourites)
}

func (fc *FavouriteController) GetFavourite(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid favourite ID"})
	}

	var favourite models.Favourite
	err = fc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&favourite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Favourite not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favourite"})
	}
	return c.JSON(http.StatusOK, favourite)
}

func (fc *FavouriteController) CreateFavourite(c echo.Context) error {
	var req models.CreateFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}
	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()

	count, err := fc.userCollection.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create favourite"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	count, err = fc.propertyCollection.CountDocuments(ctx, bson.M{"_id": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create favourite"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	count, err = fc.collection.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create favourite"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Property already in favourites"})
	}

	favourite := models.Favourite{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	if _, err := fc.collection.InsertOne(ctx, favourite); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create favourite"})
	}
	return c.JSON(http.StatusCreated, favourite)
}

func (fc *FavouriteController) DeleteFavourite(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid favourite ID"})
	}

	result, err := fc.collection.DeleteOne(c.Request().Context(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete favourite"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Favourite not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favourite removed successfully"})
}

func (fc *FavouriteController) DeleteFavouriteByUserAndProperty(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}
	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	result, err := fc.collection.DeleteOne(c.Request().Context(), bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete favourite"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Favourite not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favourite removed successfully"})
}
