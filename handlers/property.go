package handlers

import (
	"math"
	"net/http"
	"strconv"
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

const propertyListCacheTTL = 30 * time.Second

type PropertyController struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	return &PropertyController{
		collection:     config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
		userCollection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_USERS", "users")),
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	count, err := pc.userCollection.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	property.ID = primitive.NewObjectID()
	property.UserID = userID
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}
	if property.Images == nil {
		property.Images = []string{}
	}
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	if _, err := pc.collection.InsertOne(ctx, property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	utils.InvalidateCached(ctx, "properties:*")

	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	var property models.Property
	err = pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()

	var property models.Property
	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if property.UserID != userID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to update this property"})
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.City != nil {
		update["city"] = *req.City
	}
	if req.State != nil {
		update["state"] = *req.State
	}
	if req.ZipCode != nil {
		update["zipCode"] = *req.ZipCode
	}
	if req.Bedrooms != nil {
		update["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		update["bathrooms"] = *req.Bathrooms
	}
	if req.Area != nil {
		update["area"] = *req.Area
	}
	if req.PropertyType != nil {
		update["propertyType"] = *req.PropertyType
	}
	if req.Status != nil {
		update["status"] = *req.Status
	}
	if req.Images != nil {
		update["images"] = *req.Images
	}
	if len(update) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "At least one field is required for update"})
	}
	update["updatedAt"] = time.Now()

	if _, err := pc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	utils.InvalidateCached(ctx, "properties:*")

	if err := pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()

	var property models.Property
	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if property.UserID != userID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to delete this property"})
	}

	if _, err := pc.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}

	utils.InvalidateCached(ctx, "properties:*")

	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := map[string]string{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			queryParams[key] = values[0]
		}
	}
	cacheKey := utils.GenerateQueryCacheKey("properties", queryParams)
	var cached models.PropertyListResponse
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	query := bson.M{}

	if search := c.QueryParam("search"); search != "" {
		pattern := bson.M{"$regex": search, "$options": "i"}
		query["$or"] = []bson.M{
			{"title": pattern},
			{"description": pattern},
			{"city": pattern},
			{"address": pattern},
		}
	}
	if city := c.QueryParam("city"); city != "" {
		query["city"] = city
	}
	if propertyType := c.QueryParam("propertyType"); propertyType != "" {
		query["propertyType"] = propertyType
	}
	if status := c.QueryParam("status"); status != "" {
		query["status"] = status
	}
	if userID := c.QueryParam("userId"); userID != "" {
		if id, err := primitive.ObjectIDFromHex(userID); err == nil {
			query["userId"] = id
		}
	}
	if minPrice := c.QueryParam("minPrice"); minPrice != "" {
		if min, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query["price"] = bson.M{"$gte": min}
		}
	}
	if maxPrice := c.QueryParam("maxPrice"); maxPrice != "" {
		if max, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			if existing, ok := query["price"].(bson.M); ok {
				existing["$lte"] = max
			} else {
				query["price"] = bson.M{"$lte": max}
			}
		}
	}

	page := 1
	limit := 10
	if p := c.QueryParam("page"); p != "" {
		if num, err := strconv.Atoi(p); err == nil && num > 0 {
			page = num
		}
	}
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 0 {
			limit = num
		}
	}
	skip := (page - 1) * limit

	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortDir := -1
	if c.QueryParam("sortOrder") == "asc" {
		sortDir = 1
	}

	total, err := pc.collection.CountDocuments(ctx, query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortDir}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cursor, err := pc.collection.Find(ctx, query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var property models.Property
		if err := cursor.Decode(&property); err != nil {
			continue
		}
		properties = append(properties, property)
	}

	response := models.PropertyListResponse{
		Data:       properties,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
	}

	utils.SetCached(ctx, cacheKey, response, propertyListCacheTTL)

	return c.JSON(http.StatusOK, response)
}
