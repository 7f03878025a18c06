package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Sudan08/wiseai-assement/config"
	"github.com/Sudan08/wiseai-assement/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecommendationController struct {
	service *services.RecommendationService
}

func NewRecommendationController() *RecommendationController {
	store := services.NewMongoRecommendationStore(
		config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
		config.GetCollection(config.CollectionName("MONGODB_COLLECTION_FAVOURITES", "favourites")),
	)
	return &RecommendationController{
		service: services.NewRecommendationService(store, services.DefaultRecommendationConfig()),
	}
}

// GetRecommendations serves the personalized feed. Identity is
// optional: with a valid token the collaborative and content-based
// strategies run first, without one the popularity ranking answers
// alone. Favouriting changes future results, so responses are marked
// uncacheable.
func (rc *RecommendationController) GetRecommendations(c echo.Context) error {
	var userID *primitive.ObjectID
	if id, ok := c.Get("user_id").(primitive.ObjectID); ok {
		userID = &id
	}

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 0 {
			limit = num
		}
	}

	var excludeIDs []primitive.ObjectID
	if exclude := c.QueryParam("exclude"); exclude != "" {
		for _, raw := range strings.Split(exclude, ",") {
			id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID in exclude list"})
			}
			excludeIDs = append(excludeIDs, id)
		}
	}

	properties, err := rc.service.GetRecommendations(c.Request().Context(), userID, limit, excludeIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch recommendations"})
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, properties)
}

func (rc *RecommendationController) GetSimilarProperties(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 0 {
			limit = num
		}
	}

	properties, err := rc.service.GetSimilarProperties(c.Request().Context(), id, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch similar properties"})
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, properties)
}
