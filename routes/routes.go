package routes

import (
	"net/http"

	"github.com/Sudan08/wiseai-assement/handlers"
	"github.com/Sudan08/wiseai-assement/middleware"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	userController := handlers.NewUserController()
	propertyController := handlers.NewPropertyController()
	favouriteController := handlers.NewFavouriteController()
	imageController := handlers.NewImageController()
	recommendationController := handlers.NewRecommendationController()

	// Auth
	api.POST("/register", userController.Register)
	api.POST("/login", userController.Login)
	api.POST("/refresh", userController.Refresh)

	// Users
	users := api.Group("/users", middleware.JWTMiddleware())
	users.GET("", userController.GetAllUsers)
	users.GET("/:id", userController.GetUser)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)

	// Properties. The recommendations route must stay above the :id
	// routes in spirit; echo matches static segments before params.
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/recommendations", recommendationController.GetRecommendations, middleware.OptionalJWTMiddleware())
	api.GET("/properties/:id", propertyController.GetProperty)
	api.GET("/properties/:id/similar", recommendationController.GetSimilarProperties)
	api.POST("/properties", propertyController.CreateProperty, middleware.JWTMiddleware())
	api.PUT("/properties/:id", propertyController.UpdateProperty, middleware.JWTMiddleware())
	api.DELETE("/properties/:id", propertyController.DeleteProperty, middleware.JWTMiddleware())

	// Favourites
	api.GET("/favourites", favouriteController.ListFavourites)
	api.GET("/favourites/:id", favouriteController.GetFavourite)
	api.POST("/favourites", favouriteController.CreateFavourite, middleware.JWTMiddleware())
	api.DELETE("/favourites/:id", favouriteController.DeleteFavourite, middleware.JWTMiddleware())
	api.DELETE("/favourites/user/:userId/property/:propertyId", favouriteController.DeleteFavouriteByUserAndProperty, middleware.JWTMiddleware())

	// Images
	api.POST("/images/upload", imageController.UploadImage, middleware.JWTMiddleware())
}
