package main

import (
	"log/slog"
	"os"

	"github.com/Sudan08/wiseai-assement/config"
	"github.com/Sudan08/wiseai-assement/routes"
	"github.com/Sudan08/wiseai-assement/utils"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	config.ConnectDB()

	utils.InitRedis()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Static("/assets", "public/assets")

	routes.RegisterRoutes(e)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	slog.Info("server starting", "port", port)
	e.Logger.Fatal(e.Start(":" + port))
}
