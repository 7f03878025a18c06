package config

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

func ConnectDB() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "wiseai"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("failed to ping MongoDB", "error", err)
		os.Exit(1)
	}

	DB = client.Database(dbName)
	slog.Info("connected to MongoDB", "database", dbName)

	ensureIndexes(ctx)
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// ensureIndexes creates the unique (userId, propertyId) index the
// favourite uniqueness guarantee depends on.
func ensureIndexes(ctx context.Context) {
	favourites := GetCollection(CollectionName("MONGODB_COLLECTION_FAVOURITES", "favourites"))
	_, err := favourites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "propertyId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		slog.Warn("failed to create favourites index", "error", err)
	}

	users := GetCollection(CollectionName("MONGODB_COLLECTION_USERS", "users"))
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		slog.Warn("failed to create users index", "error", err)
	}
}

func CollectionName(envKey, fallback string) string {
	if name := os.Getenv(envKey); name != "" {
		return name
	}
	return fallback
}
