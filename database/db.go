package db

import (
	"context"
	"time"

	"clothing-store/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is the shared MongoDB connection.
var Client *mongo.Client

var dbName string

var BrandCollection *mongo.Collection
var ClothingCollection *mongo.Collection
var UserCollection *mongo.Collection
var SaleCollection *mongo.Collection

// InitDB connects to MongoDB and binds the collection handles.
func InitDB(cfg *config.Config) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	Client = client
	dbName = cfg.DBName

	BrandCollection = OpenCollection("brands")
	ClothingCollection = OpenCollection("clothing")
	UserCollection = OpenCollection("users")
	SaleCollection = OpenCollection("sales")

	log.Info().Str("database", dbName).Msg("connected to MongoDB")
}

// DisconnectDB closes the connection.
func DisconnectDB() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect MongoDB")
		return
	}
	log.Info().Msg("disconnected from MongoDB")
}

// OpenCollection returns a collection handle by name.
func OpenCollection(collectionName string) *mongo.Collection {
	return Client.Database(dbName).Collection(collectionName)
}
