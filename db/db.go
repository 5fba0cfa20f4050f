package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ReviewsCollection *mongo.Collection
	Client            *mongo.Client
)

// InitMongo connects to the reviews database. Trips never touch Mongo;
// only the community review feed is persisted.
func InitMongo() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	ReviewsCollection = client.Database("wayfarer").Collection("reviews")
	log.Println("Connected to MongoDB")
	return nil
}
