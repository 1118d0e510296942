// db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/clinova/api/config"
	logger "github.com/clinova/api/logging"
)

var (
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
)

func InitMongo() error {
	uri := config.GetString("mongo.uri")
	logger.Info("Connecting to MongoDB", zap.String("uri", uri))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(30*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(config.GetString("mongo.database"))

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	logger.Info("Successfully connected to MongoDB")
	return nil
}

// ensureIndexes creates the unique email index on users plus the lookup
// indexes the list endpoints rely on.
func ensureIndexes(ctx context.Context) error {
	_, err := MongoDatabase.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure unique email index: %w", err)
	}

	_, err = MongoDatabase.Collection("schedules").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure schedule doctor index: %w", err)
	}

	for coll, key := range map[string]string{
		"visits":   "patientId",
		"bookings": "doctorId",
	} {
		_, err = MongoDatabase.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: key, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to ensure %s index: %w", coll, err)
		}
	}

	return nil
}

func CloseMongo() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.Error("Error closing MongoDB connection", zap.Error(err))
		} else {
			logger.Info("MongoDB connection closed successfully")
		}
	}
}
