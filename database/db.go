package database

import (
	"context"
	"fmt"
	"time"

	"statutesync/config"
	"statutesync/database/engine"
	"statutesync/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectMongo opens and pings a MongoDB connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// OpenEngine builds the storage engine named by cfg.StorageEngine.
func OpenEngine(ctx context.Context, cfg config.Config) (engine.Engine, error) {
	logger := utils.GetLogger()

	switch cfg.StorageEngine {
	case "memory":
		return engine.NewMemory(), nil
	case "file":
		f, err := engine.NewFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "mongo":
		client, err := ConnectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB successfully!", zap.String("database", cfg.MongoDatabase))
		return engine.NewMongo(client, cfg.MongoDatabase), nil
	case "redis":
		client, err := utils.NewRedisClient(cfg.RedisStoreDB)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to Redis store", zap.Int("db", cfg.RedisStoreDB))
		return engine.NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unsupported storage engine %q", cfg.StorageEngine)
	}
}
