package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reprova/reprova/internal/config"
)

// Mongo wraps the driver client and the application database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to MongoDB and verifies it with a ping
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
	}, nil
}

// Collection returns a handle to the named collection in the application database
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
