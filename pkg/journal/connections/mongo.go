package dbconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JournalDBConfig struct {
	ConnectionString string
	DatabaseName     string
}

type JournalDBProductionConnection struct {
	config JournalDBConfig
	client *mongo.Client
}

var _ JournalDBConnection = (*JournalDBProductionConnection)(nil)

func NewJournalDBProductionConnection(ctx context.Context, config JournalDBConfig) (*JournalDBProductionConnection, error) {
	if config.DatabaseName == "" {
		config.DatabaseName = "blitline"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return &JournalDBProductionConnection{config, client}, nil
}

func (c *JournalDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database(c.config.DatabaseName).Collection(collectionName)
}

func (c *JournalDBProductionConnection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
