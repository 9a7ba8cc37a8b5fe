package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentDB struct {
	client *mongo.Client
	db     *mongo.Database
}

func ConnectMongo(uri, database string) (*DocumentDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &DocumentDB{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (d *DocumentDB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DocumentDB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
