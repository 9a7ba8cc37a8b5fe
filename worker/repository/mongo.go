package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNotebookNotFound = errors.New("notebook not found")
)

// Repository is the worker's write-side view of the document store. Updates
// merge the given fields into the stored document.
type Repository interface {
	UpdateTask(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateNotebook(ctx context.Context, id string, fields map[string]interface{}) error
}

type MongoRepo struct {
	tasks     *mongo.Collection
	notebooks *mongo.Collection
}

func Connect(uri, database string) (*MongoRepo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(database)
	return &MongoRepo{
		tasks:     db.Collection("tasks"),
		notebooks: db.Collection("notebooks"),
	}, nil
}

func (r *MongoRepo) UpdateTask(ctx context.Context, id string, fields map[string]interface{}) error {
	return mergeFields(ctx, r.tasks, id, fields, ErrTaskNotFound)
}

func (r *MongoRepo) UpdateNotebook(ctx context.Context, id string, fields map[string]interface{}) error {
	return mergeFields(ctx, r.notebooks, id, fields, ErrNotebookNotFound)
}

func mergeFields(ctx context.Context, coll *mongo.Collection, id string, fields map[string]interface{}, notFound error) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return notFound
	}
	return nil
}
