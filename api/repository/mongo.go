package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"notebookGenerator/api/database"
	"notebookGenerator/api/models"
)

const (
	tasksCollection     = "tasks"
	notebooksCollection = "notebooks"
)

type MongoRepo struct {
	tasks     *mongo.Collection
	notebooks *mongo.Collection
}

func NewMongoRepo(db *database.DocumentDB) Repository {
	return &MongoRepo{
		tasks:     db.Collection(tasksCollection),
		notebooks: db.Collection(notebooksCollection),
	}
}

func (r *MongoRepo) CreateTask(ctx context.Context, task *models.Task) error {
	_, err := r.tasks.InsertOne(ctx, task)
	return err
}

func (r *MongoRepo) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *MongoRepo) UpdateTask(ctx context.Context, id string, fields map[string]interface{}) error {
	return mergeFields(ctx, r.tasks, id, fields, ErrTaskNotFound)
}

func (r *MongoRepo) CreateNotebook(ctx context.Context, notebook *models.Notebook) error {
	_, err := r.notebooks.InsertOne(ctx, notebook)
	return err
}

func (r *MongoRepo) GetNotebook(ctx context.Context, id string) (*models.Notebook, error) {
	var notebook models.Notebook
	err := r.notebooks.FindOne(ctx, bson.M{"_id": id}).Decode(&notebook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotebookNotFound
		}
		return nil, err
	}
	return &notebook, nil
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
