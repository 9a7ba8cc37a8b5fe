package repository

import (
	"context"
	"errors"

	"notebookGenerator/api/models"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNotebookNotFound = errors.New("notebook not found")
)

// Repository is the document store adapter. Update methods merge the given
// fields into the stored document rather than replacing it.
type Repository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, fields map[string]interface{}) error

	CreateNotebook(ctx context.Context, notebook *models.Notebook) error
	GetNotebook(ctx context.Context, id string) (*models.Notebook, error)
	UpdateNotebook(ctx context.Context, id string, fields map[string]interface{}) error
}
