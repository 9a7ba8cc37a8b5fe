package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusFailed     TaskStatus = "FAILED"
)

type ToolType string

const (
	ToolNotebookGenerator  ToolType = "notebook_generator"
	ToolStoryBookGenerator ToolType = "story_book_generator"
)

// Task is the coarse progress record for one generation job. The fine-grained
// narrative lives on the result document referenced by ResultDocumentID.
type Task struct {
	ID               string                 `bson:"_id" json:"id"`
	UserID           string                 `bson:"user_id" json:"user_id"`
	ToolType         ToolType               `bson:"tool_type" json:"tool_type"`
	InputPayload     map[string]interface{} `bson:"input_payload" json:"input_payload"`
	Status           TaskStatus             `bson:"status" json:"status"`
	ResultDocumentID string                 `bson:"result_document_id" json:"result_document_id"`
	ErrorMessage     string                 `bson:"error_message,omitempty" json:"error_message,omitempty"`
	CreatedAt        time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time              `bson:"updated_at" json:"updated_at"`
}
