package models

import (
	"time"
)

type NotebookStatus string

const (
	NotebookStatusPending          NotebookStatus = "PENDING"
	NotebookStatusProcessingText   NotebookStatus = "PROCESSING_TEXT"
	NotebookStatusProcessingImages NotebookStatus = "PROCESSING_IMAGES"
	NotebookStatusCompleted        NotebookStatus = "COMPLETED"
	NotebookStatusFailed           NotebookStatus = "FAILED"
)

type ImageRequestStatus string

const (
	ImageStatusPending   ImageRequestStatus = "PENDING"
	ImageStatusFetched   ImageRequestStatus = "FETCHED"
	ImageStatusValidated ImageRequestStatus = "VALIDATED"
	ImageStatusFailed    ImageRequestStatus = "FAILED"
)

// ImageRequest tracks one image cue through sourcing and validation.
// ValidatedURL is set only on VALIDATED, ErrorMessage only on FAILED.
type ImageRequest struct {
	Query        string             `bson:"query" json:"query"`
	Status       ImageRequestStatus `bson:"status" json:"status"`
	SourceURL    string             `bson:"source_url,omitempty" json:"source_url,omitempty"`
	ValidatedURL string             `bson:"validated_url,omitempty" json:"validated_url,omitempty"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
}

type Notebook struct {
	ID            string         `bson:"_id" json:"id"`
	UserID        string         `bson:"user_id" json:"user_id"`
	TopicInput    string         `bson:"topic_input" json:"topic_input"`
	Status        NotebookStatus `bson:"status" json:"status"`
	GeneratedText string         `bson:"generated_text,omitempty" json:"generated_text,omitempty"`
	ImageRequests []ImageRequest `bson:"image_requests" json:"image_requests"`
	FinalContent  string         `bson:"final_content,omitempty" json:"final_content,omitempty"`
	ErrorMessage  string         `bson:"error_message,omitempty" json:"error_message,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}
