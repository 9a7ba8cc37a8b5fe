package models

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusFailed     TaskStatus = "FAILED"
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

// ImageRequest tracks one image cue through sourcing and validation. The
// stored field names must stay in sync with the API service's model.
type ImageRequest struct {
	Query        string             `bson:"query" json:"query"`
	Status       ImageRequestStatus `bson:"status" json:"status"`
	SourceURL    string             `bson:"source_url,omitempty" json:"source_url,omitempty"`
	ValidatedURL string             `bson:"validated_url,omitempty" json:"validated_url,omitempty"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
}
