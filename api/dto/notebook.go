package dto

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNotebookNotFound = errors.New("notebook not found")
)

type SubmitRequest struct {
	Topic string `json:"topic"`
}

type TaskResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	ToolType         string `json:"tool_type,omitempty"`
	ResultDocumentID string `json:"result_document_id,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

type ImageRequestInfo struct {
	Query        string `json:"query"`
	Status       string `json:"status"`
	SourceURL    string `json:"source_url,omitempty"`
	ValidatedURL string `json:"validated_url,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type NotebookResponse struct {
	ID            string             `json:"id"`
	TopicInput    string             `json:"topic_input"`
	Status        string             `json:"status"`
	GeneratedText string             `json:"generated_text,omitempty"`
	ImageRequests []ImageRequestInfo `json:"image_requests"`
	FinalContent  string             `json:"final_content,omitempty"`
	ErrorMessage  string             `json:"error_message,omitempty"`
	CreatedAt     string             `json:"created_at,omitempty"`
	UpdatedAt     string             `json:"updated_at,omitempty"`
}

// SubmitResponse returns both freshly created records so the caller can start
// polling immediately.
type SubmitResponse struct {
	Notebook NotebookResponse `json:"notebook"`
	Task     TaskResponse     `json:"task"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}
