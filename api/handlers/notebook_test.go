package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"notebookGenerator/api/dto"
	"notebookGenerator/api/middleware"
	"notebookGenerator/api/validation"
)

type mockNotebookService struct {
	createFunc      func(ctx context.Context, traceID, userID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
	getTaskFunc     func(ctx context.Context, taskID, userID string) (*dto.TaskResponse, error)
	getNotebookFunc func(ctx context.Context, notebookID, userID string) (*dto.NotebookResponse, error)
}

func (m *mockNotebookService) CreateNotebook(ctx context.Context, traceID, userID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, traceID, userID, req)
	}
	return &dto.SubmitResponse{
		Notebook: dto.NotebookResponse{
			ID:         uuid.New().String(),
			TopicInput: req.Topic,
			Status:     "PENDING",
		},
		Task: dto.TaskResponse{
			ID:     uuid.New().String(),
			Status: "PENDING",
		},
	}, nil
}

func (m *mockNotebookService) GetTask(ctx context.Context, taskID, userID string) (*dto.TaskResponse, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, taskID, userID)
	}
	return &dto.TaskResponse{ID: taskID, Status: "COMPLETED"}, nil
}

func (m *mockNotebookService) GetNotebook(ctx context.Context, notebookID, userID string) (*dto.NotebookResponse, error) {
	if m.getNotebookFunc != nil {
		return m.getNotebookFunc(ctx, notebookID, userID)
	}
	return &dto.NotebookResponse{ID: notebookID, Status: "COMPLETED"}, nil
}

func requestWithIdentity(req *http.Request, traceID, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.TraceIDKey, traceID)
	ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestNotebookHandler_Submit_Success(t *testing.T) {
	handler := NewNotebookHandler(&mockNotebookService{}, zaptest.NewLogger(t))

	body := strings.NewReader(`{"topic":"oceans"}`)
	req := httptest.NewRequest("POST", "/notebooks", body)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var resp dto.SubmitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Notebook.Status != "PENDING" || resp.Task.Status != "PENDING" {
		t.Errorf("Expected both records PENDING, got %s / %s", resp.Notebook.Status, resp.Task.Status)
	}
}

func TestNotebookHandler_Submit_InvalidBody(t *testing.T) {
	handler := NewNotebookHandler(&mockNotebookService{}, zaptest.NewLogger(t))

	req := httptest.NewRequest("POST", "/notebooks", strings.NewReader("{not json"))
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestNotebookHandler_Submit_EmptyTopic(t *testing.T) {
	mockService := &mockNotebookService{
		createFunc: func(ctx context.Context, traceID, userID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
			return nil, validation.ErrEmptyTopic
		},
	}
	handler := NewNotebookHandler(mockService, zaptest.NewLogger(t))

	req := httptest.NewRequest("POST", "/notebooks", strings.NewReader(`{"topic":""}`))
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestNotebookHandler_TaskStatus_Success(t *testing.T) {
	taskID := uuid.New().String()
	handler := NewNotebookHandler(&mockNotebookService{}, zaptest.NewLogger(t))

	req := httptest.NewRequest("GET", "/tasks/"+taskID, nil)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.TaskStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var resp dto.TaskResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID != taskID {
		t.Errorf("Expected task ID %s, got %s", taskID, resp.ID)
	}
}

func TestNotebookHandler_TaskStatus_NotFound(t *testing.T) {
	mockService := &mockNotebookService{
		getTaskFunc: func(ctx context.Context, taskID, userID string) (*dto.TaskResponse, error) {
			return nil, dto.ErrTaskNotFound
		},
	}
	handler := NewNotebookHandler(mockService, zaptest.NewLogger(t))

	req := httptest.NewRequest("GET", "/tasks/"+uuid.New().String(), nil)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.TaskStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestNotebookHandler_TaskStatus_MissingID(t *testing.T) {
	handler := NewNotebookHandler(&mockNotebookService{}, zaptest.NewLogger(t))

	req := httptest.NewRequest("GET", "/tasks/", nil)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.TaskStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestNotebookHandler_NotebookByID_NotFound(t *testing.T) {
	mockService := &mockNotebookService{
		getNotebookFunc: func(ctx context.Context, notebookID, userID string) (*dto.NotebookResponse, error) {
			return nil, dto.ErrNotebookNotFound
		},
	}
	handler := NewNotebookHandler(mockService, zaptest.NewLogger(t))

	req := httptest.NewRequest("GET", "/notebooks/"+uuid.New().String(), nil)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.NotebookByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestNotebookHandler_NotebookByID_Success(t *testing.T) {
	notebookID := uuid.New().String()
	mockService := &mockNotebookService{
		getNotebookFunc: func(ctx context.Context, id, userID string) (*dto.NotebookResponse, error) {
			return &dto.NotebookResponse{
				ID:           id,
				Status:       "COMPLETED",
				FinalContent: "![a coral reef](https://example.com/reef.jpg)",
			}, nil
		},
	}
	handler := NewNotebookHandler(mockService, zaptest.NewLogger(t))

	req := httptest.NewRequest("GET", "/notebooks/"+notebookID, nil)
	req = requestWithIdentity(req, uuid.New().String(), "user-1")

	rec := httptest.NewRecorder()
	handler.NotebookByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var resp dto.NotebookResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.FinalContent == "" {
		t.Error("Expected final content in response")
	}
}
