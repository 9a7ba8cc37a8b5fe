package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"notebookGenerator/api/dto"
	"notebookGenerator/api/middleware"
	"notebookGenerator/api/validation"
)

type NotebookService interface {
	CreateNotebook(ctx context.Context, traceID, userID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error)
	GetTask(ctx context.Context, taskID, userID string) (*dto.TaskResponse, error)
	GetNotebook(ctx context.Context, notebookID, userID string) (*dto.NotebookResponse, error)
}

type NotebookHandler struct {
	service NotebookService
	logger  *zap.Logger
}

func NewNotebookHandler(service NotebookService, logger *zap.Logger) *NotebookHandler {
	return &NotebookHandler{
		service: service,
		logger:  logger,
	}
}

func (h *NotebookHandler) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := middleware.GetTraceID(r.Context())
	userID := middleware.GetUserID(r.Context())

	var req dto.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, "Invalid request body", err, traceID, http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateNotebook(r.Context(), traceID, userID, &req)
	if err != nil {
		if errors.Is(err, validation.ErrEmptyTopic) || errors.Is(err, validation.ErrTopicTooLong) {
			h.handleError(w, "Invalid topic", err, traceID, http.StatusBadRequest)
			return
		}
		h.handleError(w, "Failed to create notebook", err, traceID, http.StatusInternalServerError)
		return
	}

	h.logger.Info("Notebook submitted",
		zap.String("trace_id", traceID),
		zap.String("user_id", userID),
		zap.String("notebook_id", resp.Notebook.ID),
		zap.String("task_id", resp.Task.ID),
	)

	h.respondJSON(w, http.StatusCreated, resp)
}

func (h *NotebookHandler) TaskStatus(w http.ResponseWriter, r *http.Request) {
	traceID := middleware.GetTraceID(r.Context())
	userID := middleware.GetUserID(r.Context())

	taskID := strings.TrimPrefix(r.URL.Path, "/tasks/")
	if taskID == "" {
		h.handleError(w, "Task ID is required", nil, traceID, http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetTask(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, dto.ErrTaskNotFound) {
			h.handleError(w, "Task not found", err, traceID, http.StatusNotFound)
			return
		}
		h.handleError(w, "Failed to get task", err, traceID, http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *NotebookHandler) NotebookByID(w http.ResponseWriter, r *http.Request) {
	traceID := middleware.GetTraceID(r.Context())
	userID := middleware.GetUserID(r.Context())

	notebookID := strings.TrimPrefix(r.URL.Path, "/notebooks/")
	if notebookID == "" {
		h.handleError(w, "Notebook ID is required", nil, traceID, http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetNotebook(r.Context(), notebookID, userID)
	if err != nil {
		if errors.Is(err, dto.ErrNotebookNotFound) {
			h.handleError(w, "Notebook not found", err, traceID, http.StatusNotFound)
			return
		}
		h.handleError(w, "Failed to get notebook", err, traceID, http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *NotebookHandler) handleError(w http.ResponseWriter, message string, err error, traceID string, status int) {
	h.logger.Error(message,
		zap.String("trace_id", traceID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		TraceID: traceID,
	})
}

func (h *NotebookHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
