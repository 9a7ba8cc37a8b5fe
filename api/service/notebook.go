package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notebookGenerator/api/cache"
	"notebookGenerator/api/dto"
	"notebookGenerator/api/kafka"
	"notebookGenerator/api/models"
	"notebookGenerator/api/repository"
	"notebookGenerator/api/validation"
)

const timeLayout = "2006-01-02T15:04:05Z"

// TaskStatusCache is the polling fast path. Misses fall through to the store.
type TaskStatusCache interface {
	Get(ctx context.Context, taskID string) (*cache.StatusEntry, error)
	Set(ctx context.Context, taskID string, entry cache.StatusEntry) error
}

type NotebookService struct {
	repo        repository.Repository
	cache       TaskStatusCache
	producer    kafka.Producer
	topic       string
	maxTopicLen int
	logger      *zap.Logger
}

func NewNotebookService(repo repository.Repository, cache TaskStatusCache, producer kafka.Producer, jobTopic string, maxTopicLen int, logger *zap.Logger) *NotebookService {
	return &NotebookService{
		repo:        repo,
		cache:       cache,
		producer:    producer,
		topic:       jobTopic,
		maxTopicLen: maxTopicLen,
		logger:      logger,
	}
}

// CreateNotebook creates the PENDING notebook/task pair and enqueues the
// generation job. When either store write fails no job is enqueued and the
// error propagates to the caller.
func (s *NotebookService) CreateNotebook(ctx context.Context, traceID, userID string, req *dto.SubmitRequest) (*dto.SubmitResponse, error) {
	if err := validation.ValidateTopic(req.Topic, s.maxTopicLen); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	notebook := &models.Notebook{
		ID:            uuid.New().String(),
		UserID:        userID,
		TopicInput:    req.Topic,
		Status:        models.NotebookStatusPending,
		ImageRequests: []models.ImageRequest{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	task := &models.Task{
		ID:       uuid.New().String(),
		UserID:   userID,
		ToolType: models.ToolNotebookGenerator,
		InputPayload: map[string]interface{}{
			"topic":       req.Topic,
			"notebook_id": notebook.ID,
		},
		Status:           models.TaskStatusPending,
		ResultDocumentID: notebook.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.CreateNotebook(ctx, notebook); err != nil {
		return nil, fmt.Errorf("create notebook: %w", err)
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.cache.Set(ctx, task.ID, cache.StatusEntry{
		UserID: userID,
		Status: models.TaskStatusPending,
	})

	msg := &kafka.JobMessage{
		TaskID:     task.ID,
		TraceID:    traceID,
		UserID:     userID,
		NotebookID: notebook.ID,
		Topic:      req.Topic,
	}
	if err := s.producer.SendJobMessage(ctx, s.topic, msg); err != nil {
		s.markSubmitFailed(ctx, task.ID, notebook.ID, userID)
		return nil, fmt.Errorf("enqueue job: %w", err)
	}

	return &dto.SubmitResponse{
		Notebook: toNotebookResponse(notebook),
		Task:     toTaskResponse(task),
	}, nil
}

// GetTask returns the task only to its owner; a foreign task is reported the
// same as an absent one.
func (s *NotebookService) GetTask(ctx context.Context, taskID, userID string) (*dto.TaskResponse, error) {
	if entry, err := s.cache.Get(ctx, taskID); err == nil {
		if entry.UserID != userID {
			return nil, dto.ErrTaskNotFound
		}
		return &dto.TaskResponse{
			ID:           taskID,
			Status:       string(entry.Status),
			ErrorMessage: entry.ErrorMessage,
		}, nil
	}

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, dto.ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, dto.ErrTaskNotFound
	}

	s.cache.Set(ctx, task.ID, cache.StatusEntry{
		UserID:       task.UserID,
		Status:       task.Status,
		ErrorMessage: task.ErrorMessage,
	})

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *NotebookService) GetNotebook(ctx context.Context, notebookID, userID string) (*dto.NotebookResponse, error) {
	notebook, err := s.repo.GetNotebook(ctx, notebookID)
	if err != nil {
		if errors.Is(err, repository.ErrNotebookNotFound) {
			return nil, dto.ErrNotebookNotFound
		}
		return nil, err
	}
	if notebook.UserID != userID {
		return nil, dto.ErrNotebookNotFound
	}

	resp := toNotebookResponse(notebook)
	return &resp, nil
}

// markSubmitFailed records an enqueue failure on both documents so the pair
// is never left PENDING with no job behind it. Best effort: the submit call
// is failing anyway.
func (s *NotebookService) markSubmitFailed(ctx context.Context, taskID, notebookID, userID string) {
	const reason = "failed to enqueue generation job"

	fields := map[string]interface{}{
		"status":        models.TaskStatusFailed,
		"error_message": reason,
	}
	if err := s.repo.UpdateTask(ctx, taskID, fields); err != nil {
		s.logger.Error("Failed to mark task failed after enqueue error",
			zap.String("task_id", taskID),
			zap.Error(err),
		)
	}

	fields = map[string]interface{}{
		"status":        models.NotebookStatusFailed,
		"error_message": reason,
	}
	if err := s.repo.UpdateNotebook(ctx, notebookID, fields); err != nil {
		s.logger.Error("Failed to mark notebook failed after enqueue error",
			zap.String("notebook_id", notebookID),
			zap.Error(err),
		)
	}

	s.cache.Set(ctx, taskID, cache.StatusEntry{
		UserID:       userID,
		Status:       models.TaskStatusFailed,
		ErrorMessage: reason,
	})
}

func toTaskResponse(task *models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:               task.ID,
		Status:           string(task.Status),
		ToolType:         string(task.ToolType),
		ResultDocumentID: task.ResultDocumentID,
		ErrorMessage:     task.ErrorMessage,
		CreatedAt:        task.CreatedAt.Format(timeLayout),
		UpdatedAt:        task.UpdatedAt.Format(timeLayout),
	}
}

func toNotebookResponse(notebook *models.Notebook) dto.NotebookResponse {
	requests := make([]dto.ImageRequestInfo, 0, len(notebook.ImageRequests))
	for _, req := range notebook.ImageRequests {
		requests = append(requests, dto.ImageRequestInfo{
			Query:        req.Query,
			Status:       string(req.Status),
			SourceURL:    req.SourceURL,
			ValidatedURL: req.ValidatedURL,
			ErrorMessage: req.ErrorMessage,
		})
	}

	return dto.NotebookResponse{
		ID:            notebook.ID,
		TopicInput:    notebook.TopicInput,
		Status:        string(notebook.Status),
		GeneratedText: notebook.GeneratedText,
		ImageRequests: requests,
		FinalContent:  notebook.FinalContent,
		ErrorMessage:  notebook.ErrorMessage,
		CreatedAt:     notebook.CreatedAt.Format(timeLayout),
		UpdatedAt:     notebook.UpdatedAt.Format(timeLayout),
	}
}
