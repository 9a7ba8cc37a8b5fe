package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notebookGenerator/worker/ai"
	"notebookGenerator/worker/cache"
	"notebookGenerator/worker/composer"
	"notebookGenerator/worker/kafka"
	"notebookGenerator/worker/models"
	"notebookGenerator/worker/repository"
)

// failSafeTimeout bounds the store writes that record a job failure, which
// must still run when the job context itself is what expired.
const failSafeTimeout = 10 * time.Second

type TaskStatusCache interface {
	Set(ctx context.Context, taskID string, entry cache.StatusEntry) error
}

// Processor drives one notebook generation job through its full lifecycle:
// text generation, per-image sourcing and validation, assembly, completion.
// Per-image failures are recorded on the individual image request and never
// abort the job; everything else is fatal and moves both documents to FAILED.
type Processor struct {
	repo       repository.Repository
	cache      TaskStatusCache
	generator  ai.TextGenerator
	images     ai.ImageSource
	validator  ai.ImageValidator
	logger     *zap.Logger
	jobTimeout time.Duration
}

func NewProcessor(
	repo repository.Repository,
	cache TaskStatusCache,
	generator ai.TextGenerator,
	images ai.ImageSource,
	validator ai.ImageValidator,
	logger *zap.Logger,
	jobTimeout time.Duration,
) *Processor {
	return &Processor{
		repo:       repo,
		cache:      cache,
		generator:  generator,
		images:     images,
		validator:  validator,
		logger:     logger,
		jobTimeout: jobTimeout,
	}
}

func (p *Processor) Process(ctx context.Context, msg *kafka.JobMessage) error {
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.jobTimeout)
		defer cancel()
	}

	log := p.logger.With(
		zap.String("trace_id", msg.TraceID),
		zap.String("task_id", msg.TaskID),
		zap.String("notebook_id", msg.NotebookID),
		zap.String("user_id", msg.UserID),
	)

	log.Info("Generation job started", zap.String("topic", msg.Topic))

	if err := p.setTaskStatus(ctx, msg, models.TaskStatusProcessing, ""); err != nil {
		return p.fail(msg, log, fmt.Errorf("mark task processing: %w", err))
	}
	if err := p.setNotebookStatus(ctx, msg.NotebookID, models.NotebookStatusProcessingText); err != nil {
		return p.fail(msg, log, fmt.Errorf("mark notebook processing text: %w", err))
	}

	text, err := p.generator.Generate(ctx, msg.Topic)
	if err != nil {
		return p.fail(msg, log, fmt.Errorf("text generation: %w", err))
	}

	if err := p.repo.UpdateNotebook(ctx, msg.NotebookID, map[string]interface{}{
		"generated_text": text,
	}); err != nil {
		return p.fail(msg, log, fmt.Errorf("persist generated text: %w", err))
	}

	queries := composer.ExtractQueries(text)
	requests := make([]models.ImageRequest, 0, len(queries))

	if len(queries) > 0 {
		if err := p.setNotebookStatus(ctx, msg.NotebookID, models.NotebookStatusProcessingImages); err != nil {
			return p.fail(msg, log, fmt.Errorf("mark notebook processing images: %w", err))
		}

		log.Info("Processing image cues", zap.Int("count", len(queries)))

		for _, query := range queries {
			requests = append(requests, p.processImage(ctx, text, query, log))
		}

		if err := p.repo.UpdateNotebook(ctx, msg.NotebookID, map[string]interface{}{
			"image_requests": requests,
		}); err != nil {
			return p.fail(msg, log, fmt.Errorf("persist image requests: %w", err))
		}
	}

	finalContent := composer.Assemble(text, requests)

	if err := p.repo.UpdateNotebook(ctx, msg.NotebookID, map[string]interface{}{
		"final_content": finalContent,
	}); err != nil {
		return p.fail(msg, log, fmt.Errorf("persist final content: %w", err))
	}

	if err := p.setNotebookStatus(ctx, msg.NotebookID, models.NotebookStatusCompleted); err != nil {
		return p.fail(msg, log, fmt.Errorf("mark notebook completed: %w", err))
	}
	if err := p.setTaskStatus(ctx, msg, models.TaskStatusCompleted, ""); err != nil {
		return p.fail(msg, log, fmt.Errorf("mark task completed: %w", err))
	}

	log.Info("Generation job completed", zap.Int("images", len(requests)))
	return nil
}

// processImage runs sourcing and validation for a single cue. Every failure
// is converted into state on the returned request; nothing escapes.
func (p *Processor) processImage(ctx context.Context, fullText, query string, log *zap.Logger) models.ImageRequest {
	request := models.ImageRequest{
		Query:  query,
		Status: models.ImageStatusPending,
	}

	urls, err := p.images.FindImages(ctx, query, 1)
	if err != nil {
		log.Warn("Image sourcing failed", zap.String("query", query), zap.Error(err))
		request.Status = models.ImageStatusFailed
		request.ErrorMessage = err.Error()
		return request
	}
	if len(urls) == 0 {
		log.Warn("No image found", zap.String("query", query))
		request.Status = models.ImageStatusFailed
		request.ErrorMessage = "no image found"
		return request
	}

	request.SourceURL = urls[0]
	request.Status = models.ImageStatusFetched

	accepted, validatedURL, err := p.validator.Validate(ctx, request.SourceURL, fullText, query)
	if err != nil {
		log.Warn("Image validation failed", zap.String("query", query), zap.Error(err))
		request.Status = models.ImageStatusFailed
		request.ErrorMessage = err.Error()
		return request
	}
	if !accepted {
		log.Warn("Image rejected by validator", zap.String("query", query))
		request.Status = models.ImageStatusFailed
		request.ErrorMessage = "validation rejected"
		return request
	}

	request.Status = models.ImageStatusValidated
	request.ValidatedURL = validatedURL
	return request
}

func (p *Processor) setTaskStatus(ctx context.Context, msg *kafka.JobMessage, status models.TaskStatus, errMsg string) error {
	fields := map[string]interface{}{"status": status}
	if errMsg != "" {
		fields["error_message"] = errMsg
	}

	if err := p.repo.UpdateTask(ctx, msg.TaskID, fields); err != nil {
		return err
	}

	if err := p.cache.Set(ctx, msg.TaskID, cache.StatusEntry{
		UserID:       msg.UserID,
		Status:       status,
		ErrorMessage: errMsg,
	}); err != nil {
		p.logger.Warn("Failed to refresh status cache",
			zap.String("task_id", msg.TaskID),
			zap.Error(err),
		)
	}

	return nil
}

func (p *Processor) setNotebookStatus(ctx context.Context, notebookID string, status models.NotebookStatus) error {
	return p.repo.UpdateNotebook(ctx, notebookID, map[string]interface{}{
		"status": status,
	})
}

// fail moves both documents to FAILED in one logical step. It runs on a
// fresh context so an expired job context cannot block the terminal writes.
// If those writes fail too there is nothing left to do but alert operators.
func (p *Processor) fail(msg *kafka.JobMessage, log *zap.Logger, cause error) error {
	log.Error("Generation job failed", zap.Error(cause))

	ctx, cancel := context.WithTimeout(context.Background(), failSafeTimeout)
	defer cancel()

	if err := p.repo.UpdateNotebook(ctx, msg.NotebookID, map[string]interface{}{
		"status":        models.NotebookStatusFailed,
		"error_message": cause.Error(),
	}); err != nil {
		log.Error("UNRECOVERABLE: failed to persist FAILED notebook status, manual intervention required",
			zap.Error(err),
		)
	}

	if err := p.setTaskStatus(ctx, msg, models.TaskStatusFailed, cause.Error()); err != nil {
		log.Error("UNRECOVERABLE: failed to persist FAILED task status, manual intervention required",
			zap.Error(err),
		)
	}

	return cause
}
