package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notebookGenerator/worker/ai"
	"notebookGenerator/worker/cache"
	"notebookGenerator/worker/config"
	"notebookGenerator/worker/kafka"
	"notebookGenerator/worker/pool"
	"notebookGenerator/worker/repository"
	"notebookGenerator/worker/service"
)

// Mock port latencies, roughly matching what the real services take.
const (
	generatorLatency = 3 * time.Second
	scraperLatency   = 2 * time.Second
	validatorLatency = 1 * time.Second
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	logger.Info("Worker Service starting",
		zap.String("topic", cfg.KafkaTopic),
		zap.Int("workers", cfg.WorkerCount),
	)

	repo, err := repository.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	consumer, err := kafka.NewConsumer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaGroupID)
	if err != nil {
		logger.Fatal("Failed to create Kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	statusCache := cache.NewStatusCache(redisClient)
	processor := service.NewProcessor(
		repo,
		statusCache,
		ai.NewMockTextGenerator(logger, generatorLatency),
		ai.NewMockImageSource(logger, scraperLatency),
		ai.NewMockImageValidator(logger, validatorLatency),
		logger,
		cfg.JobTimeout,
	)

	workers := pool.NewWorkerPool(cfg.WorkerCount)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := func(ctx context.Context, msg *kafka.JobMessage) error {
		workers.Submit(ctx, msg, processor.Process)
		return nil
	}

	for ctx.Err() == nil {
		if err := consumer.Consume(ctx, cfg.KafkaTopic, handler); err != nil {
			logger.Error("Consumer error", zap.Error(err))
			time.Sleep(time.Second)
		}
	}

	logger.Info("Shutting down, waiting for in-flight jobs")
	workers.Wait()
}
