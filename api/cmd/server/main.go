package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"notebookGenerator/api/cache"
	"notebookGenerator/api/config"
	"notebookGenerator/api/database"
	"notebookGenerator/api/handlers"
	"notebookGenerator/api/kafka"
	"notebookGenerator/api/middleware"
	"notebookGenerator/api/repository"
	"notebookGenerator/api/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	logger.Info("API Service starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Close(context.Background())

	cacheConn, err := database.ConnectCache(cfg.RedisAddr)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer cacheConn.Close()

	producer, err := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","))
	if err != nil {
		logger.Fatal("Failed to create Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	repo := repository.NewMongoRepo(db)
	statusCache := cache.NewStatusCache(cacheConn)
	svc := service.NewNotebookService(repo, statusCache, producer, cfg.KafkaTopic, cfg.MaxTopicLen, logger)
	handler := handlers.NewNotebookHandler(svc, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("/notebooks", middleware.CallerID(methodHandler(http.MethodPost, handler.Submit)))
	mux.Handle("/notebooks/", middleware.CallerID(methodHandler(http.MethodGet, handler.NotebookByID)))
	mux.Handle("/tasks/", middleware.CallerID(methodHandler(http.MethodGet, handler.TaskStatus)))

	chain := middleware.TraceID(middleware.Logging(logger)(middleware.Recovery(logger)(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("Server started", zap.String("address", srv.Addr))
	log.Fatal(srv.ListenAndServe())
}

func methodHandler(method string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	})
}
