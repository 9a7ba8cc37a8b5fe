package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	KafkaBrokers  string
	KafkaTopic    string
	KafkaGroupID  string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	WorkerCount   int
	JobTimeout    time.Duration
}

func Load() *Config {
	return &Config{
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "notebook_jobs"),
		KafkaGroupID:  getEnv("KAFKA_GROUP_ID", "notebook-worker-group"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "notebookdb"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		WorkerCount:   getEnvAsInt("WORKER_COUNT", 5),
		JobTimeout:    getEnvAsDuration("JOB_TIMEOUT", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
