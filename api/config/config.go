package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	Env           string
	KafkaBrokers  string
	KafkaTopic    string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	MaxTopicLen   int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("SERVICE_PORT", "8081"),
		Env:           getEnv("ENV", "development"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "notebook_jobs"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "notebookdb"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		MaxTopicLen:   getEnvAsInt("MAX_TOPIC_LENGTH", 500),
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
