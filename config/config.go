package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string

	// AMQP settings for record-change notifications. An empty URL disables
	// publishing entirely.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	PageSize    int
	MaxPageSize int
}

func Load() *Config {
	// A missing .env is fine; deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/horas_extras"),
		JWTSecret:     getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration: 24 * time.Hour,
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AMQPURL:       getEnv("AMQP_URL", ""),
		AMQPExchange:  getEnv("AMQP_EXCHANGE", "horas_extras"),
		AMQPQueue:     getEnv("AMQP_QUEUE", "record_events"),
		PageSize:      20,
		MaxPageSize:   100,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
