// Package config centralises configuration parsing for the wellness service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the wellness service.
type Config struct {
	HTTPAddress       string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	CORSAllowedOrigin string
	AuthEnabled       bool
	JWTSecret         string
	JWTIssuer         string
	KafkaBrokers      []string // Empty disables plan event publishing.
	PlanEventsTopic   string
	KafkaWriteTimeout time.Duration
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8000"),
		ReadTimeout:       getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:      getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:       getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		AuthEnabled:       getBoolEnv("AUTH_ENABLED", false),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:         getEnv("JWT_ISSUER", "i5e.identity"),
		KafkaBrokers:      splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		PlanEventsTopic:   getEnv("PLAN_EVENTS_TOPIC", "exercise_plan_events"),
		KafkaWriteTimeout: getDurationEnv("KAFKA_WRITE_TIMEOUT", 5*time.Second),
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
