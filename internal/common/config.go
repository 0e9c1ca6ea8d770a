package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Blob       BlobConfig
	Worker     WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
	// AdminToken gates the AdminService; empty disables the admin API.
	AdminToken string
}

// ExtractionConfig holds extraction-service configuration
type ExtractionConfig struct {
	BaseURL string
	APIKey  string
	ModelID string
	Timeout time.Duration
}

// BlobConfig holds blob-storage configuration
type BlobConfig struct {
	Backend     string // "fs" or "gcs"
	Environment string // path namespace, e.g. "development" or "production"
	BaseDir     string // fs backend
	Bucket      string // gcs backend
}

// WorkerConfig holds background worker configuration
type WorkerConfig struct {
	PollInterval  time.Duration
	PollBatchSize int
	PollCeiling   time.Duration
	SweepInterval time.Duration
	SessionTTL    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:   getEnv("GRPC_ADDR", ":8080"),
			AdminToken: getEnv("ADMIN_TOKEN", ""),
		},
		Extraction: ExtractionConfig{
			BaseURL: getEnv("EXTRACTION_BASE_URL", ""),
			APIKey:  getEnv("EXTRACTION_API_KEY", ""),
			ModelID: getEnv("EXTRACTION_MODEL_ID", "general-v2"),
			Timeout: getEnvAsDuration("EXTRACTION_TIMEOUT", 45*time.Second),
		},
		Blob: BlobConfig{
			Backend:     getEnv("BLOB_BACKEND", "fs"),
			Environment: getEnv("BLOB_ENVIRONMENT", "development"),
			BaseDir:     getEnv("BLOB_BASE_DIR", "./blobs"),
			Bucket:      getEnv("BLOB_BUCKET", ""),
		},
		Worker: WorkerConfig{
			PollInterval:  getEnvAsDuration("POLL_INTERVAL", 2*time.Second),
			PollBatchSize: getEnvAsInt("POLL_BATCH_SIZE", 100),
			PollCeiling:   getEnvAsDuration("POLL_CEILING", 30*time.Minute),
			SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", 5*time.Minute),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extraction.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "EXTRACTION_BASE_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Blob.Backend == "gcs" && c.Blob.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "BLOB_BUCKET is required for the gcs backend", ErrInvalidInput)
	}
	return nil
}
