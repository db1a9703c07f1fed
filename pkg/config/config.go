package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrDatabaseURLMissing is returned when the sqlite backend is selected without DATABASE_URL
var ErrDatabaseURLMissing = errors.New("DATABASE_URL must be set")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Backend string
	URL     string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite)),
			URL:     strings.TrimPrefix(getEnv("DATABASE_URL", ""), "sqlite://"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	switch cfg.Database.Backend {
	case BackendSQLite:
		if cfg.Database.URL == "" {
			return ErrDatabaseURLMissing
		}
	case BackendMemory:
	default:
		return errors.New("unknown STORE_BACKEND: " + cfg.Database.Backend)
	}

	AppConfig = cfg
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
