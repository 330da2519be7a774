package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 8000
	DefaultWorkers     = 2
	DefaultMaxFileSize = 50 * 1024 * 1024
	DefaultDoclingBin  = "docling"
	DefaultLogLevel    = "info"
)

// Config holds the full service configuration. It is built once at
// startup and never mutated afterwards.
type Config struct {
	// APIKey guards POST /convert-pdf. Empty disables authentication.
	APIKey string
	// Port is the HTTP listen port.
	Port int
	// Workers bounds how many conversions may run at the same time.
	Workers int
	// MaxFileSize is the upload size ceiling in bytes.
	MaxFileSize int64
	// AllowedOrigins is the CORS origin list, "*" meaning any.
	AllowedOrigins []string
	// DoclingBin names the conversion engine binary.
	DoclingBin string
	// ConversionTimeout bounds a single engine call. Zero disables it.
	ConversionTimeout time.Duration
	// LogLevel is the zap level name.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present; real env vars win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	workers, err := getEnvInt("WORKERS", DefaultWorkers)
	if err != nil {
		return nil, err
	}
	maxFileSize, err := getEnvInt64("MAX_FILE_SIZE", DefaultMaxFileSize)
	if err != nil {
		return nil, err
	}
	timeoutSec, err := getEnvInt("CONVERSION_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:            os.Getenv("DOCLING_SERVICE_API_KEY"),
		Port:              port,
		Workers:           workers,
		MaxFileSize:       maxFileSize,
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		DoclingBin:        getEnv("DOCLING_BIN", DefaultDoclingBin),
		ConversionTimeout: time.Duration(timeoutSec) * time.Second,
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be positive, got %d", c.Workers)
	}
	if c.MaxFileSize < 1 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.MaxFileSize)
	}
	if c.ConversionTimeout < 0 {
		return fmt.Errorf("CONVERSION_TIMEOUT must not be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaxFileSizeMB reports the upload ceiling in megabytes.
func (c *Config) MaxFileSizeMB() float64 {
	return float64(c.MaxFileSize) / (1024 * 1024)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
