package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Connector ConnectorConfig
	Transfer  TransferConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ConnectorConfig holds the endpoints of the consumer connector
type ConnectorConfig struct {
	ManagementURL string        // management API base, e.g. http://connector:19193/management
	APIKey        string        // sent as X-Api-Key
	ReceiverURL   string        // pull-transfer credential receiver base
	HTTPTimeout   time.Duration // per management request, response headers only for payloads
}

// TransferConfig holds the transfer orchestration settings
type TransferConfig struct {
	PollingTimeout  time.Duration // global deadline for the shared polling loop
	PollingInterval time.Duration
	DownloadDir     string // where pulled payloads are saved
}

// Defaults
const (
	DefaultPollingTimeoutMs  = 60000
	DefaultPollingIntervalMs = 1000
	DefaultHTTPTimeoutMs     = 10000
)

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is applied first when present; variables already set
// in the environment win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "edc_transfer"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Connector: ConnectorConfig{
			ManagementURL: getEnv("CONNECTOR_MANAGEMENT_URL", ""),
			APIKey:        getEnv("CONNECTOR_API_KEY", ""),
			ReceiverURL:   getEnv("CONNECTOR_RECEIVER_URL", ""),
			HTTPTimeout:   getEnvMillis("HTTP_CLIENT_TIMEOUT_MS", DefaultHTTPTimeoutMs),
		},
		Transfer: TransferConfig{
			PollingTimeout:  getEnvMillis("TRANSFER_POLLING_TIMEOUT_MS", DefaultPollingTimeoutMs),
			PollingInterval: getEnvMillis("TRANSFER_POLLING_INTERVAL_MS", DefaultPollingIntervalMs),
			DownloadDir:     getEnv("DOWNLOAD_DIR", os.TempDir()),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if err := validateURL("CONNECTOR_MANAGEMENT_URL", c.Connector.ManagementURL); err != nil {
		return err
	}

	if err := validateURL("CONNECTOR_RECEIVER_URL", c.Connector.ReceiverURL); err != nil {
		return err
	}

	if c.Transfer.PollingTimeout <= 0 {
		return fmt.Errorf("transfer polling timeout must be positive")
	}

	if c.Transfer.PollingInterval <= 0 {
		return fmt.Errorf("transfer polling interval must be positive")
	}

	if c.Transfer.DownloadDir == "" {
		return fmt.Errorf("download directory is required")
	}

	return nil
}

func validateURL(key, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, value)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvMillis reads a millisecond count. Absent, unparsable and zero values
// fall back to the default, so TRANSFER_POLLING_TIMEOUT_MS=0 means 60s.
func getEnvMillis(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	if ms == 0 {
		ms = defaultMs
	}
	return time.Duration(ms) * time.Millisecond
}
