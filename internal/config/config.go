package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Lending LendingConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig points at the directory holding the three collection files.
// Each collection is one JSON file, an ordered array of flat records.
type StorageConfig struct {
	DataDir        string
	BooksFile      string
	AuthorsFile    string
	BorrowingsFile string
}

type LendingConfig struct {
	LoanPeriodDays int // due_date = borrow_date + LoanPeriodDays
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			DataDir:        getEnv("DATA_DIR", "data"),
			BooksFile:      getEnv("BOOKS_FILE", "books.json"),
			AuthorsFile:    getEnv("AUTHORS_FILE", "authors.json"),
			BorrowingsFile: getEnv("BORROWINGS_FILE", "borrowings.json"),
		},
		Lending: LendingConfig{
			LoanPeriodDays: getEnvInt("LOAN_PERIOD_DAYS", 14),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Lending.LoanPeriodDays < 1 {
		return fmt.Errorf("LOAN_PERIOD_DAYS must be at least 1, got %d", c.Lending.LoanPeriodDays)
	}
	return nil
}

// BooksPath returns the full path of the books collection file.
func (c *Config) BooksPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.BooksFile)
}

// AuthorsPath returns the full path of the authors collection file.
func (c *Config) AuthorsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.AuthorsFile)
}

// BorrowingsPath returns the full path of the borrowings collection file.
func (c *Config) BorrowingsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.BorrowingsFile)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
