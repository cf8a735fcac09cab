package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fadedpez/twentyone/internal/logging"
)

const (
	DefaultStartingCredit = 100
	DefaultLogLevel       = "info"
	DefaultPlayerName     = "player"
)

// Config holds all configuration for the application
type Config struct {
	// Game settings
	StartingCredit int64
	PlayerName     string
	ShuffleSeed    int64 // 0 means crypto randomness

	// Logging
	LogLevel string
	LogFile  string // empty means stderr

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables, after loading
// the given .env files (".env" when none are named) if they exist. Callers
// apply their overrides and then call Validate.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			// Only return error if file exists but couldn't be loaded
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error loading %s: %w", file, err)
			}
		}
	}

	credit, err := getInt64WithDefault("STARTING_CREDIT", DefaultStartingCredit)
	if err != nil {
		return nil, err
	}
	seed, err := getInt64WithDefault("SHUFFLE_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StartingCredit: credit,
		PlayerName:     getEnvWithDefault("PLAYER_NAME", DefaultPlayerName),
		ShuffleSeed:    seed,
		LogLevel:       getEnvWithDefault("LOG_LEVEL", DefaultLogLevel),
		LogFile:        os.Getenv("LOG_FILE"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
	}

	return cfg, nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.StartingCredit <= 0 {
		return fmt.Errorf("STARTING_CREDIT must be positive, got %d", c.StartingCredit)
	}
	if c.ShuffleSeed < 0 {
		return fmt.Errorf("SHUFFLE_SEED cannot be negative, got %d", c.ShuffleSeed)
	}
	if c.PlayerName == "" {
		return fmt.Errorf("PLAYER_NAME cannot be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64WithDefault(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
