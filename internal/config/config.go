// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aristath/compound/internal/utils"
	"github.com/joho/godotenv"
)

// Environment names accepted by COMPOUND_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultAPIURL is the hosted mock of the advisors API.
const DefaultAPIURL = "https://lvmve.wiremockapi.cloud"

// Config holds application configuration
type Config struct {
	Environment    string        // development or production
	APIBaseURL     string        // Origin the three data endpoints live under
	RequestTimeout time.Duration // Per-request HTTP client timeout
	LogLevel       string
	LogFile        string // Empty discards TUI logs; the terminal is reserved for rendering
	Fixture        *FixtureConfig
}

// FixtureConfig holds settings for the local fixture API server
type FixtureConfig struct {
	Port        int
	FailFirst   int      // Number of initial requests per data route answered with HTTP 500
	CORSOrigins []string // Allowed origins for browser clients
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("COMPOUND_ENV", EnvProduction),
		APIBaseURL:     getEnv("COMPOUND_API_URL", DefaultAPIURL),
		RequestTimeout: getEnvAsDuration("COMPOUND_REQUEST_TIMEOUT", 15*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("COMPOUND_LOG_FILE", ""),
		Fixture:        loadFixtureConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid COMPOUND_ENV %q: must be %q or %q", c.Environment, EnvDevelopment, EnvProduction)
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid COMPOUND_API_URL: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid COMPOUND_API_URL %q: missing host", c.APIBaseURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("COMPOUND_REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}

	if c.Fixture != nil {
		if c.Fixture.Port <= 0 || c.Fixture.Port > 65535 {
			return fmt.Errorf("COMPOUND_FIXTURE_PORT out of range: %d", c.Fixture.Port)
		}
		if c.Fixture.FailFirst < 0 {
			return fmt.Errorf("COMPOUND_FIXTURE_FAIL_FIRST must not be negative, got %d", c.Fixture.FailFirst)
		}
	}

	return nil
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
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

func loadFixtureConfig() *FixtureConfig {
	origins := utils.ParseCSV(getEnv("COMPOUND_CORS_ORIGINS", "*"))
	if origins == nil {
		origins = []string{"*"}
	}

	return &FixtureConfig{
		Port:        getEnvAsInt("COMPOUND_FIXTURE_PORT", 8080),
		FailFirst:   getEnvAsInt("COMPOUND_FIXTURE_FAIL_FIRST", 0),
		CORSOrigins: origins,
	}
}
