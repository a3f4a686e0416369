package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COMPOUND_ENV",
		"COMPOUND_API_URL",
		"COMPOUND_REQUEST_TIMEOUT",
		"LOG_LEVEL",
		"COMPOUND_LOG_FILE",
		"COMPOUND_FIXTURE_PORT",
		"COMPOUND_FIXTURE_FAIL_FIRST",
		"COMPOUND_CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DefaultAPIURL, cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	require.NotNil(t, cfg.Fixture)
	assert.Equal(t, 8080, cfg.Fixture.Port)
	assert.Equal(t, 0, cfg.Fixture.FailFirst)
	assert.Equal(t, []string{"*"}, cfg.Fixture.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPOUND_ENV", "development")
	t.Setenv("COMPOUND_API_URL", "http://localhost:9090")
	t.Setenv("COMPOUND_REQUEST_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COMPOUND_LOG_FILE", "/tmp/compound.log")
	t.Setenv("COMPOUND_FIXTURE_PORT", "9090")
	t.Setenv("COMPOUND_FIXTURE_FAIL_FIRST", "2")
	t.Setenv("COMPOUND_CORS_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "http://localhost:9090", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/compound.log", cfg.LogFile)
	assert.Equal(t, 9090, cfg.Fixture.Port)
	assert.Equal(t, 2, cfg.Fixture.FailFirst)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Fixture.CORSOrigins)
}

func TestLoad_MalformedNumbersFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPOUND_REQUEST_TIMEOUT", "soon")
	t.Setenv("COMPOUND_FIXTURE_PORT", "eighty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8080, cfg.Fixture.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:    EnvProduction,
			APIBaseURL:     DefaultAPIURL,
			RequestTimeout: time.Second,
			Fixture:        &FixtureConfig{Port: 8080},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown environment", mutate: func(c *Config) { c.Environment = "staging" }, wantErr: "COMPOUND_ENV"},
		{name: "missing host", mutate: func(c *Config) { c.APIBaseURL = "/advisors" }, wantErr: "missing host"},
		{name: "unparseable url", mutate: func(c *Config) { c.APIBaseURL = "http://[::1" }, wantErr: "COMPOUND_API_URL"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "COMPOUND_REQUEST_TIMEOUT"},
		{name: "bad port", mutate: func(c *Config) { c.Fixture.Port = 70000 }, wantErr: "COMPOUND_FIXTURE_PORT"},
		{name: "negative fail first", mutate: func(c *Config) { c.Fixture.FailFirst = -1 }, wantErr: "COMPOUND_FIXTURE_FAIL_FIRST"},
		{name: "no fixture section", mutate: func(c *Config) { c.Fixture = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
