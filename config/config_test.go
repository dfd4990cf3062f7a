package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no .env file is picked up
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8001", CORSOrigins: []string{"*"}},
		Database: DatabaseConfig{URL: "postgres://localhost/origem", MaxConns: 10, MinConns: 2},
		Cache:    CacheConfig{TestimonialsTTLSeconds: 300},
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{name: "development environment", config: &Config{Server: ServerConfig{AppEnv: "development"}}, expected: true},
		{name: "debug gin mode", config: &Config{Server: ServerConfig{GinMode: "debug"}}, expected: true},
		{name: "production environment", config: &Config{Server: ServerConfig{AppEnv: "production"}}, expected: false},
		{name: "release mode", config: &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.Database.URL = "" }, errorMsg: "DATABASE_URL is required"},
		{name: "min conns above max", mutate: func(c *Config) { c.Database.MinConns = 20 }, errorMsg: "DB_MIN_CONNS"},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, errorMsg: "PORT is required"},
		{name: "no cors origins", mutate: func(c *Config) { c.Server.CORSOrigins = nil }, errorMsg: "CORS_ORIGINS is required"},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Cache.TestimonialsTTLSeconds = 0 }, errorMsg: "TESTIMONIALS_CACHE_TTL"},
		{name: "short admin secret", mutate: func(c *Config) { c.Admin.JWTSecret = "short" }, errorMsg: "ADMIN_JWT_SECRET"},
		{name: "long admin secret", mutate: func(c *Config) { c.Admin.JWTSecret = strings.Repeat("s", 32) }},
		{
			name:     "profiling without endpoint",
			mutate:   func(c *Config) { c.Profiling.Enabled = true },
			errorMsg: "O11Y_PROFILING_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}

func TestConfig_ValidateWeb(t *testing.T) {
	cfg := &Config{Web: WebConfig{Port: "3000", APIURL: "https://api.origem.dev"}}
	assert.NoError(t, cfg.ValidateWeb())

	cfg.Web.APIURL = "api.origem.dev"
	assert.Error(t, cfg.ValidateWeb())

	cfg.Web.APIURL = ""
	assert.Error(t, cfg.ValidateWeb())
}

func TestConfig_ValidateExport(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateExport())

	cfg.Export = ExportConfig{AccessKeyID: "id", SecretAccessKey: "secret"}
	assert.ErrorContains(t, cfg.ValidateExport(), "EXPORT_S3_BUCKET")

	cfg.Export.Bucket = "leads"
	assert.NoError(t, cfg.ValidateExport())
}

func TestConfig_AllowsAllOrigins(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{CORSOrigins: []string{"https://origem.dev", "*"}}}).AllowsAllOrigins())
	assert.False(t, (&Config{Server: ServerConfig{CORSOrigins: []string{"https://origem.dev"}}}).AllowsAllOrigins())
}

func TestLoad_WithDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/origem")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 300, cfg.Cache.TestimonialsTTLSeconds)
	assert.Equal(t, "origem.leads", cfg.Broker.Exchange)
	assert.Equal(t, "classic", cfg.Web.Theme)
	assert.False(t, cfg.AdminEnabled())
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "postgres://db:5432/origem")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("CORS_ORIGINS", "https://origem.dev, https://www.origem.dev ,")
	t.Setenv("ADMIN_JWT_SECRET", strings.Repeat("k", 40))
	t.Setenv("CONTACT_CREATED_TRIGGER_URL", "https://hooks.origem.dev/contact?id=")
	t.Setenv("ORIGEM_API_URL", "https://api.origem.dev/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://origem.dev", "https://www.origem.dev"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.AdminEnabled())
	assert.Equal(t, "https://hooks.origem.dev/contact?id=", cfg.EventTriggers.ContactCreatedTriggerURL)
	assert.Equal(t, "https://api.origem.dev", cfg.Web.APIURL)
}

func TestLoad_ValidationFailure(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
