package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Cache         CacheConfig
	Admin         AdminConfig
	EventTriggers EventTriggerConfig
	Broker        BrokerConfig
	Export        ExportConfig
	Web           WebConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	AppEnv      string
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL      string
	MaxConns int32
	MinConns int32
}

type CacheConfig struct {
	TestimonialsTTLSeconds int
}

// AdminConfig controls bearer tokens for the admin listing endpoints.
// An empty secret disables those routes.
type AdminConfig struct {
	JWTSecret     string
	JWTIssuer     string
	TokenTTLHours int
}

type EventTriggerConfig struct {
	ContactCreatedTriggerURL       string
	NewsletterSubscribedTriggerURL string
}

// BrokerConfig configures lead event publishing. An empty URL disables it.
type BrokerConfig struct {
	URL      string
	Exchange string
}

// ExportConfig points at the S3-compatible bucket used by `origemctl export`
type ExportConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string
	Region          string
	Prefix          string
}

// WebConfig configures the server-rendered landing page
type WebConfig struct {
	Port   string
	APIURL string
	Theme  string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("PORT", "8001")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("TESTIMONIALS_CACHE_TTL", 300) // seconds
	v.SetDefault("ADMIN_JWT_ISSUER", "origem-api")
	v.SetDefault("ADMIN_TOKEN_TTL_HOURS", 12)
	v.SetDefault("RABBITMQ_EXCHANGE", "origem.leads")
	v.SetDefault("EXPORT_S3_REGION", "us-east-1")
	v.SetDefault("EXPORT_S3_PREFIX", "exports")
	v.SetDefault("WEB_PORT", "3000")
	v.SetDefault("ORIGEM_API_URL", "http://localhost:8001")
	v.SetDefault("WEB_THEME", "classic")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "origem-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "origem")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "origem-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	return v
}

// splitList parses a comma-separated value, dropping blanks
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			GinMode:     v.GetString("GIN_MODE"),
			AppEnv:      v.GetString("APP_ENV"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		Cache: CacheConfig{
			TestimonialsTTLSeconds: v.GetInt("TESTIMONIALS_CACHE_TTL"),
		},
		Admin: AdminConfig{
			JWTSecret:     v.GetString("ADMIN_JWT_SECRET"),
			JWTIssuer:     v.GetString("ADMIN_JWT_ISSUER"),
			TokenTTLHours: v.GetInt("ADMIN_TOKEN_TTL_HOURS"),
		},
		EventTriggers: EventTriggerConfig{
			ContactCreatedTriggerURL:       v.GetString("CONTACT_CREATED_TRIGGER_URL"),
			NewsletterSubscribedTriggerURL: v.GetString("NEWSLETTER_SUBSCRIBED_TRIGGER_URL"),
		},
		Broker: BrokerConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		Export: ExportConfig{
			AccessKeyID:     v.GetString("EXPORT_S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("EXPORT_S3_SECRET_ACCESS_KEY"),
			Bucket:          v.GetString("EXPORT_S3_BUCKET"),
			Endpoint:        v.GetString("EXPORT_S3_ENDPOINT"),
			Region:          v.GetString("EXPORT_S3_REGION"),
			Prefix:          v.GetString("EXPORT_S3_PREFIX"),
		},
		Web: WebConfig{
			Port:   v.GetString("WEB_PORT"),
			APIURL: strings.TrimRight(v.GetString("ORIGEM_API_URL"), "/"),
			Theme:  v.GetString("WEB_THEME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}
}

// Load reads the backend API configuration from environment variables
func Load() (*Config, error) {
	cfg := fromViper(newViper())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWeb reads the landing page frontend configuration
func LoadWeb() (*Config, error) {
	cfg := fromViper(newViper())
	if err := cfg.ValidateWeb(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUnvalidated reads configuration without checks; the operator CLI
// validates only the sections each command uses.
func LoadUnvalidated() *Config {
	return fromViper(newViper())
}

// Validate checks if required backend configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	if c.Cache.TestimonialsTTLSeconds <= 0 {
		return fmt.Errorf("TESTIMONIALS_CACHE_TTL must be positive")
	}

	if c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("ADMIN_JWT_SECRET must be at least 32 characters")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// ValidateWeb checks the landing page frontend configuration
func (c *Config) ValidateWeb() error {
	if c.Web.Port == "" {
		return fmt.Errorf("WEB_PORT is required")
	}
	if c.Web.APIURL == "" {
		return fmt.Errorf("ORIGEM_API_URL is required")
	}
	u, err := url.Parse(c.Web.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ORIGEM_API_URL must be an absolute http(s) URL")
	}
	return nil
}

// ValidateExport checks the object storage settings used for lead exports
func (c *Config) ValidateExport() error {
	if c.Export.AccessKeyID == "" || c.Export.SecretAccessKey == "" {
		return fmt.Errorf("EXPORT_S3_ACCESS_KEY_ID and EXPORT_S3_SECRET_ACCESS_KEY are required")
	}
	if c.Export.Bucket == "" {
		return fmt.Errorf("EXPORT_S3_BUCKET is required")
	}
	return nil
}

// AllowsAllOrigins reports whether CORS is open to every origin
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// AdminEnabled reports whether the admin listing routes are served
func (c *Config) AdminEnabled() bool {
	return c.Admin.JWTSecret != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
