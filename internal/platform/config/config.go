// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store driver names accepted by store.driver.
const (
	DriverPostgREST = "postgrest"
	DriverPostgres  = "postgres"
	DriverMemory    = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Store        StoreConfig        `koanf:"store"`
	Client       ClientConfig       `koanf:"client"`
	Postgres     PostgresConfig     `koanf:"postgres"`
	Revalidation RevalidationConfig `koanf:"revalidation"`
	Admin        AdminConfig        `koanf:"admin"`
	Telemetry    TelemetryConfig    `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects the content store backend.
type StoreConfig struct {
	Driver string `koanf:"driver"`
}

// ClientConfig holds settings for the PostgREST HTTP client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	BearerToken    string               `koanf:"bearer_token"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PostgresConfig holds direct database settings used by the postgres driver.
type PostgresConfig struct {
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// RevalidationConfig configures the cache invalidation sinks. Sinks with an
// empty address are not wired.
type RevalidationConfig struct {
	WebhookURL string        `koanf:"webhook_url"`
	Secret     string        `koanf:"secret"`
	Timeout    time.Duration `koanf:"timeout"`
	Redis      RedisConfig   `koanf:"redis"`
}

// RedisConfig holds the invalidation stream settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Stream   string `koanf:"stream"`
	MaxLen   int64  `koanf:"max_len"`
}

// AdminConfig guards the admin mutation API. An empty token disables it.
type AdminConfig struct {
	Token string `koanf:"token"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// WebhookClient derives the HTTP client settings for the revalidation
// webhook from the PostgREST client settings.
func (c *Config) WebhookClient() ClientConfig {
	wc := c.Client
	wc.BaseURL = c.Revalidation.WebhookURL
	wc.APIKey = ""
	wc.BearerToken = ""
	wc.Timeout = c.Revalidation.Timeout
	wc.Retry.MaxAttempts = 1
	return wc
}
