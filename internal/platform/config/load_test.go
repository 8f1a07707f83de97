package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Store.Driver != config.DriverMemory {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverMemory)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_API_KEY", "anon-key")
	t.Setenv("APP_REVALIDATION_SECRET", "webhook-secret")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Store.Driver != config.DriverPostgREST {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverPostgREST)
	}
	if cfg.Client.APIKey != "anon-key" {
		t.Errorf("Client.APIKey = %q, want %q (env override)", cfg.Client.APIKey, "anon-key")
	}
}

func TestLoad_ProdProfileRequiresSecrets(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("prod"); err == nil {
		t.Fatal("Load(\"prod\") returned nil error, want error for missing api key and webhook secret")
	}
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Revalidation.Redis.Stream != "content:invalidations" {
		t.Errorf("Revalidation.Redis.Stream = %q, want default", cfg.Revalidation.Redis.Stream)
	}
	if cfg.Telemetry.ServiceName != "site-content-service" {
		t.Errorf("Telemetry.ServiceName = %q, want default", cfg.Telemetry.ServiceName)
	}
	if cfg.Postgres.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("Postgres.ConnMaxLifetime = %v, want 30m", cfg.Postgres.ConnMaxLifetime)
	}
}

func TestLoad_EnvOverrideDefaultOnlyKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_POSTGRES_DSN", "postgres://localhost/content")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Postgres.DSN != "postgres://localhost/content" {
		t.Errorf("Postgres.DSN = %q, want env value", cfg.Postgres.DSN)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_Backends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *config.Config) { c.Store.Driver = "mongo" },
			wantErr: true,
		},
		{
			name:    "postgrest without api key",
			mutate:  func(c *config.Config) { c.Client.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "postgrest with relative base url",
			mutate:  func(c *config.Config) { c.Client.BaseURL = "localhost:54321" },
			wantErr: true,
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5} },
			wantErr: true,
		},
		{
			name: "postgres without dsn",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.DriverPostgres
			},
			wantErr: true,
		},
		{
			name: "postgres with dsn",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.DriverPostgres
				c.Postgres.DSN = "postgres://localhost/content"
			},
		},
		{
			name: "memory skips client checks",
			mutate: func(c *config.Config) {
				c.Store.Driver = config.DriverMemory
				c.Client.BaseURL = ""
				c.Client.APIKey = ""
			},
		},
		{
			name:    "webhook without secret",
			mutate:  func(c *config.Config) { c.Revalidation.WebhookURL = "https://example.com/api/revalidate" },
			wantErr: true,
		},
		{
			name: "webhook with secret",
			mutate: func(c *config.Config) {
				c.Revalidation.WebhookURL = "https://example.com/api/revalidate"
				c.Revalidation.Secret = "s3cret"
			},
		},
		{
			name: "redis without stream",
			mutate: func(c *config.Config) {
				c.Revalidation.Redis.Addr = "localhost:6379"
				c.Revalidation.Redis.Stream = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_WebhookClient(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Revalidation.WebhookURL = "https://example.com/api/revalidate"
	cfg.Revalidation.Timeout = 3 * time.Second

	wc := cfg.WebhookClient()

	if wc.BaseURL != cfg.Revalidation.WebhookURL {
		t.Errorf("BaseURL = %q, want %q", wc.BaseURL, cfg.Revalidation.WebhookURL)
	}
	if wc.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", wc.Timeout)
	}
	if wc.Retry.MaxAttempts != 1 {
		t.Errorf("Retry.MaxAttempts = %d, want 1", wc.Retry.MaxAttempts)
	}
	if wc.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", wc.APIKey)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("source Client.Retry.MaxAttempts = %d, want unchanged 3", cfg.Client.Retry.MaxAttempts)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Store: config.StoreConfig{
			Driver: config.DriverPostgREST,
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:54321",
			APIKey:  "anon-key",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Postgres: config.PostgresConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Revalidation: config.RevalidationConfig{
			Timeout: 5 * time.Second,
			Redis: config.RedisConfig{
				Stream: "content:invalidations",
				MaxLen: 1000,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
