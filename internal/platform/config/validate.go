package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
// Backend sections are only checked for the driver that is selected.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Revalidation.validate(),
		c.Telemetry.validate(),
	}

	switch c.Store.Driver {
	case DriverPostgREST:
		errs = append(errs, c.Client.validate())
	case DriverPostgres:
		errs = append(errs, c.Postgres.validate())
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute URL, got %q", cl.BaseURL))
	}
	if cl.APIKey == "" {
		errs = append(errs, errors.New("client.api_key must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverPostgREST, DriverPostgres, DriverMemory:
		return nil
	default:
		return fmt.Errorf("store.driver must be one of: %s, %s, %s; got %q",
			DriverPostgREST, DriverPostgres, DriverMemory, s.Driver)
	}
}

func (p *PostgresConfig) validate() error {
	var errs []error

	if p.DSN == "" {
		errs = append(errs, errors.New("postgres.dsn must not be empty"))
	}
	if p.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("postgres.max_open_conns must be >= 1, got %d", p.MaxOpenConns))
	}
	if p.MaxIdleConns < 0 || p.MaxIdleConns > p.MaxOpenConns {
		errs = append(errs, fmt.Errorf("postgres.max_idle_conns must be between 0 and max_open_conns, got %d",
			p.MaxIdleConns))
	}

	return errors.Join(errs...)
}

func (r *RevalidationConfig) validate() error {
	var errs []error

	if r.Timeout <= 0 {
		errs = append(errs, errors.New("revalidation.timeout must be positive"))
	}
	if r.WebhookURL != "" {
		if u, err := url.Parse(r.WebhookURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("revalidation.webhook_url must be an absolute URL, got %q", r.WebhookURL))
		}
	}
	if r.Secret == "" && r.WebhookURL != "" {
		errs = append(errs, errors.New("revalidation.secret must not be empty when webhook_url is set"))
	}
	if r.Redis.Addr != "" && r.Redis.Stream == "" {
		errs = append(errs, errors.New("revalidation.redis.stream must not be empty when redis.addr is set"))
	}
	if r.Redis.MaxLen < 0 {
		errs = append(errs, fmt.Errorf("revalidation.redis.max_len must be >= 0, got %d", r.Redis.MaxLen))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
