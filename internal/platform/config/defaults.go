package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxOpenConns = 10
	defaultPostgresMaxIdleConns = 5

	defaultRedisStreamMaxLen = 1000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver": DriverPostgREST,

		"client.base_url":                        "http://localhost:54321",
		"client.api_key":                         "",
		"client.bearer_token":                    "",
		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"postgres.dsn":               "",
		"postgres.max_open_conns":    defaultPostgresMaxOpenConns,
		"postgres.max_idle_conns":    defaultPostgresMaxIdleConns,
		"postgres.conn_max_lifetime": "30m",

		"revalidation.webhook_url":    "",
		"revalidation.secret":         "",
		"revalidation.timeout":        "5s",
		"revalidation.redis.addr":     "",
		"revalidation.redis.password": "",
		"revalidation.redis.db":       0,
		"revalidation.redis.stream":   "content:invalidations",
		"revalidation.redis.max_len":  defaultRedisStreamMaxLen,

		"admin.token": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "site-content-service",
	}
}
