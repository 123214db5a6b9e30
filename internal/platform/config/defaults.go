package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20
	defaultRateLimitBurst = 40

	defaultDBMaxOpenConns = 10
	defaultSMTPPort       = 587
	defaultUploadMaxSize  = 20 << 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                defaultServerPort,
		"server.read_header_timeout": "5s",
		"server.read_timeout":        "2m",
		"server.write_timeout":       "2m",
		"server.idle_timeout":        "120s",
		"server.request_timeout":     "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:54321",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "sitecav",

		"backend.driver":                     DriverHosted,
		"backend.api_key":                    "",
		"backend.service_key":                "",
		"backend.database.driver":            "sqlite",
		"backend.database.dsn":               "file:sitecav.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		"backend.database.max_open_conns":    defaultDBMaxOpenConns,
		"backend.database.conn_max_lifetime": "30m",
		"backend.database.migrate":           true,

		"storage.driver":            DriverHosted,
		"storage.s3.region":         "us-east-1",
		"storage.s3.use_path_style": true,

		"auth.enabled":  true,
		"auth.audience": "authenticated",

		"mail.enabled": false,
		"mail.port":    defaultSMTPPort,
		"mail.tls":     "starttls",

		"upload.max_size": defaultUploadMaxSize,
	}
}
