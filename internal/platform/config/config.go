// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Backend   BackendConfig   `koanf:"backend"`
	Storage   StorageConfig   `koanf:"storage"`
	Auth      AuthConfig      `koanf:"auth"`
	CORS      CORSConfig      `koanf:"cors"`
	Mail      MailConfig      `koanf:"mail"`
	Upload    UploadConfig    `koanf:"upload"`
}

// ServerConfig holds HTTP server settings. ReadTimeout and WriteTimeout
// bound whole connections including uploads; RequestTimeout bounds handler
// time for every other request.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds the outbound HTTP client settings used for the hosted
// backend. BaseURL is the project URL of the backend (e.g.
// https://xyz.supabase.co); table and storage paths are appended to it.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
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

// RateLimitConfig holds client-side rate limiting. Zero RequestsPerSecond
// disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Table store drivers.
const (
	DriverHosted = "hosted"
	DriverSQL    = "sql"
	DriverMemory = "memory"
)

// BackendConfig selects where table data lives.
type BackendConfig struct {
	// Driver is one of hosted, sql or memory.
	Driver string `koanf:"driver"`
	// APIKey is the hosted backend key sent as apikey and bearer token.
	APIKey string `koanf:"api_key"`
	// ServiceKey, when set, is the bearer token of tools that act without a
	// signed-in admin, such as cavctl.
	ServiceKey string         `koanf:"service_key"`
	Database   DatabaseConfig `koanf:"database"`
}

// ToolBearer returns the bearer token for calls made outside an admin
// request: ServiceKey when set, APIKey otherwise.
func (b BackendConfig) ToolBearer() string {
	if b.ServiceKey != "" {
		return b.ServiceKey
	}
	return b.APIKey
}

// DatabaseConfig holds the SQL connection used by the sql driver.
type DatabaseConfig struct {
	// Driver is sqlite or postgres.
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	Migrate         bool          `koanf:"migrate"`
}

// Object storage drivers. DriverHosted and DriverMemory are shared with
// BackendConfig.
const DriverS3 = "s3"

// StorageConfig selects where uploaded files live.
type StorageConfig struct {
	// Driver is one of hosted, s3 or memory.
	Driver string   `koanf:"driver"`
	S3     S3Config `koanf:"s3"`
}

// S3Config holds settings for an S3-compatible object store.
type S3Config struct {
	Endpoint        string `koanf:"endpoint"`
	Region          string `koanf:"region"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	// PublicURL is the base of public object URLs; objects are served at
	// {PublicURL}/{bucket}/{path}.
	PublicURL    string `koanf:"public_url"`
	UsePathStyle bool   `koanf:"use_path_style"`
}

// AuthConfig holds verification settings for admin bearer tokens issued by
// the hosted backend's auth service.
type AuthConfig struct {
	Enabled   bool   `koanf:"enabled"`
	JWTSecret string `koanf:"jwt_secret"`
	Issuer    string `koanf:"issuer"`
	Audience  string `koanf:"audience"`
}

// CORSConfig holds the cross-origin policy for the public site.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// MailConfig holds SMTP settings for the contact form.
type MailConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
	To       string `koanf:"to"`
	// TLS is one of starttls, tls or none.
	TLS string `koanf:"tls"`
}

// UploadConfig limits multipart uploads.
type UploadConfig struct {
	MaxSize int64 `koanf:"max_size"`
}
