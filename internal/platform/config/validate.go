package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Backend.validate(),
		c.Storage.validate(),
		c.Auth.validate(),
		c.Mail.validate(),
		c.Upload.validate(),
		c.validateHosted(),
	)
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
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
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
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
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

func (b *BackendConfig) validate() error {
	var errs []error

	switch b.Driver {
	case DriverHosted, DriverMemory:
	case DriverSQL:
		switch b.Database.Driver {
		case "sqlite", "postgres":
		default:
			errs = append(errs, fmt.Errorf("backend.database.driver must be one of: sqlite, postgres; got %q",
				b.Database.Driver))
		}
		if b.Database.DSN == "" {
			errs = append(errs, errors.New("backend.database.dsn must not be empty when backend.driver is sql"))
		}
	default:
		errs = append(errs, fmt.Errorf("backend.driver must be one of: hosted, sql, memory; got %q", b.Driver))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case DriverHosted, DriverMemory:
	case DriverS3:
		if s.S3.Region == "" {
			errs = append(errs, errors.New("storage.s3.region must not be empty when storage.driver is s3"))
		}
		if s.S3.PublicURL == "" {
			errs = append(errs, errors.New("storage.s3.public_url must not be empty when storage.driver is s3"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: hosted, s3, memory; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if a.Enabled && a.JWTSecret == "" {
		return errors.New("auth.jwt_secret must not be empty when auth is enabled")
	}
	return nil
}

func (m *MailConfig) validate() error {
	if !m.Enabled {
		return nil
	}

	var errs []error

	if m.Host == "" {
		errs = append(errs, errors.New("mail.host must not be empty when mail is enabled"))
	}
	if m.Port < 1 || m.Port > 65535 {
		errs = append(errs, fmt.Errorf("mail.port must be between 1 and 65535, got %d", m.Port))
	}
	if m.From == "" || m.To == "" {
		errs = append(errs, errors.New("mail.from and mail.to must not be empty when mail is enabled"))
	}
	switch m.TLS {
	case "starttls", "tls", "none":
	default:
		errs = append(errs, fmt.Errorf("mail.tls must be one of: starttls, tls, none; got %q", m.TLS))
	}

	return errors.Join(errs...)
}

func (u *UploadConfig) validate() error {
	if u.MaxSize <= 0 {
		return fmt.Errorf("upload.max_size must be positive, got %d", u.MaxSize)
	}
	return nil
}

// validateHosted checks settings that only matter when a hosted driver is
// selected.
func (c *Config) validateHosted() error {
	if c.Backend.Driver != DriverHosted && c.Storage.Driver != DriverHosted {
		return nil
	}
	if c.Backend.APIKey == "" {
		return errors.New("backend.api_key must not be empty when a hosted driver is selected")
	}
	return nil
}
