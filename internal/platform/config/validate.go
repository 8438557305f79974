package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Storage.validate(),
		c.Assets.validate(),
		c.Compose.validate(),
		c.Session.validate(),
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
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be >= 1, got %d", s.MaxBodyBytes))
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

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageMemory:
		return nil
	case StorageSQLite:
		if s.Path == "" {
			return errors.New("storage.path must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("storage.driver must be one of: memory, sqlite; got %q", s.Driver)
	}
}

func (a *AssetsConfig) validate() error {
	switch a.Source {
	case AssetSourceFS:
		if a.Dir == "" {
			return errors.New("assets.dir must not be empty when source is fs")
		}
		return nil
	case AssetSourceHTTP:
		return a.HTTP.validate("assets.http")
	default:
		return fmt.Errorf("assets.source must be one of: fs, http; got %q", a.Source)
	}
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when limiting", prefix))
	}

	return errors.Join(errs...)
}

func (c *ComposeConfig) validate() error {
	var errs []error

	if c.Timeout <= 0 {
		errs = append(errs, errors.New("compose.timeout must be positive"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("compose.workers must be >= 1, got %d", c.Workers))
	}
	if c.MaxBatch < 1 {
		errs = append(errs, fmt.Errorf("compose.max_batch must be >= 1, got %d", c.MaxBatch))
	}

	return errors.Join(errs...)
}

func (s *SessionConfig) validate() error {
	if s.TTL < 0 {
		return errors.New("session.ttl must not be negative")
	}
	if s.TTL > 0 && s.SweepInterval <= 0 {
		return errors.New("session.sweep_interval must be positive when session.ttl is set")
	}
	return nil
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
