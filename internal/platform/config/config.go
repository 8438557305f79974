// Package config provides configuration loading and validation for the
// dossier service. Configuration is layered: built-in defaults ->
// base.yaml -> {profile}.yaml -> APP_ environment variables.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Assets    AssetsConfig    `koanf:"assets"`
	Compose   ComposeConfig   `koanf:"compose"`
	Session   SessionConfig   `koanf:"session"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	MaxBodyBytes   int64         `koanf:"max_body_bytes"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// StorageConfig selects where wizard sessions live.
type StorageConfig struct {
	Driver      string        `koanf:"driver"`
	Path        string        `koanf:"path"`
	BusyTimeout time.Duration `koanf:"busy_timeout"`
}

// CatalogConfig points at an external catalog directory. An empty Dir
// selects the catalog embedded in the binary.
type CatalogConfig struct {
	Dir string `koanf:"dir"`
}

// Asset sources.
const (
	AssetSourceFS   = "fs"
	AssetSourceHTTP = "http"
)

// AssetsConfig selects where canvases and fonts are loaded from.
type AssetsConfig struct {
	Source string       `koanf:"source"`
	Dir    string       `koanf:"dir"`
	HTTP   ClientConfig `koanf:"http"`
}

// ClientConfig holds settings for the outbound asset server client.
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

// RateLimitConfig caps outbound requests. Zero RequestsPerSecond disables
// limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// ComposeConfig bounds document composition.
type ComposeConfig struct {
	Timeout  time.Duration `koanf:"timeout"`
	Workers  int           `koanf:"workers"`
	MaxBatch int           `koanf:"max_batch"`
}

// SessionConfig controls wizard session lifetime. Sessions idle longer than
// TTL are swept every SweepInterval; a zero TTL keeps sessions forever.
type SessionConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}
