package config

const (
	defaultServerPort   = 8080
	defaultMaxBodyBytes = 1 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultComposeWorkers  = 4
	defaultComposeMaxBatch = 50
)

// defaults returns the built-in configuration. It is loaded first and can
// be overridden by base.yaml, the profile YAML and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "20s",
		"server.max_body_bytes":  defaultMaxBodyBytes,

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "dossier-service",

		"storage.driver":       StorageMemory,
		"storage.path":         "dossier.db",
		"storage.busy_timeout": "5s",

		"catalog.dir": "",

		"assets.source":                               AssetSourceFS,
		"assets.dir":                                  "assets",
		"assets.http.base_url":                        "http://localhost:8081",
		"assets.http.timeout":                         "10s",
		"assets.http.retry.max_attempts":              defaultRetryMaxAttempts,
		"assets.http.retry.initial_interval":          "100ms",
		"assets.http.retry.max_interval":              "2s",
		"assets.http.retry.multiplier":                defaultRetryMultiplier,
		"assets.http.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"assets.http.circuit_breaker.timeout":         "30s",
		"assets.http.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"assets.http.rate_limit.requests_per_second":  0,
		"assets.http.rate_limit.burst_size":           1,

		"compose.timeout":   "10s",
		"compose.workers":   defaultComposeWorkers,
		"compose.max_batch": defaultComposeMaxBatch,

		"session.ttl":            "24h",
		"session.sweep_interval": "10m",
	}
}
