// Package config defines service configuration and its layered loader.
package config

// Annotation backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// SnapshotPath points at the JSON data snapshot loaded at startup.
	SnapshotPath string `koanf:"snapshot_path"`

	// AnnotationBackend selects where bookmarks and reports live: memory or redis.
	AnnotationBackend string `koanf:"annotation_backend"`

	// RedisURL is required when AnnotationBackend is redis.
	RedisURL string `koanf:"redis_url"`

	// TopN is the average-rank threshold applied by the top=true board flag.
	TopN int `koanf:"top_n"`

	// MetricsIntervalMS is the refresh period of the background gauge updater.
	MetricsIntervalMS int `koanf:"metrics_interval_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		SnapshotPath:      "data/snapshot.json",
		AnnotationBackend: BackendMemory,
		TopN:              10,
		MetricsIntervalMS: 5000,
	}
}
