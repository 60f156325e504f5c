package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// Defaults are applied before any file is read. Keys use dotted notation.
	Defaults map[string]any

	// AllowMissing returns a defaults-only provider instead of an error when
	// neither file exists.
	AllowMissing bool
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetFloat64(key string) float64
	GetStringSlice(key string) []string
	IsSet(key string) bool
	AllSettings() map[string]interface{}

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	// Callbacks execute in registration order.
	OnChange(fn func())

	// StopWatching stops delivering reload callbacks.
	StopWatching()

	// Source returns which config source is active: "yaml", "env" or "defaults".
	Source() string
}

// DefaultSettings are the built-in values for every key the service reads.
func DefaultSettings() map[string]any {
	return map[string]any{
		"server.port":                   8080,
		"server.read_timeout":           "30s",
		"server.write_timeout":          "30s",
		"server.cors.allow_origins":     []string{},
		"logging.level":                 "info",
		"display.scale_factor":          1.0,
		"session.id_strategy":           "uuidv7",
		"session.node_id":               1,
		"decode.max_concurrent":         0,
		"decode.max_source_pixels":      int64(64 * 1024 * 1024),
		"decode.max_inflight_pixels":    int64(128 * 1024 * 1024),
		"decode.interpolation":          "lanczos3",
		"fetch.timeout":                 "15s",
		"fetch.max_body_bytes":          int64(32 * 1024 * 1024),
		"fetch.max_concurrent":          16,
		"fetch.max_redirects":           5,
		"fetch.user_agent":              "remote-image-loader/1.0",
		"cache.memory.budget_bytes":     int64(0),
		"cache.persistent.backend":      "none",
		"cache.persistent.budget_bytes": int64(1024 * 1024),
		"cache.persistent.prefix":       "remote-image-loader:cache",
		"cache.persistent.key_salt":     "",
		"thumbnails.wait_timeout":       "20s",
	}
}
