// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabasePath is the SQLite file holding the mirrored leaderboards.
	DatabasePath string `koanf:"database_path"`

	// APIBaseURL overrides the upstream leaderboard API base URL.
	// Empty means the client default.
	APIBaseURL string `koanf:"api_base_url"`

	// LeaderboardVariant is the upstream leaderboard kind; 0 is the
	// ranked division leaderboard.
	LeaderboardVariant int `koanf:"leaderboard_variant"`

	// FetchTimeoutSec bounds each per-region API call.
	FetchTimeoutSec int `koanf:"fetch_timeout_sec"`

	// Sleep windows for the sync loop, seconds.
	FallbackSleepSec int `koanf:"fallback_sleep_sec"` // advertised next update already past
	EmptySleepSec    int `koanf:"empty_sleep_sec"`    // every region failed
	ErrorSleepSec    int `koanf:"error_sleep_sec"`    // failed cycle
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		DatabasePath:       "leaderboard.db",
		APIBaseURL:         "",
		LeaderboardVariant: 0,
		FetchTimeoutSec:    30,
		FallbackSleepSec:   3600,
		EmptySleepSec:      300,
		ErrorSleepSec:      60,
	}
}
