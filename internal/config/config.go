package config

import "time"

// Config holds runtime settings for the FeaturePulse SDK and its CLI.
//
// Fields:
//   - APIKey: project API key; required before any network call.
//   - BaseURL: backend origin, scheme included.
//   - BundleID: application identifier reported with submissions.
//   - DatabaseDSN: sqlite DSN for the local key-value store.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionTimeout: inactivity window after which a foreground event
//     counts as a new session.
type Config struct {
	APIKey         string
	BaseURL        string
	BundleID       string
	DatabaseDSN    string
	RequestTimeout time.Duration
	SessionTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The API key has no
// default on purpose.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://featurepul.se"
	c.BundleID = "unknown"
	c.DatabaseDSN = "featurepulse.db"
	c.RequestTimeout = 30 * time.Second
	c.SessionTimeout = 30 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file (if
// present), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
