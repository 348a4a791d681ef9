package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; it never
// overrides variables already exported.
//
// Recognized variables:
//
//	FEATUREPULSE_API_KEY
//	FEATUREPULSE_BASE_URL
//	FEATUREPULSE_BUNDLE_ID
//	FEATUREPULSE_DB_DSN
//	FEATUREPULSE_REQUEST_TIMEOUT   (time.ParseDuration format, e.g. "30s")
//	FEATUREPULSE_SESSION_TIMEOUT   (e.g. "30m")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FEATUREPULSE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FEATUREPULSE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FEATUREPULSE_BUNDLE_ID"); v != "" {
		cfg.BundleID = v
	}
	if v := os.Getenv("FEATUREPULSE_DB_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("FEATUREPULSE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("FEATUREPULSE_SESSION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTimeout = d
		}
	}
}
