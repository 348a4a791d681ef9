package config

import (
	"encoding/json"
	"os"

	"github.com/featurepulse/featurepulse-go/internal/flagx"
	"github.com/featurepulse/featurepulse-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file can specify them either as strings like "30m"
// or as integer nanoseconds.
type JsonConfig struct {
	APIKey         string         `json:"api_key"`
	BaseURL        string         `json:"base_url"`
	BundleID       string         `json:"bundle_id"`
	DatabaseDSN    string         `json:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionTimeout timex.Duration `json:"session_timeout"`
}

// parseJson overlays Config with values from the JSON file named by the -c
// or -config flag. No flag, no overlay. Fields absent from the file keep
// their current values. Panics on read or unmarshal errors (caller should
// recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.BundleID != "" {
		cfg.BundleID = jc.BundleID
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionTimeout.Duration != 0 {
		cfg.SessionTimeout = jc.SessionTimeout.Duration
	}
}
