// Package config loads runtime configuration for the FeaturePulse SDK.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-k string   API key
//	-u string   backend base URL
//	-b string   application bundle identifier
//	-d string   sqlite DSN for local storage
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30m" or integer nanoseconds:
//
//	{
//	  "api_key": "fp_xxx",
//	  "base_url": "https://featurepul.se",
//	  "request_timeout": "30s",
//	  "session_timeout": "30m"
//	}
package config
