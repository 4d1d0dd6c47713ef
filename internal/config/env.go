package config

import (
	"os"
	"strings"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "NSEMIT_"

// Environment variable names.
const (
	EnvLogLevel      = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat     = EnvPrefix + "LOG_FORMAT"
	EnvScriptTimeout = EnvPrefix + "SCRIPT_TIMEOUT"
	EnvScriptPaths   = EnvPrefix + "SCRIPT_PATHS"
)

// LoadEnv reads configuration from environment variables.
// Unset variables leave fields zero. NSEMIT_SCRIPT_PATHS is comma-separated.
func LoadEnv() (Config, error) {
	var cfg Config

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvScriptTimeout); ok {
		cfg.Script.Timeout = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvScriptPaths); ok {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Script.Paths = append(cfg.Script.Paths, p)
			}
		}
	}

	return cfg, nil
}
