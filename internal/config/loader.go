package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG config subdirectory.
const AppName = "nsemit"

// DefaultPath returns the user config file path under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load resolves configuration from defaults, the file at path and the
// environment. An empty path means DefaultPath. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	fileCfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg.merge(fileCfg)

	envCfg, err := LoadEnv()
	if err != nil {
		return cfg, err
	}
	cfg.merge(envCfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads a TOML (.toml) or YAML (.yaml, .yml) file.
// Returns a zero Config if the file doesn't exist.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// parseTOML parses TOML data.
func parseTOML(path string, data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		perr := &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			perr.Line, perr.Column = decodeErr.Position()
		}
		return Config{}, perr
	}
	return cfg, nil
}

// parseYAML parses YAML data.
func parseYAML(path string, data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return cfg, nil
}
