package config

import (
	"fmt"
	"time"
)

// Config is the resolved configuration.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Script ScriptConfig `toml:"script" yaml:"script"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// Format is console or json.
	Format string `toml:"format" yaml:"format"`
}

// ScriptConfig configures the Lua host.
type ScriptConfig struct {
	// Timeout bounds one script run or trigger, as a Go duration string.
	// "0" disables the timeout.
	Timeout string `toml:"timeout" yaml:"timeout"`

	// Paths are scripts loaded before every command.
	Paths []string `toml:"paths" yaml:"paths"`
}

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
		Script: ScriptConfig{
			Timeout: "5s",
		},
	}
}

// Validate checks that every setting holds an accepted value.
func (c Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level %q (must be trace, debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}
	if _, err := c.ScriptTimeout(); err != nil {
		return err
	}
	return nil
}

// ScriptTimeout parses Script.Timeout.
func (c Config) ScriptTimeout() (time.Duration, error) {
	if c.Script.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: script.timeout %q: %v", ErrInvalidValue, c.Script.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: script.timeout %q is negative", ErrInvalidValue, c.Script.Timeout)
	}
	return d, nil
}

// merge overlays the non-zero fields of other onto c.
func (c *Config) merge(other Config) {
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
	if other.Script.Timeout != "" {
		c.Script.Timeout = other.Script.Timeout
	}
	if len(other.Script.Paths) > 0 {
		c.Script.Paths = append([]string(nil), other.Script.Paths...)
	}
}
