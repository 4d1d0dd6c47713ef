// Package config loads nsemit configuration.
//
// Settings are resolved in layers, with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority, applied by the caller
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← NSEMIT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/nsemit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # File Formats
//
// The file format is chosen by extension: .toml, .yaml or .yml.
//
//	[log]
//	level = "info"
//	format = "json"
//
//	[script]
//	timeout = "2s"
//	paths = ["~/.config/nsemit/init.lua"]
//
// # Environment Variables
//
//	NSEMIT_LOG_LEVEL       log.level
//	NSEMIT_LOG_FORMAT      log.format
//	NSEMIT_SCRIPT_TIMEOUT  script.timeout
//	NSEMIT_SCRIPT_PATHS    script.paths, comma-separated
//
// A missing config file is not an error. Parse errors carry the file
// position when the decoder reports one.
package config
