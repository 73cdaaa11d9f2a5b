// Package config loads goinglogging settings from TOML or YAML files.
//
// Package: config
// Title: goinglogging Settings Loader
// Description: This package reads the library's process-wide settings
//              (prefix set, output flag, color flag) from a configuration
//              file and applies them. The file format is auto-detected from
//              the extension, and environment variables override file values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//
//	if err := config.Apply("goinglogging.toml"); err != nil {
//		// fall back to defaults
//	}
//
// With a file like:
//
//	[goinglogging]
//	prefixes = "file|line|time"
//	output = true
//	color = false
//
// Environment overrides: GL_PREFIXES, GL_OUTPUT, GL_COLOR.
package config
