// File: config.go
// Title: Settings File Loading
// Description: Implements loading, parsing and applying of goinglogging
//              settings from TOML and YAML files with environment variable
//              overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/msto63/goinglogging/gl"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Environment variables that override file values
const (
	EnvPrefixes = "GL_PREFIXES"
	EnvOutput   = "GL_OUTPUT"
	EnvColor    = "GL_COLOR"
)

// Settings holds the loaded library settings. Pointer fields distinguish
// "absent" from an explicit false.
type Settings struct {
	Prefixes string `toml:"prefixes" yaml:"prefixes"`
	Output   *bool  `toml:"output" yaml:"output"`
	Color    *bool  `toml:"color" yaml:"color"`
}

// file is the on-disk document shape: settings live under a
// [goinglogging] section
type file struct {
	Goinglogging Settings `toml:"goinglogging" yaml:"goinglogging"`
}

// Load reads settings from path, auto-detecting the format from the file
// extension, and applies environment variable overrides.
func Load(path string) (*Settings, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads settings from path in the given format
func LoadWithFormat(path string, format Format) (*Settings, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config file path cannot be empty")
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	var doc file
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parse TOML config %s", path)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parse YAML config %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format: %s", format)
	}

	s := doc.Goinglogging
	applyEnv(&s)

	return &s, nil
}

// Apply loads settings from path and applies them to the library
func Apply(path string) error {
	s, err := Load(path)
	if err != nil {
		return err
	}
	return s.Apply()
}

// Apply installs the settings into the library's process-wide state.
// Absent fields leave the current state untouched.
func (s *Settings) Apply() error {
	if s.Prefixes != "" {
		p, err := gl.ParsePrefix(s.Prefixes)
		if err != nil {
			return errors.Wrap(err, "apply config")
		}
		gl.SetPrefixes(p)
	}
	if s.Output != nil {
		gl.SetOutputEnabled(*s.Output)
	}
	if s.Color != nil {
		gl.SetColorEnabled(*s.Color)
	}
	return nil
}

// detectFormat maps a file extension to a format, defaulting to TOML
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyEnv overrides file values with environment variables. Values that do
// not parse are ignored, keeping the file value.
func applyEnv(s *Settings) {
	if v := os.Getenv(EnvPrefixes); v != "" {
		s.Prefixes = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Output = &b
		}
	}
	if v := os.Getenv(EnvColor); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Color = &b
		}
	}
}
