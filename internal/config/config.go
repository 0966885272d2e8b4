// Package config loads scribe settings from a global file and an optional
// per-project override.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable scribe settings. Empty fields mean "use the
// next layer down" when merging.
type Config struct {
	OutputDir   string `json:"output_dir"`   // override <cwd>/.claude/transcripts
	TimeFormat  string `json:"time_format"`  // Go layout for transcript timestamps
	DefaultView string `json:"default_view"` // "tui" | "plain"
}

// Defaults returns the built-in configuration. An empty OutputDir means
// "derive from the event's working directory".
func Defaults() Config {
	return Config{
		TimeFormat:  "2006-01-02 15:04:05",
		DefaultView: "tui",
	}
}

// overlay copies every non-empty field of src onto c.
func (c *Config) overlay(src *Config) {
	if src == nil {
		return
	}
	if src.OutputDir != "" {
		c.OutputDir = src.OutputDir
	}
	if src.TimeFormat != "" {
		c.TimeFormat = src.TimeFormat
	}
	if src.DefaultView != "" {
		c.DefaultView = src.DefaultView
	}
}

// Merge layers project over global over defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	result.overlay(global)
	result.overlay(project)
	return result
}

// LoadGlobal reads ~/.config/scribe/config.json, or returns defaults when
// the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return loadFile(filepath.Join(home, ".config", "scribe", "config.json"), true)
}

// LoadProject reads .scriberc in the current working directory, or returns
// nil (no error) when the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".scriberc", false)
}

func loadFile(path string, defaultsWhenMissing bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if defaultsWhenMissing {
			d := Defaults()
			return &d, nil
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
