// Package config loads YAML capture profiles for web2pdf.
//
// A profile can be referenced by file path or by bare name; names are
// searched in the current directory and the user config directory
// (~/.config/go-web2pdf/ on Linux), trying .yaml then .yml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-web2pdf/internal/fileutil"
	"github.com/alnah/go-web2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxSelectorLength  = 200  // CSS selector
	MaxUserAgentLength = 512  // User-agent string
	MaxDirLength       = 1024 // Output directory path
)

// Config holds a capture profile.
type Config struct {
	Capture  CaptureConfig  `yaml:"capture"`
	Viewport ViewportConfig `yaml:"viewport"`
	Page     PageConfig     `yaml:"page"`
	Output   OutputConfig   `yaml:"output"`
}

// CaptureConfig defines content selection and timing.
// Durations use Go syntax ("60s", "1m30s"); empty means library default.
type CaptureConfig struct {
	Selector     string `yaml:"selector"`     // Content CSS selector
	NavTimeout   string `yaml:"navTimeout"`   // Navigation + export timeout
	ImageTimeout string `yaml:"imageTimeout"` // Image readiness wait bound
	SettleScroll string `yaml:"settleScroll"` // Pause after the lazy-load scroll
	SettleImages string `yaml:"settleImages"` // Pause after the deferred-image pass
	SettleFinal  string `yaml:"settleFinal"`  // Pause after revealing images
}

// ViewportConfig defines the emulated viewport.
type ViewportConfig struct {
	Width     int    `yaml:"width"`     // 0 = library default (414)
	Height    int    `yaml:"height"`    // 0 = library default (896)
	UserAgent string `yaml:"userAgent"` // Empty = iPhone default
}

// PageConfig defines PDF page geometry.
type PageConfig struct {
	Size        string   `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string   `yaml:"orientation"` // "portrait", "landscape"
	MarginPx    *float64 `yaml:"marginPx"`    // nil = library default (20)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Prepended to relative output paths
}

// DefaultConfig returns a neutral configuration; all zero values defer to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field lengths and duration syntax.
func (c *Config) Validate() error {
	if len(c.Capture.Selector) > MaxSelectorLength {
		return fmt.Errorf("%w: capture.selector (%d chars, max %d)",
			ErrFieldTooLong, len(c.Capture.Selector), MaxSelectorLength)
	}
	if len(c.Viewport.UserAgent) > MaxUserAgentLength {
		return fmt.Errorf("%w: viewport.userAgent (%d chars, max %d)",
			ErrFieldTooLong, len(c.Viewport.UserAgent), MaxUserAgentLength)
	}
	if len(c.Output.DefaultDir) > MaxDirLength {
		return fmt.Errorf("%w: output.defaultDir (%d chars, max %d)",
			ErrFieldTooLong, len(c.Output.DefaultDir), MaxDirLength)
	}

	durations := map[string]string{
		"capture.navTimeout":   c.Capture.NavTimeout,
		"capture.imageTimeout": c.Capture.ImageTimeout,
		"capture.settleScroll": c.Capture.SettleScroll,
		"capture.settleImages": c.Capture.SettleImages,
		"capture.settleFinal":  c.Capture.SettleFinal,
	}
	for field, value := range durations {
		if _, err := ParseDuration(value, 0); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	return nil
}

// ParseDuration parses a Go duration string, returning fallback for empty
// input. Negative durations are rejected.
func ParseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q (must not be negative)", ErrInvalidDuration, s)
	}
	return d, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-web2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-web2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
