package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-lessonmark/internal/yamlutil"
)

// AppName names the per-user config directory.
const AppName = "go-lessonmark"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxNameLength        = 100 // style name, command name
	MaxPageSizeLength    = 10  // "letter", "a4", "legal"
	MaxOrientationLength = 10  // "portrait", "landscape"
	MaxDurationLength    = 20  // "30s", "1m30s"
)

// Range limits.
const (
	MaxWorkers       = 32
	MaxRunnerTimeout = 5 * time.Minute
)

// Config is the CLI configuration file. Zero values mean "use the default".
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Style   StyleConfig   `yaml:"style"`
	Assets  AssetsConfig  `yaml:"assets"`
	Page    PageConfig    `yaml:"page"`
	Runner  RunnerConfig  `yaml:"runner"`
	Export  ExportConfig  `yaml:"export"`
}

// CatalogConfig locates lesson modules.
type CatalogConfig struct {
	Dir string `yaml:"dir"` // directory of module YAML files (empty = bundled catalog)
}

// OutputConfig defines output defaults.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = current directory)
}

// StyleConfig selects the page style.
type StyleConfig struct {
	Name string `yaml:"name"` // "lesson", "print", or a custom style (empty = default)
}

// AssetsConfig defines custom asset loading.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // directory containing styles/ (empty = embedded only)
}

// PageConfig defines handout page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// RunnerConfig configures code execution for the check command.
type RunnerConfig struct {
	Command string `yaml:"command"` // node executable (empty = "node")
	Timeout string `yaml:"timeout"` // Go duration, e.g. "5s" (empty = default)
}

// ExportConfig configures batch handout export.
type ExportConfig struct {
	Workers int `yaml:"workers"` // parallel browsers (0 = auto)
}

// TimeoutDuration returns the parsed runner timeout, or 0 when unset.
// Call Validate first; an invalid value also yields 0.
func (r RunnerConfig) TimeoutDuration() time.Duration {
	if r.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"catalog.dir", c.Catalog.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"style.name", c.Style.Name, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"runner.command", c.Runner.Command, MaxPathLength},
		{"runner.timeout", c.Runner.Timeout, MaxDurationLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin: must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	if c.Runner.Timeout != "" {
		d, err := time.ParseDuration(c.Runner.Timeout)
		if err != nil {
			return fmt.Errorf("%w: runner.timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 || d > MaxRunnerTimeout {
			return fmt.Errorf("%w: runner.timeout: must be between 0 and %v, got %v", ErrInvalidValue, MaxRunnerTimeout, d)
		}
	}

	if c.Export.Workers < 0 || c.Export.Workers > MaxWorkers {
		return fmt.Errorf("%w: export.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Export.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration where every value falls back to the
// built-in default.
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

	if isFilePath(nameOrPath) {
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

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists, in lookup order, where LoadConfig looks for a config name:
// the current directory, then <user config dir>/go-lessonmark/, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
