package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout bounds every IPC round trip.
	DefaultTimeout = 2 * time.Second

	// DefaultLogLevel keeps debug output quiet unless asked for.
	DefaultLogLevel = "warn"
)

// SwayctlConfig represents the optional config.yml
type SwayctlConfig struct {
	Version  string `yaml:"version"`
	Socket   string `yaml:"socket,omitempty"`  // Overrides $SWAYSOCK / $I3SOCK
	Timeout  string `yaml:"timeout,omitempty"` // Go duration, default 2s
	DryRun   bool   `yaml:"dry_run,omitempty"` // Print batches instead of running them
	LogLevel string `yaml:"log_level,omitempty"`

	timeout time.Duration
}

// Default returns the configuration used when no file exists.
func Default() *SwayctlConfig {
	return &SwayctlConfig{
		Version:  "1.0",
		Timeout:  DefaultTimeout.String(),
		LogLevel: DefaultLogLevel,
		timeout:  DefaultTimeout,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/swayctl/config.yml, falling back to
// ~/.config/swayctl/config.yml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "swayctl", "config.yml")
}

// Validate applies defaults and checks every field
func (c *SwayctlConfig) Validate() error {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Timeout == "" {
		c.Timeout = DefaultTimeout.String()
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	c.timeout = d

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (must be 'debug', 'info', 'warn', or 'error')", c.LogLevel)
	}

	return nil
}

// TimeoutDuration returns the validated IPC timeout.
func (c *SwayctlConfig) TimeoutDuration() time.Duration {
	if c.timeout <= 0 {
		return DefaultTimeout
	}
	return c.timeout
}

// Load reads and validates the config at path. When explicit is false a
// missing file yields the defaults.
func Load(path string, explicit bool) (*SwayctlConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
