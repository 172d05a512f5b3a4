package licensure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mjtb/licensure/date"
)

// Config is the tool configuration: where the data lives, how git sync
// behaves, and the licensure targets. It is read-only during a command.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Git       GitConfig       `yaml:"git"`
	Licensure LicensureConfig `yaml:"licensure"`
}

// DataConfig locates the data directory holding hours.json.
type DataConfig struct {
	Directory string `yaml:"directory"`
}

// GitConfig controls the version-control sync collaborator.
type GitConfig struct {
	Remote   string `yaml:"remote"`
	AutoPush bool   `yaml:"auto_push"`
}

// LicensureConfig is the on-disk form of the licensure targets. The start
// date stays a string here so a malformed config fails with a clear error at
// Target() rather than a YAML type error.
type LicensureConfig struct {
	StartDate         string  `yaml:"start_date"`
	TotalHoursTarget  int     `yaml:"total_hours_target"`
	DirectHoursTarget int     `yaml:"direct_hours_target"`
	MinMonths         int     `yaml:"min_months"`
	MinWeeklyAverage  float64 `yaml:"min_weekly_average"`
}

// Target parses and checks the configured licensure targets. The start date
// must fall on the fixed week-start weekday.
func (c LicensureConfig) Target() (LicensureTarget, error) {
	start, err := date.Parse(c.StartDate)
	if err != nil {
		return LicensureTarget{}, fmt.Errorf("%w: licensure start_date: %v", ErrInvalidDate, err)
	}
	if !date.IsWeekStart(start) {
		return LicensureTarget{}, fmt.Errorf("%w: licensure start_date %s is a %s, want %s", ErrInvalidDate, start, start.Weekday(), date.WeekStart)
	}
	return LicensureTarget{
		StartDate:        start,
		TotalHours:       c.TotalHoursTarget,
		DirectHours:      c.DirectHoursTarget,
		MinMonths:        c.MinMonths,
		MinWeeklyAverage: decimal.NewFromFloat(c.MinWeeklyAverage),
	}, nil
}

// ConfigDir returns the directory holding config.yaml: $HOURS_CONFIG_DIR if
// set, otherwise ~/.config/hours.
func ConfigDir() string {
	if dir := os.Getenv("HOURS_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = expandTilde("~/.config")
	}
	return filepath.Join(base, "hours")
}

// ConfigPath returns the default config file path.
func ConfigPath() string { return filepath.Join(ConfigDir(), "config.yaml") }

// LoadConfig reads the configuration from the default location.
func LoadConfig() (*Config, error) {
	path := ConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration not found at %s: run `hours init` to set up", path)
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads the configuration from an explicit path and applies
// the environment overrides: HOURS_DATA_DIR replaces the data directory and
// HOURS_NO_GIT=1 disables auto push.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	if dir := os.Getenv("HOURS_DATA_DIR"); dir != "" {
		cfg.Data.Directory = dir
	}
	if os.Getenv("HOURS_NO_GIT") == "1" {
		cfg.Git.AutoPush = false
	}
	cfg.Data.Directory = expandTilde(cfg.Data.Directory)

	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// DataDir returns the configured data directory.
func (c *Config) DataDir() string { return c.Data.Directory }

// DataFile returns the ledger file path inside the data directory.
func (c *Config) DataFile() string { return filepath.Join(c.Data.Directory, "hours.json") }

func expandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
