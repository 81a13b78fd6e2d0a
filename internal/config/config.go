// internal/config/config.go
//
// This package handles configuration and the ~/.habits directory layout.
// The directory holds the completion log, the config file, the activity
// journal and diagnostic logs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/kingrea/habits/internal/habit"
)

const (
	// HabitsDir is the name of the directory created in the user's home.
	HabitsDir = ".habits"

	defaultDataFile     = "progress.json"
	defaultCalendarDays = 7
	maxCalendarDays     = 31
)

const defaultConfigYAML = `# habits configuration
version: 1

# Completion log. Relative paths resolve against this directory.
data_file: progress.json

# Tracked habits, in display order. Read once at startup.
habits:
  - Programming
  - Language learning
  - Qur'an reading
  - Reading books
  - Workout
  - Capital

# Days shown by the calendar command when --days is not given.
calendar_days: 7

# Set to false to print without ANSI colours.
color: true
`

// Settings models config.yaml.
type Settings struct {
	Version      int      `yaml:"version" mapstructure:"version"`
	DataFile     string   `yaml:"data_file" mapstructure:"data_file"`
	Habits       []string `yaml:"habits" mapstructure:"habits"`
	CalendarDays int      `yaml:"calendar_days" mapstructure:"calendar_days"`
	Color        bool     `yaml:"color" mapstructure:"color"`
}

// Config holds the runtime configuration.
type Config struct {
	// HomeDir is the habits directory, usually ~/.habits
	HomeDir string

	// ConfigFile is the config.yaml that was (or would be) read
	ConfigFile string

	Settings Settings
}

// DefaultHomeDir returns ~/.habits.
func DefaultHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, HabitsDir), nil
}

// InitHabitsDir creates the directory layout and writes a default
// config.yaml if none exists yet.
//
// Structure created:
// ~/.habits/
// ├── config.yaml
// └── logs/        <- diagnostics
func InitHabitsDir(homeDir string) error {
	if err := os.MkdirAll(filepath.Join(homeDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: ensure habits dir: %w", err)
	}
	return ensureConfigFile(filepath.Join(homeDir, "config.yaml"))
}

// Load reads configuration for homeDir. configFile overrides the default
// <homeDir>/config.yaml location. A missing file yields defaults.
func Load(homeDir, configFile string) (*Config, error) {
	if strings.TrimSpace(configFile) == "" {
		configFile = filepath.Join(homeDir, "config.yaml")
	}
	cfg := &Config{
		HomeDir:    homeDir,
		ConfigFile: configFile,
		Settings:   DefaultSettings(),
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Version:      1,
		DataFile:     defaultDataFile,
		Habits:       habit.DefaultNames(),
		CalendarDays: defaultCalendarDays,
		Color:        true,
	}
}

// DataPath returns the absolute path of the completion log.
func (c *Config) DataPath() string {
	return resolvePath(c.HomeDir, c.Settings.DataFile)
}

// JournalPath returns the activity journal location.
func (c *Config) JournalPath() string {
	return filepath.Join(c.HomeDir, "journal.log")
}

// LogsDir returns the diagnostics directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.HomeDir, "logs")
}

// SetDataFile overrides the completion log location for this run only.
func (c *Config) SetDataFile(path string) {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			abs = trimmed
		}
		c.Settings.DataFile = abs
	}
}

func (c *Config) loadFile() error {
	if _, err := os.Stat(c.ConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", c.ConfigFile, err)
	}

	v := viper.New()
	v.SetConfigFile(c.ConfigFile)
	v.SetConfigType("yaml")
	defaults := DefaultSettings()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("data_file", defaults.DataFile)
	v.SetDefault("habits", defaults.Habits)
	v.SetDefault("calendar_days", defaults.CalendarDays)
	v.SetDefault("color", defaults.Color)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.ConfigFile, err)
	}
	var parsed Settings
	if err := v.Unmarshal(&parsed); err != nil {
		return fmt.Errorf("config: decode %s: %w", c.ConfigFile, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Settings = parsed
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.DataFile) == "" {
		s.DataFile = defaultDataFile
	}
	if s.CalendarDays == 0 {
		s.CalendarDays = defaultCalendarDays
	}
}

func (s *Settings) normalize() {
	s.DataFile = strings.TrimSpace(s.DataFile)
	seen := map[string]struct{}{}
	habits := make([]string, 0, len(s.Habits))
	for _, name := range s.Habits {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		habits = append(habits, trimmed)
	}
	s.Habits = habits
}

func (s *Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if len(s.Habits) == 0 {
		return fmt.Errorf("habits: at least one habit is required")
	}
	if s.CalendarDays < 1 || s.CalendarDays > maxCalendarDays {
		return fmt.Errorf("calendar_days must be between 1 and %d", maxCalendarDays)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
