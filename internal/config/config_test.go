package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	cfg, err := Load(home, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Settings, DefaultSettings()) {
		t.Fatalf("expected defaults, got %+v", cfg.Settings)
	}
	if cfg.DataPath() != filepath.Join(home, "progress.json") {
		t.Fatalf("unexpected data path %s", cfg.DataPath())
	}
	if cfg.ConfigFile != filepath.Join(home, "config.yaml") {
		t.Fatalf("unexpected config file %s", cfg.ConfigFile)
	}
}

func TestInitHabitsDirWritesLoadableDefaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), ".habits")
	if err := InitHabitsDir(home); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	cfg, err := Load(home, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Settings, DefaultSettings()) {
		t.Fatalf("default file should decode to defaults, got %+v", cfg.Settings)
	}

	custom := []byte("version: 1\nhabits: [Chess]\n")
	path := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitHabitsDir(home); err != nil {
		t.Fatalf("second init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Fatalf("init must not overwrite an existing config")
	}
}

func TestLoadParsesYaml(t *testing.T) {
	home := t.TempDir()
	configYAML := strings.TrimSpace(`
version: 1
data_file: data/log.json
habits:
  - " Chess "
  - Running
  - Chess
calendar_days: 14
color: false
`)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(home, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.Settings.Habits; !reflect.DeepEqual(got, []string{"Chess", "Running"}) {
		t.Fatalf("habits = %v", got)
	}
	if cfg.Settings.CalendarDays != 14 {
		t.Fatalf("calendar days = %d", cfg.Settings.CalendarDays)
	}
	if cfg.Settings.Color {
		t.Fatalf("expected colour to be disabled")
	}
	if cfg.DataPath() != filepath.Join(home, "data", "log.json") {
		t.Fatalf("relative data file not resolved: %s", cfg.DataPath())
	}
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("calendar_days: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(home, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Settings.Color || len(cfg.Settings.Habits) != 6 || cfg.Settings.Version != 1 {
		t.Fatalf("omitted keys should keep defaults, got %+v", cfg.Settings)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"no habits":        "habits: []\n",
		"calendar too big": "calendar_days: 90\n",
		"negative version": "version: -1\n",
		"malformed yaml":   "habits: [unterminated\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(home, ""); err == nil {
				t.Fatalf("expected error but got none")
			}
		})
	}
}

func TestExplicitConfigFileAndDataOverride(t *testing.T) {
	home := t.TempDir()
	other := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(other, []byte("habits: [Yoga]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(home, other)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Settings.Habits, []string{"Yoga"}) {
		t.Fatalf("habits = %v", cfg.Settings.Habits)
	}
	target := filepath.Join(t.TempDir(), "elsewhere.json")
	cfg.SetDataFile(target)
	if cfg.DataPath() != target {
		t.Fatalf("data path = %s, want %s", cfg.DataPath(), target)
	}
}
