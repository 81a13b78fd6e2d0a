package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/kingrea/habits/internal/config"
	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/logbook"
	"github.com/kingrea/habits/internal/logging"
	"github.com/kingrea/habits/internal/stats"
	"github.com/kingrea/habits/internal/storage"
	"github.com/kingrea/habits/internal/ui"
)

// clock is swapped by tests to pin "today".
var clock = time.Now

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	home    string
	config  string
	data    string
	noColor bool
	verbose bool
}

// app bundles everything a command needs for one invocation.
type app struct {
	cfg      *config.Config
	registry habit.Registry
	repo     *storage.Repository
	tracker  *habit.Tracker
	reporter *stats.Reporter
	journal  *logbook.Logbook
	logger   *logging.Logger
}

func newApp(flags *globalFlags, stderr io.Writer) (*app, error) {
	home := flags.home
	if home == "" {
		var err error
		home, err = config.DefaultHomeDir()
		if err != nil {
			return nil, err
		}
	}
	if err := config.InitHabitsDir(home); err != nil {
		return nil, err
	}
	cfg, err := config.Load(home, flags.config)
	if err != nil {
		return nil, err
	}
	cfg.SetDataFile(flags.data)
	ui.SetColor(cfg.Settings.Color && !flags.noColor)

	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		logger.SetMirror(stderr)
	}
	journal, err := logbook.New(cfg.JournalPath(), logbook.WithClock(clock))
	if err != nil {
		logger.Close()
		return nil, err
	}

	registry := habit.NewRegistry(cfg.Settings.Habits)
	repo := storage.NewRepository(cfg.DataPath())
	a := &app{
		cfg:      cfg,
		registry: registry,
		repo:     repo,
		tracker:  habit.NewTracker(repo, registry, habit.WithClock(clock), habit.WithJournal(journal)),
		reporter: stats.NewReporter(repo, registry, stats.WithClock(clock)),
		journal:  journal,
		logger:   logger,
	}
	a.logger.Printf("config %s · data %s · %d habits", cfg.ConfigFile, repo.Path(), registry.Len())
	return a, nil
}

func (a *app) logf(format string, args ...any) {
	if a == nil {
		return
	}
	a.logger.Printf(format, args...)
}

func (a *app) close() error {
	if a == nil {
		return nil
	}
	if err := a.logger.Close(); err != nil {
		return fmt.Errorf("cli: close log: %w", err)
	}
	return nil
}
