package habit

import (
	"fmt"
	"sort"
	"time"

	"github.com/kingrea/habits/internal/calendar"
	"github.com/kingrea/habits/internal/logbook"
	"github.com/kingrea/habits/internal/storage"
)

// HabitStreak pairs a habit with its current streak.
type HabitStreak struct {
	Name   string
	Streak int
}

// HabitStatus is one row of the status board.
type HabitStatus struct {
	Name           string
	Streak         int
	CompletedToday bool
}

// Tracker records completions and answers streak queries against a store.
// Each call loads the log fresh; nothing is cached between calls.
type Tracker struct {
	store    storage.Store
	registry Registry
	now      func() time.Time
	journal  *logbook.Logbook
}

// TrackerOption customizes a Tracker during construction.
type TrackerOption func(*Tracker)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(clock func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if clock != nil {
			t.now = clock
		}
	}
}

// WithJournal records new completions in the activity journal.
func WithJournal(journal *logbook.Logbook) TrackerOption {
	return func(t *Tracker) {
		t.journal = journal
	}
}

// NewTracker builds a tracker over store for the habits in registry.
func NewTracker(store storage.Store, registry Registry, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		store:    store,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Registry returns the habits this tracker accepts.
func (t *Tracker) Registry() Registry {
	return t.registry
}

// Today returns the tracker's current calendar date.
func (t *Tracker) Today() calendar.Date {
	return calendar.Today(t.now)
}

// LogCompletion records name as done today.
func (t *Tracker) LogCompletion(name string) error {
	return t.LogCompletionOn(name, t.Today())
}

// LogCompletionOn records name as done on date. Unknown names fail with
// *InvalidHabitError before the log is touched. Logging the same day twice
// leaves the log as it was after the first call.
func (t *Tracker) LogCompletionOn(name string, date calendar.Date) error {
	if !t.registry.Contains(name) {
		t.journal.Warn("Rejected unknown habit %q", name)
		return &InvalidHabitError{Name: name, Known: t.registry.Names()}
	}
	if date.IsZero() {
		return fmt.Errorf("habit: log %s: date is required", name)
	}
	log, err := t.store.Load()
	if err != nil {
		return err
	}
	added := log.Add(name, date)
	if err := t.store.Save(log); err != nil {
		t.journal.Error("Could not save %s for %s: %v", name, date, err)
		return err
	}
	if added {
		t.journal.Info("Logged %s for %s", name, date)
	}
	return nil
}

// CalculateStreak returns the current streak for name. Names outside the
// registry simply have no completions.
func (t *Tracker) CalculateStreak(name string) (int, error) {
	log, err := t.store.Load()
	if err != nil {
		return 0, err
	}
	return Streak(log.Dates(name), t.Today()), nil
}

// AllStreaks returns every registry habit's streak in registry order.
func (t *Tracker) AllStreaks() ([]HabitStreak, error) {
	log, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	today := t.Today()
	names := t.registry.Names()
	out := make([]HabitStreak, 0, len(names))
	for _, name := range names {
		out = append(out, HabitStreak{Name: name, Streak: Streak(log.Dates(name), today)})
	}
	return out, nil
}

// IsCompletedToday reports whether name has a completion dated today.
func (t *Tracker) IsCompletedToday(name string) (bool, error) {
	log, err := t.store.Load()
	if err != nil {
		return false, err
	}
	return log.Has(name, t.Today()), nil
}

// Status returns streak and today's completion for every habit from a single
// load of the log.
func (t *Tracker) Status() ([]HabitStatus, error) {
	log, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	today := t.Today()
	names := t.registry.Names()
	out := make([]HabitStatus, 0, len(names))
	for _, name := range names {
		out = append(out, HabitStatus{
			Name:           name,
			Streak:         Streak(log.Dates(name), today),
			CompletedToday: log.Has(name, today),
		})
	}
	return out, nil
}

// Streak counts consecutive days ending at the most recent date, provided that
// date is today or yesterday. A most recent date of yesterday still counts so
// an unlogged today does not zero the chain.
func Streak(dates []calendar.Date, today calendar.Date) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := append([]calendar.Date{}, dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	mostRecent := sorted[0]
	if !mostRecent.Equal(today) && !mostRecent.Equal(today.AddDays(-1)) {
		return 0
	}
	streak := 1
	expected := mostRecent.AddDays(-1)
	for _, d := range sorted[1:] {
		if !d.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDays(-1)
	}
	return streak
}
