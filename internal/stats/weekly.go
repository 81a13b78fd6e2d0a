// Package stats aggregates the completion log over the trailing week.
package stats

import (
	"time"

	"github.com/kingrea/habits/internal/calendar"
	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/storage"
)

// WindowDays is the length of the weekly window, today included.
const WindowDays = 7

// DefaultCalendarDays is used when CompletionCalendar is asked for a
// non-positive span.
const DefaultCalendarDays = 7

// HabitSummary is one habit's activity inside the weekly window.
type HabitSummary struct {
	Name           string
	CompletedDays  int
	CompletionRate float64
	Dates          []calendar.Date
}

// Summary holds one record per registry habit, in registry order.
type Summary struct {
	From   calendar.Date
	To     calendar.Date
	Habits []HabitSummary
}

// Get returns the record for name.
func (s Summary) Get(name string) (HabitSummary, bool) {
	for _, h := range s.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return HabitSummary{}, false
}

// TotalCompletions sums CompletedDays across habits.
func (s Summary) TotalCompletions() int {
	total := 0
	for _, h := range s.Habits {
		total += h.CompletedDays
	}
	return total
}

// Best returns the habit with the most completions. Ties go to the habit
// listed first. ok is false when nothing was completed in the window.
func (s Summary) Best() (best Best, ok bool) {
	for _, h := range s.Habits {
		if h.CompletedDays > best.CompletedDays {
			best = Best{Name: h.Name, CompletedDays: h.CompletedDays}
		}
	}
	return best, best.CompletedDays > 0
}

// Best names the top habit of the week.
type Best struct {
	Name          string
	CompletedDays int
}

// Day is one cell of a completion calendar.
type Day struct {
	Date      calendar.Date
	Completed bool
}

// Summarize builds the weekly summary for [today-6, today].
func Summarize(log storage.Log, registry habit.Registry, today calendar.Date) Summary {
	from := today.AddDays(-(WindowDays - 1))
	names := registry.Names()
	summary := Summary{From: from, To: today, Habits: make([]HabitSummary, 0, len(names))}
	for _, name := range names {
		inWindow := []calendar.Date{}
		for _, d := range log.Dates(name) {
			if d.Between(from, today) {
				inWindow = append(inWindow, d)
			}
		}
		count := len(inWindow)
		summary.Habits = append(summary.Habits, HabitSummary{
			Name:           name,
			CompletedDays:  count,
			CompletionRate: float64(count) / WindowDays * 100,
			Dates:          inWindow,
		})
	}
	return summary
}

// Calendar lists the trailing days for name, oldest first, ending today.
func Calendar(log storage.Log, name string, today calendar.Date, days int) []Day {
	if days <= 0 {
		days = DefaultCalendarDays
	}
	out := make([]Day, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		out = append(out, Day{Date: d, Completed: log.Has(name, d)})
	}
	return out
}

// Reporter loads the log on each call and derives weekly statistics.
type Reporter struct {
	store    storage.Store
	registry habit.Registry
	now      func() time.Time
}

// ReporterOption customizes a Reporter.
type ReporterOption func(*Reporter)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(clock func() time.Time) ReporterOption {
	return func(r *Reporter) {
		if clock != nil {
			r.now = clock
		}
	}
}

// NewReporter builds a reporter over store.
func NewReporter(store storage.Store, registry habit.Registry, opts ...ReporterOption) *Reporter {
	r := &Reporter{store: store, registry: registry, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WeeklySummary summarizes the last seven days, today included.
func (r *Reporter) WeeklySummary() (Summary, error) {
	log, err := r.store.Load()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(log, r.registry, calendar.Today(r.now)), nil
}

// TotalCompletionsThisWeek sums completions across all habits for the week.
func (r *Reporter) TotalCompletionsThisWeek() (int, error) {
	summary, err := r.WeeklySummary()
	if err != nil {
		return 0, err
	}
	return summary.TotalCompletions(), nil
}

// BestHabit returns this week's top habit, or ok=false if nothing was done.
func (r *Reporter) BestHabit() (Best, bool, error) {
	summary, err := r.WeeklySummary()
	if err != nil {
		return Best{}, false, err
	}
	best, ok := summary.Best()
	return best, ok, nil
}

// CompletionCalendar returns days entries for name, oldest first.
func (r *Reporter) CompletionCalendar(name string, days int) ([]Day, error) {
	log, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return Calendar(log, name, calendar.Today(r.now), days), nil
}
