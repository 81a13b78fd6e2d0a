package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kingrea/habits/internal/calendar"
	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/storage"
)

var referenceTime = time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	clock = func() time.Time { return referenceTime }
	os.Exit(m.Run())
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, home string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--home", home, "--no-color"}, args...)
	err := newRoot("test").run(full, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func loadLog(t *testing.T, home string) storage.Log {
	t.Helper()
	log, err := storage.NewRepository(filepath.Join(home, "progress.json")).Load()
	if err != nil {
		t.Fatalf("load log: %v", err)
	}
	return log
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNoArgumentsShowsStatus(t *testing.T) {
	home := t.TempDir()
	res := execute(t, home)
	if res.err != nil {
		t.Fatalf("unexpected error: %v\n%s", res.err, res.stderr)
	}
	mustContain(t, res.stdout,
		"STUDY & DISCIPLINE TRACKER",
		"Friday, May 10, 2024",
		"⬜ Programming",
		"Completed today: 0/6",
	)
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
}

func TestLogJoinsWordsAndReportsStreak(t *testing.T) {
	home := t.TempDir()
	yesterday := calendar.FromTime(referenceTime).AddDays(-1)
	repo := storage.NewRepository(filepath.Join(home, "progress.json"))
	if err := repo.Save(storage.Log{habit.LanguageLearning: {yesterday}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res := execute(t, home, "log", "Language", "learning")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout, "✅ Logged: Language learning", "Current streak: 2 days")

	dates := loadLog(t, home).Dates(habit.LanguageLearning)
	if len(dates) != 2 || !dates[1].Equal(calendar.FromTime(referenceTime)) {
		t.Fatalf("dates = %v", dates)
	}

	res = execute(t, home, "status")
	mustContain(t, res.stdout, "✅ Language learning", "Completed today: 1/6")

	res = execute(t, home, "history")
	mustContain(t, res.stdout, "Logged Language learning for 2024-05-10")
}

func TestLogTwiceIsIdempotent(t *testing.T) {
	home := t.TempDir()
	execute(t, home, "log", "Workout")
	res := execute(t, home, "LOG", "Workout")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout, "Current streak: 1 days")
	if got := len(loadLog(t, home).Dates(habit.Workout)); got != 1 {
		t.Fatalf("expected a single date, got %d", got)
	}
}

func TestLogUnknownHabitListsRegistry(t *testing.T) {
	home := t.TempDir()
	res := execute(t, home, "log", "Juggling")
	if res.err != nil {
		t.Fatalf("unknown habit should not fail the command: %v", res.err)
	}
	mustContain(t, res.stdout, "Unknown habit: 'Juggling'", "  - Programming\n", "  - Capital\n")
	if _, err := os.Stat(filepath.Join(home, "progress.json")); !os.IsNotExist(err) {
		t.Fatalf("data file must not be created, stat err = %v", err)
	}
}

func TestLogWithoutHabitPrintsUsage(t *testing.T) {
	home := t.TempDir()
	res := execute(t, home, "log")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout, "Usage: habits log <habit>")
	if len(loadLog(t, home)) != 0 {
		t.Fatalf("log should stay empty")
	}
}

func TestSummaryShowsTotalsAndBest(t *testing.T) {
	home := t.TempDir()
	today := calendar.FromTime(referenceTime)
	repo := storage.NewRepository(filepath.Join(home, "progress.json"))
	err := repo.Save(storage.Log{
		habit.Programming:  {today.AddDays(-2), today.AddDays(-1), today},
		habit.ReadingBooks: {today.AddDays(-9), today},
		habit.QuranReading: {today.AddDays(-7)},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	res := execute(t, home, "summary")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout,
		"2024-05-04 → 2024-05-10",
		"Total completions this week: 4",
		"Best habit: Programming (3/7 days)",
	)
}

func TestCalendarUsesDaysFlag(t *testing.T) {
	home := t.TempDir()
	execute(t, home, "log", "Capital")
	res := execute(t, home, "calendar", "Capital", "--days", "3")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout, "2024-05-08 → 2024-05-10", "1/3 days completed")

	res = execute(t, home, "calendar", "Nope")
	mustContain(t, res.stdout, "Unknown habit: 'Nope'")
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()
	res := execute(t, home, "dance")
	if res.err == nil {
		t.Fatalf("expected an error for an unknown command")
	}
	mustContain(t, res.stderr, `unknown command "dance"`, "Run 'habits help' for usage.")
	if _, err := os.Stat(filepath.Join(home, "progress.json")); !os.IsNotExist(err) {
		t.Fatalf("unknown command must not touch the data file")
	}
}

func TestCorruptDataFileIsReported(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	res := execute(t, home, "log", "Workout")
	if res.err == nil {
		t.Fatalf("expected parse error")
	}
	mustContain(t, res.stderr, "storage: parse")
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Fatalf("corrupt file was rewritten: %q", data)
	}
}

func TestConfiguredHabitsReplaceDefaults(t *testing.T) {
	home := t.TempDir()
	cfg := "version: 1\nhabits:\n  - Meditation\n  - Running\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	res := execute(t, home, "log", "Programming")
	mustContain(t, res.stdout, "Unknown habit: 'Programming'", "  - Meditation\n")

	res = execute(t, home, "log", "Running")
	mustContain(t, res.stdout, "✅ Logged: Running")

	res = execute(t, home, "config", "show")
	mustContain(t, res.stdout, "habits:", "- Meditation", "calendar_days: 7")
}

func TestDataFlagOverridesLocation(t *testing.T) {
	home := t.TempDir()
	data := filepath.Join(t.TempDir(), "elsewhere.json")
	execute(t, home, "--data", data, "log", "Programming")
	if _, err := os.Stat(data); err != nil {
		t.Fatalf("expected data at %s: %v", data, err)
	}
	res := execute(t, home, "--data", data, "config", "path")
	mustContain(t, res.stdout, "Data:    "+data, "Logs:    "+filepath.Join(home, "logs", "habits.log"))
}

func TestHelpListsHabitsWithoutCreatingFiles(t *testing.T) {
	home := filepath.Join(t.TempDir(), "fresh")
	res := execute(t, home, "help")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	mustContain(t, res.stdout, "Available habits:", "  - Qur'an reading\n")
	if _, err := os.Stat(home); !os.IsNotExist(err) {
		t.Fatalf("help must not create the habits directory, stat err = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, t.TempDir(), "version")
	if res.err != nil || strings.TrimSpace(res.stdout) != "habits test" {
		t.Fatalf("version output = %q, err = %v", res.stdout, res.err)
	}
}
