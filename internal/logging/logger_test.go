package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPrintfWritesFileAndMirror(t *testing.T) {
	home := t.TempDir()
	logger, err := New(filepath.Join(home, "logs"))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }
	var mirror bytes.Buffer
	logger.SetMirror(&mirror)
	logger.Printf("loaded %d habits\n", 6)
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "logs", "habits.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	want := "[2024-05-01T09:00:00Z] loaded 6 habits\n"
	if string(data) != want {
		t.Fatalf("log file = %q, want %q", data, want)
	}
	if mirror.String() != want {
		t.Fatalf("mirror = %q, want %q", mirror.String(), want)
	}
}

func TestNilLoggerIsInert(t *testing.T) {
	var logger *Logger
	logger.Printf("nothing")
	logger.SetMirror(&bytes.Buffer{})
	if err := logger.Close(); err != nil {
		t.Fatalf("close nil logger: %v", err)
	}
	if logger.Path() != "" {
		t.Fatalf("nil logger must have no path")
	}
}

func TestPathPointsAtLogFile(t *testing.T) {
	home := t.TempDir()
	logger, err := New(filepath.Join(home, "logs"))
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer logger.Close()
	if !strings.HasSuffix(logger.Path(), filepath.Join("logs", "habits.log")) {
		t.Fatalf("unexpected path %s", logger.Path())
	}
}
