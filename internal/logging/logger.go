package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Logger appends timestamped diagnostic lines to habits.log inside the
// diagnostics directory. With a mirror set, each line is echoed there too.
type Logger struct {
	file   *os.File
	mirror io.Writer
	now    func() time.Time
}

// New creates (or reuses) habits.log inside logDir.
func New(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, "habits.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{file: f, now: time.Now}, nil
}

// SetMirror echoes every line to w as well as the file (used by --verbose).
func (l *Logger) SetMirror(w io.Writer) {
	if l == nil {
		return
	}
	l.mirror = w
}

// Path returns the log file location.
func (l *Logger) Path() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	timestamp := l.now().Format(time.RFC3339)
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s\n", timestamp, line)
	}
	if l.mirror != nil {
		fmt.Fprintf(l.mirror, "[%s] %s\n", timestamp, line)
	}
}
