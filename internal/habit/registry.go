// Package habit owns the fixed habit registry and the operations that record
// completions and derive streaks from the completion log.
package habit

import "strings"

// Default habit names, in display order.
const (
	Programming      = "Programming"
	LanguageLearning = "Language learning"
	QuranReading     = "Qur'an reading"
	ReadingBooks     = "Reading books"
	Workout          = "Workout"
	Capital          = "Capital"
)

var defaultHabits = []string{
	Programming,
	LanguageLearning,
	QuranReading,
	ReadingBooks,
	Workout,
	Capital,
}

// Registry is the ordered, closed set of habits known at startup.
type Registry struct {
	names []string
	index map[string]int
}

// DefaultRegistry returns the built-in habit list.
func DefaultRegistry() Registry {
	return NewRegistry(defaultHabits)
}

// DefaultNames returns a copy of the built-in habit list.
func DefaultNames() []string {
	return append([]string{}, defaultHabits...)
}

// NewRegistry builds a registry from names, trimming whitespace and dropping
// blanks and repeats while keeping first-seen order.
func NewRegistry(names []string) Registry {
	r := Registry{index: make(map[string]int, len(names))}
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, ok := r.index[trimmed]; ok {
			continue
		}
		r.index[trimmed] = len(r.names)
		r.names = append(r.names, trimmed)
	}
	return r
}

// Names returns the habits in registry order.
func (r Registry) Names() []string {
	return append([]string{}, r.names...)
}

// Len returns the number of habits.
func (r Registry) Len() int {
	return len(r.names)
}

// Contains reports whether name is a registered habit. Matching is exact.
func (r Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}
