package habit

import (
	"errors"
	"fmt"
)

// ErrInvalidHabit matches any InvalidHabitError via errors.Is.
var ErrInvalidHabit = errors.New("habit: unknown habit")

// InvalidHabitError reports a name outside the registry.
type InvalidHabitError struct {
	Name  string
	Known []string
}

func (e *InvalidHabitError) Error() string {
	return fmt.Sprintf("habit: unknown habit %q", e.Name)
}

// Is lets errors.Is(err, ErrInvalidHabit) succeed.
func (e *InvalidHabitError) Is(target error) bool {
	return target == ErrInvalidHabit
}
