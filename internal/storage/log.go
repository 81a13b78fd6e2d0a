package storage

import (
	"sort"

	"github.com/kingrea/habits/internal/calendar"
)

// Log maps a habit name to its completion dates. Each list is kept unique and
// ascending; a habit missing from the map has no completions.
type Log map[string][]calendar.Date

// Dates returns the completion dates recorded for name. The slice must not be
// modified by callers.
func (l Log) Dates(name string) []calendar.Date {
	if l == nil {
		return nil
	}
	return l[name]
}

// Has reports whether name was completed on date.
func (l Log) Has(name string, date calendar.Date) bool {
	dates := l.Dates(name)
	idx := sort.Search(len(dates), func(i int) bool { return !dates[i].Before(date) })
	return idx < len(dates) && dates[idx].Equal(date)
}

// Add records date for name, keeping the list sorted. It reports whether the
// log changed; adding a date twice is a no-op.
func (l Log) Add(name string, date calendar.Date) bool {
	dates := l[name]
	idx := sort.Search(len(dates), func(i int) bool { return !dates[i].Before(date) })
	if idx < len(dates) && dates[idx].Equal(date) {
		return false
	}
	dates = append(dates, calendar.Date{})
	copy(dates[idx+1:], dates[idx:])
	dates[idx] = date
	l[name] = dates
	return true
}

// Clone returns a deep copy of the log.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for name, dates := range l {
		out[name] = append([]calendar.Date{}, dates...)
	}
	return out
}

// normalize sorts and de-duplicates every list in place.
func (l Log) normalize() {
	for name, dates := range l {
		if dates == nil {
			l[name] = []calendar.Date{}
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		unique := dates[:0]
		for i, d := range dates {
			if i > 0 && d.Equal(unique[len(unique)-1]) {
				continue
			}
			unique = append(unique, d)
		}
		l[name] = unique
	}
}
