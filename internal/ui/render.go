// Package ui renders tracker output for the terminal. Every function returns
// a string; printing is left to the caller.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/habits/internal/calendar"
	"github.com/kingrea/habits/internal/habit"
	"github.com/kingrea/habits/internal/stats"
)

const (
	ruleWidth  = 50
	nameWidth  = 25
	dateFormat = "Monday, January 02, 2006"
)

// Banner is the heading printed above status and summary screens.
func Banner() string {
	rule := ruleStyle.Render(strings.Repeat("=", ruleWidth))
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		rule,
		titleStyle.Render("  📚 STUDY & DISCIPLINE TRACKER"),
		rule,
		"",
	)
}

// Status renders the daily board: one row per habit plus a completion count.
func Status(today calendar.Date, rows []habit.HabitStatus) string {
	var b strings.Builder
	b.WriteString(Banner())
	b.WriteString("\n")
	fmt.Fprintf(&b, "📅 %s\n\n", today.Format(dateFormat))
	b.WriteString(headingStyle.Render("HABIT STATUS:") + "\n")
	b.WriteString(rule() + "\n")

	completed := 0
	for _, row := range rows {
		icon := pendingStyle.Render("⬜")
		if row.CompletedToday {
			icon = doneStyle.Render("✅")
			completed++
		}
		fire := "  "
		if row.Streak > 0 {
			fire = "🔥"
		}
		streak := streakStyle.Render(fmt.Sprintf("%2d days", row.Streak))
		fmt.Fprintf(&b, "%s %-*s %s %s\n", icon, nameWidth, row.Name, fire, streak)
	}

	b.WriteString(rule() + "\n")
	fmt.Fprintf(&b, "\n📊 Completed today: %d/%d\n", completed, len(rows))
	return b.String()
}

// Logged confirms a completion and shows the resulting streak.
func Logged(name string, streak int) string {
	return fmt.Sprintf("%s %s\n🔥 Current streak: %s\n",
		doneStyle.Render("✅ Logged:"),
		name,
		streakStyle.Render(fmt.Sprintf("%d days", streak)),
	)
}

// UnknownHabit explains that name is not tracked and lists what is.
func UnknownHabit(name string, known []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s '%s'\n", errorStyle.Render("❌ Unknown habit:"), name)
	b.WriteString("\nAvailable habits:\n")
	b.WriteString(HabitList(known))
	return b.String()
}

// HabitList renders names as an indented bullet list.
func HabitList(names []string) string {
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	return b.String()
}

// Usage renders a one-line usage error.
func Usage(line string) string {
	return errorStyle.Render("❌ Usage:") + " " + line + "\n"
}

// Summary renders the weekly table, total completions and best habit.
func Summary(summary stats.Summary) string {
	var b strings.Builder
	b.WriteString(Banner())
	b.WriteString("\n")
	fmt.Fprintf(&b, "🗓  Week of %s → %s\n\n", summary.From, summary.To)
	b.WriteString(headingStyle.Render("WEEKLY SUMMARY:") + "\n")
	b.WriteString(rule() + "\n")
	for _, h := range summary.Habits {
		strip := Strip(weekDays(summary, h))
		fmt.Fprintf(&b, "%-*s %s %s\n",
			nameWidth, h.Name,
			streakStyle.Render(fmt.Sprintf("%d/%d", h.CompletedDays, stats.WindowDays)),
			detailStyle.Render(fmt.Sprintf("%5.1f%%", h.CompletionRate)),
		)
		fmt.Fprintf(&b, "  %s\n", strip)
	}
	b.WriteString(rule() + "\n")
	fmt.Fprintf(&b, "\n📊 Total completions this week: %d\n", summary.TotalCompletions())
	if best, ok := summary.Best(); ok {
		fmt.Fprintf(&b, "🏆 Best habit: %s (%d/%d days)\n", best.Name, best.CompletedDays, stats.WindowDays)
	} else {
		b.WriteString(hintStyle.Render("🏆 No completions this week yet.") + "\n")
	}
	return b.String()
}

// Calendar renders one habit's completion strip with weekday labels.
func Calendar(name string, days []stats.Day) string {
	completed := 0
	labels := make([]string, 0, len(days))
	for _, d := range days {
		if d.Completed {
			completed++
		}
		labels = append(labels, d.Date.Weekday().String()[:1])
	}
	var from, to string
	if len(days) > 0 {
		from, to = days[0].Date.String(), days[len(days)-1].Date.String()
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(name),
		hintStyle.Render(fmt.Sprintf("%s → %s", from, to)),
		"",
		hintStyle.Render(strings.Join(labels, " ")),
		Strip(days),
		"",
		fmt.Sprintf("%d/%d days completed", completed, len(days)),
	)
	return boxStyle.Render(body) + "\n"
}

// Strip renders completion cells oldest first, two columns per day.
func Strip(days []stats.Day) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		if d.Completed {
			cells = append(cells, doneStyle.Render("■ "))
		} else {
			cells = append(cells, pendingStyle.Render("· "))
		}
	}
	return strings.TrimRight(strings.Join(cells, ""), " ")
}

// Journal renders the tail of the activity journal.
func Journal(lines []string, total int) string {
	if total == 0 {
		return hintStyle.Render("No activity recorded yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Recent activity (%d of %d):", len(lines), total)) + "\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

// Error renders a failure message.
func Error(err error) string {
	return errorStyle.Render("❌ Error:") + " " + err.Error() + "\n"
}

func rule() string {
	return ruleStyle.Render(strings.Repeat("-", ruleWidth))
}

func weekDays(summary stats.Summary, h stats.HabitSummary) []stats.Day {
	done := make(map[string]bool, len(h.Dates))
	for _, d := range h.Dates {
		done[d.String()] = true
	}
	days := make([]stats.Day, 0, stats.WindowDays)
	for d := summary.From; !d.After(summary.To); d = d.AddDays(1) {
		days = append(days, stats.Day{Date: d, Completed: done[d.String()]})
	}
	return days
}
