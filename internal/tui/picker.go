// internal/tui/picker.go
//
// Interactive habit picker. It follows The Elm Architecture that bubbletea
// uses: the Picker holds state, Update reacts to messages, View renders.
//
// Up/down moves, Enter logs the highlighted habit for today and quits,
// q/esc/ctrl+c quits without logging.

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/habits/internal/habit"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
)

// Tracker is what the picker needs from habit.Tracker.
type Tracker interface {
	Status() ([]habit.HabitStatus, error)
	LogCompletion(name string) error
	CalculateStreak(name string) (int, error)
}

// Outcome describes what happened when the picker closed.
type Outcome struct {
	Logged bool
	Habit  string
	Streak int
	Err    error
}

// habitItem implements list.Item for one habit row
type habitItem struct {
	name   string
	streak int
	done   bool
}

func (i habitItem) Title() string {
	if i.done {
		return "✅ " + i.name
	}
	return "⬜ " + i.name
}

func (i habitItem) Description() string {
	if i.streak == 0 {
		return "no current streak"
	}
	return fmt.Sprintf("🔥 %d day streak", i.streak)
}

func (i habitItem) FilterValue() string { return i.name }

// Picker is the bubbletea model.
type Picker struct {
	tracker Tracker
	list    list.Model
	outcome Outcome
}

// NewPicker loads today's status and builds the list.
func NewPicker(tracker Tracker) (*Picker, error) {
	if tracker == nil {
		return nil, errors.New("tui: tracker is required")
	}
	rows, err := tracker.Status()
	if err != nil {
		return nil, err
	}
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, habitItem{name: row.Name, streak: row.Streak, done: row.CompletedToday})
	}
	menu := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	menu.Title = "📚 Log a habit"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return &Picker{tracker: tracker, list: menu}, nil
}

// Outcome reports the result once the program has exited.
func (p *Picker) Outcome() Outcome {
	return p.outcome
}

// Init is called once when the program starts.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles window resizes and keys.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(max(0, msg.Width-4), max(0, msg.Height-4))
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return p, tea.Quit
		case "enter":
			return p.logSelected()
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *Picker) logSelected() (tea.Model, tea.Cmd) {
	item, ok := p.list.SelectedItem().(habitItem)
	if !ok {
		return p, nil
	}
	p.outcome = Outcome{Habit: item.name}
	if err := p.tracker.LogCompletion(item.name); err != nil {
		p.outcome.Err = err
		return p, tea.Quit
	}
	streak, err := p.tracker.CalculateStreak(item.name)
	if err != nil {
		p.outcome.Err = err
		return p, tea.Quit
	}
	p.outcome.Logged = true
	p.outcome.Streak = streak
	return p, tea.Quit
}

// View renders the list with a key hint underneath.
func (p *Picker) View() string {
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("enter: log for today · q: quit")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(p.list.View())
	return lipgloss.JoinVertical(lipgloss.Left, box, hint)
}
