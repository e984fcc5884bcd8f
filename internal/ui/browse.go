// Package ui provides the interactive task browser.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"habitask/internal/output"
	"habitask/internal/tasks"
)

// filters cycles with tab; the empty string shows everything.
var filters = []string{"", tasks.TypeHabit, tasks.TypeDaily, tasks.TypeTodo, tasks.TypeReward}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(ctx context.Context, all tasks.Tasks, out io.Writer) error {
	if !IsTTY(out) {
		return fmt.Errorf("browse requires a TTY")
	}
	program := tea.NewProgram(NewModel(all), tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model of the browser.
type Model struct {
	sections []output.Section
	visible  []output.Entry
	filter   int
	cursor   int
	detail   bool
}

// NewModel creates a browser model over all.
func NewModel(all tasks.Tasks) *Model {
	m := &Model{sections: output.Sections(all)}
	m.applyFilter()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.detail = false
	case "up", "k":
		if !m.detail && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.detail && m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.visible) > 0 {
			m.detail = !m.detail
		}
	case "tab":
		m.filter = (m.filter + 1) % len(filters)
		m.detail = false
		m.applyFilter()
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString("habitask\n")
	if f := filters[m.filter]; f != "" {
		fmt.Fprintf(&b, "Filter: %s\n", f)
	}
	b.WriteString("\n")

	switch {
	case len(m.visible) == 0:
		b.WriteString("no tasks found\n")
	case m.detail:
		e := m.visible[m.cursor]
		output.FormatTaskDetail(&b, e.Num, e.Task)
	default:
		for i, e := range m.visible {
			if i == m.cursor {
				b.WriteString("> ")
			} else {
				b.WriteString("  ")
			}
			output.FormatTask(&b, e.Num, e.Task)
		}
	}

	b.WriteString("\n↑/↓ move  enter details  tab filter  q quit\n")
	return b.String()
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (output.Entry, bool) {
	if len(m.visible) == 0 {
		return output.Entry{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) applyFilter() {
	typ := filters[m.filter]
	m.visible = m.visible[:0]
	for _, s := range m.sections {
		for _, e := range s.Entries {
			if typ == "" || e.Task.HasType(typ) {
				m.visible = append(m.visible, e)
			}
		}
	}
	m.cursor = 0
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
