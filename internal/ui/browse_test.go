package ui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"habitask/internal/tasks"
	"habitask/internal/testutil"
	"habitask/internal/ui"
)

func newModel(t *testing.T) *ui.Model {
	t.Helper()
	svc := testutil.NewFakeService()
	svc.AddTask(tasks.TypeTodo, "Write report")
	svc.AddTask(tasks.TypeHabit, "Drink water")
	svc.Add(tasks.Task{
		Type:  testutil.Ptr(tasks.TypeDaily),
		Text:  testutil.Ptr("Stretch"),
		Notes: testutil.Ptr("10 minutes"),
	})

	all, err := svc.AllTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ui.NewModel(all)
}

func press(m *ui.Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestModel_ListsInSectionOrder(t *testing.T) {
	m := newModel(t)
	view := m.View()

	habit := strings.Index(view, "Drink water")
	daily := strings.Index(view, "Stretch")
	todo := strings.Index(view, "Write report")
	if habit < 0 || daily < 0 || todo < 0 {
		t.Fatalf("expected all tasks in view, got:\n%s", view)
	}
	if !(habit < daily && daily < todo) {
		t.Errorf("expected habits, dailies, to-dos order, got:\n%s", view)
	}
	if !strings.Contains(view, ">    1  [ ] Drink water") {
		t.Errorf("expected cursor on first task, got:\n%s", view)
	}
}

func TestModel_CursorMoves(t *testing.T) {
	m := newModel(t)

	press(m, "down", "j", "j")
	e, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if e.Num != 3 {
		t.Errorf("expected cursor clamped at 3, got %d", e.Num)
	}

	press(m, "up", "k", "k", "k")
	e, _ = m.Selected()
	if e.Num != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", e.Num)
	}
}

func TestModel_DetailView(t *testing.T) {
	m := newModel(t)

	press(m, "down", "enter")
	view := m.View()
	if !strings.Contains(view, "2. Stretch") || !strings.Contains(view, "10 minutes") {
		t.Errorf("expected detail of task 2, got:\n%s", view)
	}

	press(m, "esc")
	if strings.Contains(m.View(), "10 minutes") {
		t.Error("expected esc to leave detail view")
	}
}

func TestModel_TabFilters(t *testing.T) {
	m := newModel(t)

	press(m, "tab", "tab") // habits, then dailies
	view := m.View()
	if !strings.Contains(view, "Filter: daily") {
		t.Errorf("expected daily filter, got:\n%s", view)
	}
	if strings.Contains(view, "Drink water") || !strings.Contains(view, "Stretch") {
		t.Errorf("expected only dailies, got:\n%s", view)
	}

	press(m, "tab", "tab") // todo, reward
	if !strings.Contains(m.View(), "no tasks found") {
		t.Errorf("expected empty reward view, got:\n%s", m.View())
	}
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection with empty view")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRun_RequiresTTY(t *testing.T) {
	var buf bytes.Buffer
	err := ui.Run(context.Background(), tasks.Tasks{}, &buf)
	if err == nil {
		t.Fatal("expected error for non-TTY output")
	}
}
