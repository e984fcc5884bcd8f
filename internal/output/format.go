// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"habitask/internal/tasks"
)

const (
	// ListSeparator is the separator line for list sections.
	ListSeparator = "------------"
)

// Entry is a task with its display number.
type Entry struct {
	Num  int
	Task tasks.Task
}

// Section groups the entries of one task type.
type Section struct {
	Title   string
	Entries []Entry
}

var sectionOrder = []struct {
	typ   string
	title string
}{
	{tasks.TypeHabit, "Habits"},
	{tasks.TypeDaily, "Dailies"},
	{tasks.TypeTodo, "To-dos"},
	{tasks.TypeReward, "Rewards"},
}

// Sections groups tasks by type (habits, dailies, to-dos, rewards, then
// anything else) and numbers them from 1 in that order. API order is kept
// within a section. Empty sections are included.
func Sections(all tasks.Tasks) []Section {
	sections := make([]Section, 0, len(sectionOrder)+1)
	for _, s := range sectionOrder {
		sections = append(sections, Section{Title: s.title})
	}
	sections = append(sections, Section{Title: "Other"})

	for _, task := range all.All() {
		idx := len(sections) - 1
		for i, s := range sectionOrder {
			if task.HasType(s.typ) {
				idx = i
				break
			}
		}
		sections[idx].Entries = append(sections[idx].Entries, Entry{Task: task})
	}

	num := 1
	for i := range sections {
		for j := range sections[i].Entries {
			sections[i].Entries[j].Num = num
			num++
		}
	}
	return sections
}

// FormatTask formats a task line.
// Format: "{N:>4}  [x] {TEXT}{SUFFIX}\n"
func FormatTask(w io.Writer, num int, task tasks.Task) {
	fmt.Fprintf(w, "%4d  %s %s%s\n", num, checkbox(task.IsCompleted()), normalizeTitle(task.TextOr("")), suffix(task))
}

// FormatListHeader formats a section header.
func FormatListHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, ListSeparator)
}

// FormatTaskDetail prints every present field of a task.
func FormatTaskDetail(w io.Writer, num int, task tasks.Task) {
	fmt.Fprintf(w, "%d. %s\n", num, normalizeTitle(task.TextOr("")))

	field := func(name, value string) {
		fmt.Fprintf(w, "  %-10s %s\n", name+":", value)
	}

	if task.Type != nil {
		field("type", *task.Type)
	}
	if task.Notes != nil && strings.TrimSpace(*task.Notes) != "" {
		field("notes", normalizeTitle(*task.Notes))
	}
	if task.Frequency != nil {
		freq := *task.Frequency
		if task.EveryX != nil {
			freq = fmt.Sprintf("%s (every %d)", freq, *task.EveryX)
		}
		field("frequency", freq)
	} else if task.EveryX != nil {
		field("every", fmt.Sprintf("%d", *task.EveryX))
	}
	if days := task.Repeat.ActiveDays(); len(days) > 0 {
		field("repeat", strings.Join(days, " "))
	}
	if len(task.NextDue) > 0 {
		field("next due", task.NextDue[0])
	}
	if task.Completed != nil {
		field("completed", yesNo(*task.Completed))
	}
	if task.IsDue != nil {
		field("due", yesNo(*task.IsDue))
	}
	if task.Checklist.Len() > 0 {
		field("checklist", fmt.Sprintf("%d/%d", task.Checklist.Done(), task.Checklist.Len()))
		for _, item := range task.Checklist.Items {
			fmt.Fprintf(w, "    %s %s\n", checkbox(item.Completed), normalizeTitle(item.Text))
		}
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// suffix adds due and checklist progress markers.
func suffix(task tasks.Task) string {
	var parts []string
	if task.Due() {
		parts = append(parts, "due")
	}
	if n := task.Checklist.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", task.Checklist.Done(), n))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
