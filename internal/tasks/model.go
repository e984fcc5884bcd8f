// Package tasks defines the Habitica task model and decodes API responses into it.
package tasks

// Task types as sent by Habitica in the "type" field.
// Decoding stores whatever string arrives; these are for queries.
const (
	TypeHabit  = "habit"
	TypeDaily  = "daily"
	TypeTodo   = "todo"
	TypeReward = "reward"
)

// Day codes used as keys of TaskRepeat.Days.
const (
	Monday    = "m"
	Tuesday   = "t"
	Wednesday = "w"
	Thursday  = "th"
	Friday    = "f"
	Saturday  = "s"
	Sunday    = "su"
)

// weekOrder is the display order of day codes.
var weekOrder = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Task is one habit, daily, to-do or reward.
//
// Optional fields are nil when the key was absent from the response, so a
// missing field is distinguishable from one present with a zero value.
// Repeat and Checklist are always non-nil collections after decoding.
type Task struct {
	ID        *string
	Text      *string
	Frequency *string
	Type      *string
	Notes     *string
	Repeat    TaskRepeat
	EveryX    *int
	NextDue   []string // nil when absent; opaque timestamps in API order
	Completed *bool
	IsDue     *bool
	Checklist TaskCheckList
}

// TextOr returns the task text, or def when absent.
func (t Task) TextOr(def string) string {
	if t.Text == nil {
		return def
	}
	return *t.Text
}

// HasType reports whether the task's type equals typ.
func (t Task) HasType(typ string) bool {
	return t.Type != nil && *t.Type == typ
}

// IsCompleted reports whether completed is present and true.
func (t Task) IsCompleted() bool {
	return t.Completed != nil && *t.Completed
}

// Due reports whether isDue is present and true.
func (t Task) Due() bool {
	return t.IsDue != nil && *t.IsDue
}

// TaskRepeat is the per-weekday recurrence mask of a daily.
type TaskRepeat struct {
	Days map[string]bool
}

// On reports whether the day code is enabled.
func (r TaskRepeat) On(day string) bool {
	return r.Days[day]
}

// ActiveDays returns the enabled known day codes in week order.
func (r TaskRepeat) ActiveDays() []string {
	var days []string
	for _, d := range weekOrder {
		if r.Days[d] {
			days = append(days, d)
		}
	}
	return days
}

// TaskCheckList is the ordered list of sub-items of a task.
type TaskCheckList struct {
	Items []TaskCheckListItem
}

// Len returns the number of items.
func (c TaskCheckList) Len() int { return len(c.Items) }

// Done returns the number of completed items.
func (c TaskCheckList) Done() int {
	n := 0
	for _, item := range c.Items {
		if item.Completed {
			n++
		}
	}
	return n
}

// TaskCheckListItem is a checklist entry. All fields are required on the wire.
type TaskCheckListItem struct {
	Completed bool   `json:"completed"`
	Text      string `json:"text"`
	ID        string `json:"id"`
}

// Tasks is an ordered, read-only collection of tasks in API order.
type Tasks struct {
	items []Task
}

// New builds a Tasks from a slice. The slice is copied.
func New(items []Task) Tasks {
	return Tasks{items: append([]Task(nil), items...)}
}

// Len returns the number of tasks.
func (ts Tasks) Len() int { return len(ts.items) }

// At returns the i-th task. It panics if i is out of range.
func (ts Tasks) At(i int) Task { return ts.items[i] }

// All returns a copy of the tasks.
func (ts Tasks) All() []Task {
	return append([]Task(nil), ts.items...)
}

// Filter returns the tasks for which keep returns true, in order.
func (ts Tasks) Filter(keep func(Task) bool) Tasks {
	var out []Task
	for _, t := range ts.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return Tasks{items: out}
}

// OfType returns the tasks whose type is typ.
func (ts Tasks) OfType(typ string) Tasks {
	return ts.Filter(func(t Task) bool { return t.HasType(typ) })
}

func (ts Tasks) Habits() Tasks  { return ts.OfType(TypeHabit) }
func (ts Tasks) Dailies() Tasks { return ts.OfType(TypeDaily) }
func (ts Tasks) Todos() Tasks   { return ts.OfType(TypeTodo) }
func (ts Tasks) Rewards() Tasks { return ts.OfType(TypeReward) }

// Due returns the tasks flagged as due.
func (ts Tasks) Due() Tasks {
	return ts.Filter(Task.Due)
}
