// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"habitask/internal/tasks"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	items []tasks.Task
	calls int

	// Error injection for testing
	AllTasksErr error
}

// NewFakeService creates a new FakeService with no tasks.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// Add appends a task and returns its generated ID.
func (f *FakeService) Add(task tasks.Task) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task.ID == nil {
		id := uuid.NewString()
		task.ID = &id
	}
	if task.Repeat.Days == nil {
		task.Repeat.Days = map[string]bool{}
	}
	if task.Checklist.Items == nil {
		task.Checklist.Items = []tasks.TaskCheckListItem{}
	}
	f.items = append(f.items, task)
	return *task.ID
}

// AddTask appends a task with only type and text set.
func (f *FakeService) AddTask(typ, text string) string {
	return f.Add(tasks.Task{Type: Ptr(typ), Text: Ptr(text)})
}

// Calls returns how many times AllTasks was invoked.
func (f *FakeService) Calls() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls
}

// AllTasks implements service.Service.
func (f *FakeService) AllTasks(ctx context.Context) (tasks.Tasks, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.AllTasksErr != nil {
		return tasks.Tasks{}, f.AllTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return tasks.New(f.items), nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// ChecklistItem builds a checklist entry with a random ID.
func ChecklistItem(text string, completed bool) tasks.TaskCheckListItem {
	return tasks.TaskCheckListItem{Completed: completed, Text: text, ID: uuid.NewString()}
}
