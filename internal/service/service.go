// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"habitask/internal/tasks"
)

// Service defines the interface for task backend operations.
// Commands never import the Habitica client directly.
type Service interface {
	// AllTasks returns every habit, daily, to-do and reward of the user,
	// in API order. On error the returned Tasks is empty.
	AllTasks(ctx context.Context) (tasks.Tasks, error)
}
