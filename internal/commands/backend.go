package commands

import (
	"context"
	"errors"
	"fmt"

	"habitask/internal/exitcode"
	"habitask/internal/tasks"
)

// unauthorizer is implemented by backend errors that can tell a rejected
// credential apart from other failures.
type unauthorizer interface {
	Unauthorized() bool
}

// userMessager is implemented by backend errors with a CLI-friendly message.
type userMessager interface {
	UserMessage() string
}

// fetchTasks loads all tasks, printing a backend error and returning a
// non-zero exit code on failure.
func fetchTasks(ctx context.Context, env *Env) (tasks.Tasks, int) {
	if env.Service == nil {
		fmt.Fprintln(env.ErrOut, "error: backend error: no backend configured")
		return tasks.Tasks{}, exitcode.BackendError
	}
	all, err := env.Service.AllTasks(ctx)
	if err != nil {
		return tasks.Tasks{}, reportBackendError(env, err)
	}
	env.Logger.Debug("fetched tasks", "count", all.Len())
	return all, exitcode.Success
}

// reportBackendError prints err and maps it to an exit code.
func reportBackendError(env *Env, err error) int {
	env.Logger.Debug("backend call failed", "err", err)

	msg := err.Error()
	var um userMessager
	if errors.As(err, &um) {
		msg = um.UserMessage()
	}

	var ua unauthorizer
	if errors.As(err, &ua) && ua.Unauthorized() {
		fmt.Fprintf(env.ErrOut, "error: auth error: %s\n", msg)
		return exitcode.AuthError
	}
	fmt.Fprintf(env.ErrOut, "error: backend error: %s\n", msg)
	return exitcode.BackendError
}
