// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"habitask/internal/config"
	"habitask/internal/service"
)

// Env carries everything a command needs to run.
type Env struct {
	// Config is always provided (config dir, credentials, settings).
	Config *config.Config

	// Service is nil if the command's NeedsAuth() returns false.
	Service service.Service

	// Logger writes debug output to stderr.
	Logger *log.Logger

	// Out receives command output, ErrOut receives errors.
	Out    io.Writer
	ErrOut io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Habitica.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional arguments left after flag
	// parsing. Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
