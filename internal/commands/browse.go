package commands

import (
	"context"
	"flag"
	"fmt"

	"habitask/internal/exitcode"
	"habitask/internal/ui"
)

func init() {
	Register(&BrowseCmd{})
}

// BrowseCmd implements the browse command.
type BrowseCmd struct{}

func (c *BrowseCmd) Name() string      { return "browse" }
func (c *BrowseCmd) Aliases() []string { return nil }
func (c *BrowseCmd) Synopsis() string  { return "Browse tasks interactively" }
func (c *BrowseCmd) Usage() string     { return "habitask browse [common flags]" }
func (c *BrowseCmd) NeedsAuth() bool   { return true }

func (c *BrowseCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BrowseCmd) Run(ctx context.Context, env *Env, args []string) int {
	if !ui.IsTTY(env.Out) {
		fmt.Fprintln(env.ErrOut, "error: browse requires a terminal")
		return exitcode.UserError
	}

	all, code := fetchTasks(ctx, env)
	if code != exitcode.Success {
		return code
	}

	if err := ui.Run(ctx, all, env.Out); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
