package commands

import (
	"context"
	"flag"
	"fmt"

	"habitask/internal/exitcode"
)

func init() {
	Register(&HelpCmd{registry: DefaultRegistry})
}

// HelpCmd implements the help command.
// Usage lines are taken from the registry it was created with.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd creates a help command listing the commands in r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "habitask help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprintln(env.Out, "Usage:")
	fmt.Fprintf(env.Out, "  %-62s %s\n", "habitask", "List all tasks")
	if c.registry != nil {
		for _, cmd := range c.registry.All() {
			fmt.Fprintf(env.Out, "  %-62s %s\n", cmd.Usage(), cmd.Synopsis())
		}
	}
	fmt.Fprint(env.Out, commonFlagsText)
	return exitcode.Success
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  HABITICA_USER_ID, HABITICA_API_TOKEN, HABITICA_BASE_URL, HABITICA_TIMEOUT
`
