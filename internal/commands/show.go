package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"habitask/internal/exitcode"
	"habitask/internal/output"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Show the details of one task" }
func (c *ShowCmd) Usage() string     { return "habitask show [common flags] <n>" }
func (c *ShowCmd) NeedsAuth() bool   { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(env.ErrOut, "error: task number required")
		return exitcode.UserError
	}

	num, err := parseTaskNumber(args[0])
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}

	all, code := fetchTasks(ctx, env)
	if code != exitcode.Success {
		return code
	}

	for _, section := range output.Sections(all) {
		for _, e := range section.Entries {
			if e.Num == num {
				output.FormatTaskDetail(env.Out, e.Num, e.Task)
				return exitcode.Success
			}
		}
	}

	fmt.Fprintf(env.ErrOut, "error: task number out of range: %d\n", num)
	return exitcode.UserError
}

// parseTaskNumber parses the 1-based number printed by list.
func parseTaskNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	return n, nil
}
