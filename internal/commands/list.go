package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"habitask/internal/exitcode"
	"habitask/internal/output"
	"habitask/internal/tasks"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `habitask` (no args) and `habitask list`.
type ListCmd struct {
	typ    string
	due    bool
	asJSON bool
}

// SetFilter sets the type and due filters (for testing).
func (c *ListCmd) SetFilter(typ string, due bool) {
	c.typ = typ
	c.due = due
}

// SetJSON enables JSON output (for testing).
func (c *ListCmd) SetJSON(on bool) {
	c.asJSON = on
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks grouped by type" }
func (c *ListCmd) Usage() string {
	return "habitask list [common flags] [--type <habit|daily|todo|reward>] [--due] [--json]"
}
func (c *ListCmd) NeedsAuth() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.typ, "type", "", "")
	fs.BoolVar(&c.due, "due", false, "")
	fs.BoolVar(&c.asJSON, "json", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	typ := strings.ToLower(strings.TrimSpace(c.typ))
	if typ != "" && !validType(typ) {
		fmt.Fprintf(env.ErrOut, "error: invalid task type: %s\n", c.typ)
		return exitcode.UserError
	}

	all, code := fetchTasks(ctx, env)
	if code != exitcode.Success {
		return code
	}

	keep := func(t tasks.Task) bool {
		if typ != "" && !t.HasType(typ) {
			return false
		}
		if c.due && !t.Due() {
			return false
		}
		return true
	}

	if c.asJSON {
		return c.printJSON(env, all.Filter(keep))
	}

	printed := 0
	for _, section := range output.Sections(all) {
		var entries []output.Entry
		for _, e := range section.Entries {
			if keep(e.Task) {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue // Skip empty sections
		}

		output.FormatListHeader(env.Out, section.Title)
		for _, e := range entries {
			output.FormatTask(env.Out, e.Num, e.Task)
		}
		printed += len(entries)
	}

	if printed == 0 && !env.Config.Quiet {
		fmt.Fprintln(env.Out, "no tasks found")
	}

	return exitcode.Success
}

func (c *ListCmd) printJSON(env *Env, ts tasks.Tasks) int {
	data, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	fmt.Fprintln(env.Out, string(data))
	return exitcode.Success
}

func validType(typ string) bool {
	switch typ {
	case tasks.TypeHabit, tasks.TypeDaily, tasks.TypeTodo, tasks.TypeReward:
		return true
	}
	return false
}
