package commands

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"

	"habitask/internal/exitcode"
)

// Version is the application version, overridden with
// -ldflags "-X habitask/internal/commands.Version=...".
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "habitask version" }
func (c *VersionCmd) NeedsAuth() bool   { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprintf(env.Out, "habitask %s\n", Version)

	if info, ok := debug.ReadBuildInfo(); ok {
		env.Logger.Debug("build info", "go", info.GoVersion, "module", info.Main.Version)
	}
	return exitcode.Success
}
