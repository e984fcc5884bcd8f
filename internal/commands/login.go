package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"habitask/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
// Habitica uses a static user ID and API token, found under
// Settings > Site Data on habitica.com; login stores them in config.toml.
type LoginCmd struct {
	user  string
	token string
}

// SetCredentials sets the flag values (for testing).
func (c *LoginCmd) SetCredentials(user, token string) {
	c.user = user
	c.token = token
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Store Habitica credentials" }
func (c *LoginCmd) Usage() string {
	return "habitask login [common flags] --user <user-id> --token <api-token>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.user, "user", "", "")
	fs.StringVar(&c.token, "token", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string) int {
	user := strings.TrimSpace(c.user)
	token := strings.TrimSpace(c.token)

	if user == "" || token == "" {
		fmt.Fprintln(env.ErrOut, "error: --user and --token are required")
		fmt.Fprintln(env.ErrOut, "")
		fmt.Fprintln(env.ErrOut, "Find them on https://habitica.com under Settings > Site Data (API).")
		return exitcode.UserError
	}

	if err := env.Config.SaveCredentials(user, token); err != nil {
		fmt.Fprintf(env.ErrOut, "error: failed to save credentials: %v\n", err)
		return exitcode.AuthError
	}
	env.Logger.Debug("credentials saved", "path", env.Config.ConfigPath())

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
