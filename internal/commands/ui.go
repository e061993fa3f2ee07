package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"tasklist/internal/exitcode"
	"tasklist/internal/logging"
	"tasklist/internal/route"
	"tasklist/internal/tasksync"
	"tasklist/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd starts the interactive task list.
type UICmd struct {
	route string
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return []string{"tui"} }
func (c *UICmd) Synopsis() string   { return "Open the interactive task list" }
func (c *UICmd) Usage() string      { return "tasklist ui [common flags] [--route <path>]" }
func (c *UICmd) NeedsBackend() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.route, "route", route.RootPath, "")
}

func (c *UICmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// The terminal belongs to the program while it runs, so diagnostics go
	// to the log file instead of stderr.
	log, closeLog, err := logging.NewFile(env.Config)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	defer closeLog()

	in := env.In
	if in == nil {
		in = os.Stdin
	}

	log.Info("ui start", zap.String("route", c.route), zap.String("backend", env.Config.Backend))
	opts := ui.Options{Locale: env.Locale(), Route: c.route, Log: log}
	if err := ui.Run(ctx, tasksync.New(env.Service, log), opts, in, out); err != nil {
		log.Error("ui exited", zap.Error(err))
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if ctx.Err() != nil {
		log.Info("ui interrupted")
	}
	return exitcode.Success
}
