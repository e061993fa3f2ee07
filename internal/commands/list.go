package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/store"
	"tasklist/internal/tasksync"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tasklist` (no args) and `tasklist list`.
type ListCmd struct {
	search string
	sort   bool
	format string
}

// SetSearch sets the search phrase (for testing).
func (c *ListCmd) SetSearch(phrase string) { c.search = phrase }

// SetSort enables alphabetical sorting (for testing).
func (c *ListCmd) SetSort(on bool) { c.sort = on }

// SetFormat sets the output format (for testing).
func (c *ListCmd) SetFormat(format string) { c.format = format }

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasklist list [common flags] [--search <phrase>] [--sort] [--format text|json|yaml]"
}
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "")
	fs.StringVar(&c.search, "s", "", "")
	fs.BoolVar(&c.sort, "sort", false, "")
	fs.StringVar(&c.format, "format", output.FormatText, "")
	fs.StringVar(&c.format, "f", output.FormatText, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	format := c.format
	if format == "" {
		format = output.FormatText
	}
	if !output.ValidFormat(format) {
		fmt.Fprintf(errOut, "error: unknown format: %s\n", format)
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	st := store.New(tasksync.New(env.Service, env.Logger()))
	if err := st.Load(ctx); err != nil {
		return exitcode.BackendError
	}

	state := st.State().WithSearch(c.search)
	if c.sort {
		state = state.ToggleSort()
	}
	tasks := state.Visible(env.Locale())

	if format != output.FormatText {
		if err := output.Encode(out, format, tasks); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	output.FormatList(out, tasks, env.Config.Quiet)
	return exitcode.Success
}
