package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/route"
	"tasklist/internal/store"
	"tasklist/internal/tasksync"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd prints one task with its full title. The argument is a task id
// or a view path such as /task/3.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return []string{"get"} }
func (c *ShowCmd) Synopsis() string   { return "Show a task in full" }
func (c *ShowCmd) Usage() string      { return "tasklist show [common flags] <id|/task/id>" }
func (c *ShowCmd) NeedsBackend() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	r := route.Task(args[0])
	if strings.HasPrefix(args[0], "/") {
		r = route.Parse(args[0])
	}
	if r.Kind != route.Detail {
		fmt.Fprintf(errOut, "error: not a task path: %s\n", args[0])
		return exitcode.UserError
	}

	st := store.New(tasksync.New(env.Service, env.Logger()))
	if err := st.Load(ctx); err != nil {
		return exitcode.BackendError
	}

	task, ok := st.State().Find(r.TaskID)
	if !ok {
		fmt.Fprintf(errOut, "error: task not found: %s\n", r.TaskID)
		return exitcode.UserError
	}

	output.FormatDetail(out, task)
	return exitcode.Success
}
