// Package ui is the interactive task-list program: the list with its add
// form, search field and sort toggle, plus a routed panel showing a greeting,
// a task's detail or a not-found view.
package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tasklist/internal/route"
	"tasklist/internal/service"
	"tasklist/internal/store"
	"tasklist/internal/tasksync"
)

type focus int

const (
	focusList focus = iota
	focusInput
	focusSearch
)

// Options configure a Model.
type Options struct {
	// Locale drives alphabetical sorting.
	Locale language.Tag
	// Route is the initial view path; empty means "/".
	Route string
	Log   *zap.Logger
}

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	client *tasksync.Client
	log    *zap.Logger
	locale language.Tag

	state store.State
	route route.Route

	input   textinput.Model
	search  textinput.Model
	spinner spinner.Model
	focus   focus
	cursor  int
	keys    keyMap
	width   int
}

// Messages carrying remote results back into Update.
type (
	tasksLoadedMsg struct{ result tasksync.LoadResult }
	taskAddedMsg   struct{ result tasksync.AddResult }
	navigateMsg    struct{ path string }
)

// Navigate returns a command that switches the routed panel to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// New creates a Model. Remote calls use ctx; they are never cancelled by the
// model itself, and results arriving after the program exits are dropped.
func New(ctx context.Context, client *tasksync.Client, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Enter a new task"
	input.Prompt = "new task: "
	input.Width = 40

	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.Prompt = "search:   "
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	r := route.Root()
	if opts.Route != "" {
		r = route.Parse(opts.Route)
	}

	return Model{
		ctx:     ctx,
		client:  client,
		log:     log,
		locale:  opts.Locale,
		state:   store.State{Tasks: []service.Task{}}.BeginLoad(),
		route:   r,
		input:   input,
		search:  search,
		spinner: sp,
		keys:    defaultKeys(),
	}
}

// Init starts the spinner and the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// State returns the current screen state.
func (m Model) State() store.State { return m.state }

// Route returns the current route.
func (m Model) Route() route.Route { return m.route }

func (m Model) loadCmd() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		return tasksLoadedMsg{result: client.Load(ctx)}
	}
}

func (m Model) addCmd(title string) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		return taskAddedMsg{result: client.Add(ctx, title)}
	}
}

// visible returns the list as displayed.
func (m Model) visible() []service.Task {
	return m.state.Visible(m.locale)
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the program and blocks until it exits. Cancelling ctx ends the
// program like a quit key does and is not reported as an error.
func Run(ctx context.Context, client *tasksync.Client, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, client, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
