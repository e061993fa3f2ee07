// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"tasklist/internal/config"
	"tasklist/internal/service"
)

// Env is what the dispatcher hands a command.
type Env struct {
	// Config is always set.
	Config *config.Config

	// Service is nil unless NeedsBackend returns true.
	Service service.Service

	// Log receives diagnostics, including every failed remote call.
	// Nil means discard.
	Log *zap.Logger

	// In is the terminal input for interactive commands. Nil means stdin.
	In io.Reader
}

// Logger returns e.Log or a no-op logger.
func (e *Env) Logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Locale returns the configured collation locale, or language.Und.
func (e *Env) Locale() language.Tag {
	if e == nil || e.Config == nil {
		return language.Und
	}
	tag, err := language.Parse(e.Config.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the task service.
	// Commands like help, version, login, logout return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
