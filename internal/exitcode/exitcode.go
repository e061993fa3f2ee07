// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, unknown route).
	UserError = 1

	// ConfigError indicates invalid settings or missing OAuth credentials.
	ConfigError = 2

	// BackendError indicates a failed remote operation. The failure itself
	// has already been logged.
	BackendError = 3
)
