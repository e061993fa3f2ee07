// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// Service defines the interface for task backend operations.
// Only reads and creates exist; there is no remote update or delete.
type Service interface {
	// ListTasks returns the full collection in backend order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given title and returns the
	// created record, including the backend-assigned ID.
	CreateTask(ctx context.Context, title string) (Task, error)
}

// Failure classes reported by backends. Backends wrap one of these with
// operation context so callers can classify with errors.Is.
var (
	// ErrTransport covers network failures and cancelled requests.
	ErrTransport = errors.New("transport failure")

	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("unexpected status")

	// ErrMalformed is returned when a response body cannot be decoded
	// into the expected shape.
	ErrMalformed = errors.New("malformed response")
)
