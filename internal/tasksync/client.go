// Package tasksync issues the two remote operations against the task
// collection and reports each outcome as a result value.
//
// Every failure is logged here, at the call site. Callers merge results into
// their state and never see an error they are expected to display.
package tasksync

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tasklist/internal/service"
)

// Kind classifies a failed remote operation.
type Kind string

const (
	KindNone      Kind = ""
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
	KindMalformed Kind = "malformed"
	KindUnknown   Kind = "unknown"
)

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, service.ErrTransport):
		return KindTransport
	case errors.Is(err, service.ErrStatus):
		return KindStatus
	case errors.Is(err, service.ErrMalformed):
		return KindMalformed
	default:
		return KindUnknown
	}
}

// LoadResult is the outcome of fetching the whole collection.
type LoadResult struct {
	Tasks []service.Task
	Err   error
}

// OK reports whether the load succeeded.
func (r LoadResult) OK() bool { return r.Err == nil }

// Kind classifies the failure, if any.
func (r LoadResult) Kind() Kind { return KindOf(r.Err) }

// AddResult is the outcome of creating one task.
type AddResult struct {
	// Title is the title that was submitted.
	Title string
	// Task is the created record on success.
	Task service.Task
	Err  error
}

// OK reports whether the create succeeded.
func (r AddResult) OK() bool { return r.Err == nil }

// Kind classifies the failure, if any.
func (r AddResult) Kind() Kind { return KindOf(r.Err) }

// Client runs remote operations through a backend.
// There are no retries and no timeouts beyond what ctx carries.
type Client struct {
	svc service.Service
	log *zap.Logger
}

// New creates a Client. A nil logger discards diagnostics.
func New(svc service.Service, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{svc: svc, log: log}
}

// Load fetches the full collection.
func (c *Client) Load(ctx context.Context) LoadResult {
	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		c.log.Error("load tasks failed",
			zap.String("op", "load"),
			zap.String("kind", string(KindOf(err))),
			zap.Error(err))
		return LoadResult{Err: err}
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	c.log.Debug("tasks loaded", zap.String("op", "load"), zap.Int("count", len(tasks)))
	return LoadResult{Tasks: tasks}
}

// Add creates a task with the given title. Each call is a separate create;
// submitting the same title twice yields two records.
func (c *Client) Add(ctx context.Context, title string) AddResult {
	task, err := c.svc.CreateTask(ctx, title)
	if err != nil {
		c.log.Error("add task failed",
			zap.String("op", "add"),
			zap.String("title", title),
			zap.String("kind", string(KindOf(err))),
			zap.Error(err))
		return AddResult{Title: title, Err: err}
	}
	c.log.Debug("task added", zap.String("op", "add"), zap.String("id", task.ID))
	return AddResult{Title: title, Task: task}
}
