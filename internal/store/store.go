package store

import (
	"context"

	"tasklist/internal/service"
	"tasklist/internal/tasksync"
)

// Syncer performs the remote side of load and add.
type Syncer interface {
	Load(ctx context.Context) tasksync.LoadResult
	Add(ctx context.Context, title string) tasksync.AddResult
}

// Store applies synchronous load/add/remove to a State. It is meant for a
// single goroutine; the interactive UI drives State directly instead.
type Store struct {
	sync  Syncer
	state State
}

// New creates an empty Store.
func New(sync Syncer) *Store {
	return &Store{sync: sync, state: State{Tasks: []service.Task{}}}
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Tasks returns the current collection.
func (s *Store) Tasks() []service.Task {
	return s.state.Tasks
}

// SetInput sets the pending new-task title.
func (s *Store) SetInput(text string) {
	s.state = s.state.WithInput(text)
}

// Load replaces the collection with the remote one. On failure the
// collection is kept and the error (already logged by the syncer) returned.
func (s *Store) Load(ctx context.Context) error {
	s.state = s.state.BeginLoad()
	r := s.sync.Load(ctx)
	s.state = s.state.Loaded(r)
	return r.Err
}

// Add creates a task from the pending input, appends it and clears the input.
// On failure the input stays as it was.
func (s *Store) Add(ctx context.Context) (service.Task, error) {
	r := s.sync.Add(ctx, s.state.Input)
	s.state = s.state.Added(r)
	return r.Task, r.Err
}

// Remove deletes a task locally.
func (s *Store) Remove(id string) {
	s.state = s.state.Remove(id)
}
