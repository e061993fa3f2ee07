// Package store holds the client-side task collection and the UI state
// around it.
//
// State is a value; each transition returns a new State and leaves the
// receiver untouched, so a view can keep rendering an old value while a new
// one is computed.
package store

import (
	"slices"

	"golang.org/x/text/language"

	"tasklist/internal/query"
	"tasklist/internal/service"
	"tasklist/internal/tasksync"
)

// State is the whole task-list screen state.
type State struct {
	// Tasks is the collection: load order, then append order.
	Tasks []service.Task

	// Loading is set while the initial load is outstanding. Adds and
	// removes never touch it.
	Loading bool

	// Input is the pending new-task title.
	Input string

	SearchPhrase       string
	SortAlphabetically bool
}

// BeginLoad marks the load as in flight.
func (s State) BeginLoad() State {
	s.Loading = true
	return s
}

// Loaded merges a load result. On success the collection is replaced
// wholesale; on failure it is kept. Loading is cleared either way.
func (s State) Loaded(r tasksync.LoadResult) State {
	s.Loading = false
	if r.OK() {
		s.Tasks = slices.Clone(r.Tasks)
		if s.Tasks == nil {
			s.Tasks = []service.Task{}
		}
	}
	return s
}

// Added merges an add result. On success the created task is appended and
// the pending input cleared; on failure nothing changes.
func (s State) Added(r tasksync.AddResult) State {
	if !r.OK() {
		return s
	}
	tasks := make([]service.Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = append(tasks, r.Task)
	s.Input = ""
	return s
}

// Remove drops every task with the given id from the local collection.
// Nothing is sent to the backend. Removing an unknown id is a no-op.
func (s State) Remove(id string) State {
	if !slices.ContainsFunc(s.Tasks, func(t service.Task) bool { return t.ID == id }) {
		return s
	}
	tasks := make([]service.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	return s
}

// WithInput sets the pending new-task title.
func (s State) WithInput(text string) State {
	s.Input = text
	return s
}

// WithSearch sets the search phrase.
func (s State) WithSearch(phrase string) State {
	s.SearchPhrase = phrase
	return s
}

// ToggleSort flips alphabetical sorting.
func (s State) ToggleSort() State {
	s.SortAlphabetically = !s.SortAlphabetically
	return s
}

// Find returns the task with the given id.
func (s State) Find(id string) (service.Task, bool) {
	i := slices.IndexFunc(s.Tasks, func(t service.Task) bool { return t.ID == id })
	if i < 0 {
		return service.Task{}, false
	}
	return s.Tasks[i], true
}

// Params returns the view parameters for locale.
func (s State) Params(locale language.Tag) query.Params {
	return query.Params{
		SearchPhrase:       s.SearchPhrase,
		SortAlphabetically: s.SortAlphabetically,
		Locale:             locale,
	}
}

// Visible returns the displayed list for locale.
func (s State) Visible(locale language.Tag) []service.Task {
	return query.Project(s.Tasks, s.Params(locale))
}
