// Package query derives the displayed projection of a task collection.
// Nothing here mutates its input.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tasklist/internal/service"
)

// Params are the view parameters. The zero value shows the collection as is.
type Params struct {
	SearchPhrase       string
	SortAlphabetically bool
	// Locale selects the collation order; the zero tag is language.Und.
	Locale language.Tag
}

// Project returns sort(filter(tasks, phrase), sortFlag).
func Project(tasks []service.Task, p Params) []service.Task {
	out := Filter(tasks, p.SearchPhrase)
	if p.SortAlphabetically {
		out = Sort(out, p.Locale)
	}
	return out
}

// Matches reports whether title contains phrase, ignoring case.
func Matches(title, phrase string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(phrase))
}

// Filter returns the tasks whose title contains phrase, ignoring case, in
// their original order. An empty phrase matches every task.
func Filter(tasks []service.Task, phrase string) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t.Title, phrase) {
			out = append(out, t)
		}
	}
	return out
}

// Sort returns a copy of tasks ordered by title using the collation rules of
// locale. Equal titles keep their relative order.
func Sort(tasks []service.Task, locale language.Tag) []service.Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []service.Task{}
	}
	// Collators carry scratch buffers and are not safe for concurrent use.
	c := collate.New(locale)
	slices.SortStableFunc(out, func(a, b service.Task) int {
		return c.CompareString(a.Title, b.Title)
	})
	return out
}
