// Package route maps view paths to views.
//
//	/            list
//	/task/{id}   detail for one task
//	/404         not found
//	anything else: not found
package route

import (
	"net/url"
	"strings"
)

// Kind identifies a view.
type Kind int

const (
	NotFound Kind = iota
	List
	Detail
)

func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case Detail:
		return "detail"
	default:
		return "not-found"
	}
}

// Path constants.
const (
	RootPath     = "/"
	NotFoundPath = "/404"
	taskPrefix   = "/task/"
)

// Route is a parsed view path.
type Route struct {
	Kind   Kind
	TaskID string
}

// Root returns the list route.
func Root() Route { return Route{Kind: List} }

// Task returns the detail route for id.
func Task(id string) Route { return Route{Kind: Detail, TaskID: id} }

// Missing returns the not-found route.
func Missing() Route { return Route{Kind: NotFound} }

// Parse resolves a path. A single trailing slash is ignored, as is a query
// string. Paths that match no view resolve to NotFound.
func Parse(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == RootPath {
		return Root()
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if rest, ok := strings.CutPrefix(path, taskPrefix); ok {
		if rest == "" || strings.Contains(rest, "/") {
			return Missing()
		}
		id, err := url.PathUnescape(rest)
		if err != nil || id == "" {
			return Missing()
		}
		return Task(id)
	}
	return Missing()
}

// Path returns the canonical path of r.
func (r Route) Path() string {
	switch r.Kind {
	case List:
		return RootPath
	case Detail:
		return taskPrefix + url.PathEscape(r.TaskID)
	default:
		return NotFoundPath
	}
}
