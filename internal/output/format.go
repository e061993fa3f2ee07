// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tasklist/internal/query"
	"tasklist/internal/service"
)

// Format names accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether name is a known format.
func ValidFormat(name string) bool {
	switch name {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

const (
	// DetailSeparator frames the detail view.
	DetailSeparator = "------------"
)

// FormatTask formats a task line for the list view.
// Format: "{ID:>4}  {LABEL}\n"; labels longer than query.MaxLabelLen are cut.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%4s  %s\n", task.ID, query.Label(normalizeTitle(task.Title)))
}

// FormatList writes one line per task, or "no tasks found" when there are
// none and quiet is unset.
func FormatList(w io.Writer, tasks []service.Task, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, "no tasks found")
		}
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatDetail formats the detail view of one task with its full title.
func FormatDetail(w io.Writer, task service.Task) {
	fmt.Fprintln(w, DetailSeparator)
	fmt.Fprintf(w, "id:    %s\n", task.ID)
	fmt.Fprintf(w, "title: %s\n", normalizeTitle(task.Title))
	fmt.Fprintln(w, DetailSeparator)
}

// Encode writes tasks in a structured format. Titles are never truncated.
func Encode(w io.Writer, format string, tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = query.SingleLine(title)

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
