package ui

import (
	"strings"

	"tasklist/internal/query"
	"tasklist/internal/route"
	"tasklist/internal/service"
)

const (
	greeting     = "Hello! Use the menu to manage your tasks."
	notFoundText = "Page not found."
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasks"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.sortLabel()))
	b.WriteString("\n\n")

	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.routeView()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) sortLabel() string {
	if m.state.SortAlphabetically {
		return "[s] reset sorting"
	}
	return "[s] sort alphabetically"
}

func (m Model) listView() string {
	if m.state.Loading {
		return m.spinner.View() + " loading tasks\n"
	}

	tasks := m.visible()
	if len(tasks) == 0 {
		return emptyStyle.Render("no tasks") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		label := query.Label(query.SingleLine(t.Title))
		line := "  " + label
		if i == m.cursor && m.focus == focusList && m.route.Kind == route.List {
			line = selectedStyle.Render("> " + label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	// The full title of the highlighted task stands in for a tooltip.
	if m.cursor < len(tasks) && query.Truncated(tasks[m.cursor].Title) {
		b.WriteString(tooltipStyle.Render(query.SingleLine(tasks[m.cursor].Title)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) routeView() string {
	switch m.route.Kind {
	case route.List:
		return greeting
	case route.Detail:
		if m.state.Loading {
			return m.spinner.View() + " loading"
		}
		task, ok := m.state.Find(m.route.TaskID)
		if !ok {
			return notFoundText
		}
		return detailView(task)
	default:
		return notFoundText
	}
}

func detailView(t service.Task) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("id:    "))
	b.WriteString(t.ID)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("title: "))
	b.WriteString(t.Title)
	return b.String()
}

func (m Model) helpView() string {
	k := m.keys
	switch m.route.Kind {
	case route.Detail:
		return helpLine(k.Back, k.Delete, k.Add, k.Search, k.Quit)
	case route.NotFound:
		return helpLine(k.Back, k.Add, k.Search, k.Quit)
	}
	switch m.focus {
	case focusInput:
		return helpLine(k.Submit, k.Next) + "  esc list"
	case focusSearch:
		return helpLine(k.Next) + "  esc list"
	}
	return helpLine(k.Up, k.Down, k.Open, k.Add, k.Search, k.Sort, k.Quit)
}
