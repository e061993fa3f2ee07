package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tasklist/internal/route"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		// Replaces whatever is there, including tasks appended by adds
		// that resolved in the meantime.
		m.state = m.state.Loaded(msg.result)
		m.clampCursor()
		return m, nil

	case taskAddedMsg:
		m.state = m.state.Added(msg.result)
		if msg.result.OK() {
			m.input.SetValue(m.state.Input)
		}
		return m, nil

	case navigateMsg:
		m.route = route.Parse(msg.path)
		m.log.Debug("navigate", zap.String("path", msg.path), zap.String("view", m.route.Kind.String()))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		switch m.route.Kind {
		case route.Detail:
			return m.updateDetail(msg)
		case route.NotFound:
			return m.updateNotFound(msg)
		}
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusSearch:
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		tasks := m.visible()
		if m.state.Loading || len(tasks) == 0 {
			return m, nil
		}
		return m, Navigate(route.Task(tasks[m.cursor].ID).Path())
	case key.Matches(msg, m.keys.Sort):
		m.state = m.state.ToggleSort()
	case key.Matches(msg, m.keys.Search):
		return m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Next):
		return m.setFocus(focusInput)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		// Titles are sent as typed; an empty title is the endpoint's call.
		title := m.input.Value()
		m.log.Debug("submit task", zap.String("title", title))
		return m, m.addCmd(title)
	case msg.Type == tea.KeyEsc:
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(focusSearch)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.WithInput(m.input.Value())
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Submit):
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state = m.state.WithSearch(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, Navigate(route.RootPath)
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Search):
		return m.leaveRoute(msg)
	case key.Matches(msg, m.keys.Delete):
		id := m.route.TaskID
		if _, ok := m.state.Find(id); !ok {
			return m, nil
		}
		// Local only: the endpoint has no delete operation.
		m.state = m.state.Remove(id)
		m.clampCursor()
		m.log.Debug("task removed locally", zap.String("id", id))
		return m, Navigate(route.RootPath)
	}
	return m, nil
}

func (m Model) updateNotFound(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m, Navigate(route.RootPath)
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Search):
		return m.leaveRoute(msg)
	}
	return m, nil
}

// leaveRoute returns to the list and focuses the add or search field, so
// both stay usable from the detail and not-found views.
func (m Model) leaveRoute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.route = route.Root()
	m.log.Debug("navigate", zap.String("path", route.RootPath), zap.String("view", m.route.Kind.String()))
	if key.Matches(msg, m.keys.Search) {
		return m.setFocus(focusSearch)
	}
	return m.setFocus(focusInput)
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.input.Blur()
	m.search.Blur()
	switch f {
	case focusInput:
		return m, m.input.Focus()
	case focusSearch:
		return m, m.search.Focus()
	}
	return m, nil
}
