package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil

		case key.Matches(msg, m.keys.Step):
			m.paused = true
			m.advance()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			if err := m.reset(); err != nil {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Faster):
			if m.interval/2 >= minInterval {
				m.interval /= 2
			}
			return m, nil

		case key.Matches(msg, m.keys.Slower):
			if m.interval*2 <= maxInterval {
				m.interval *= 2
			}
			return m, nil
		}
	}

	return m, nil
}
