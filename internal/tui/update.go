package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hdbplan/hdbplan/internal/calculation"
)

// Update handles all messages and advances the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ProfileLoadedMsg:
		m.calc = calculation.NewCalculator(msg.Policy)
		m.household = msg.Household
		m.loading = false
		m.err = nil
		m.buildSliders()
		m.recompute()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input, global shortcuts first
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.currentScene != SceneHelp {
			return m, navigateCmd(SceneHelp)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneExplorer {
			target := SceneExplorer
			if m.previousScene != m.currentScene {
				target = m.previousScene
			}
			return m, navigateCmd(target)
		}
		return m, nil

	case key.Matches(msg, m.keys.Explorer):
		if m.currentScene != SceneExplorer {
			return m, navigateCmd(SceneExplorer)
		}
		return m, nil

	case key.Matches(msg, m.keys.Tenures):
		if m.currentScene != SceneTenures {
			return m, navigateCmd(SceneTenures)
		}
		return m, nil
	}

	if m.currentScene == SceneExplorer && !m.loading && m.err == nil {
		return m.handleSliderKeys(msg)
	}
	return m, nil
}

// handleSliderKeys adjusts the focused parameter
func (m Model) handleSliderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Decrement):
		m.sliders[m.focused].Decrement()
		m.recompute()

	case key.Matches(msg, m.keys.Increment):
		m.sliders[m.focused].Increment()
		m.recompute()

	case key.Matches(msg, m.keys.CoarseDown):
		m.sliders[m.focused].StepsBy(-10)
		m.recompute()

	case key.Matches(msg, m.keys.CoarseUp):
		m.sliders[m.focused].StepsBy(10)
		m.recompute()

	case key.Matches(msg, m.keys.Reset):
		m.buildSliders()
		m.recompute()
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	if len(m.sliders) == 0 {
		return
	}
	m.sliders[m.focused].SetFocused(false)
	m.focused = (m.focused + delta + len(m.sliders)) % len(m.sliders)
	m.sliders[m.focused].SetFocused(true)
}

func navigateCmd(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}
