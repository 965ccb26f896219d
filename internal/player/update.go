package player

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layoutCarousel()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	m.rememberPosition()
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persistResume()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Play):
		cmd := m.carousel.ToggleAutoplay()
		return m, cmd

	case key.Matches(msg, m.keys.Fade):
		m.carousel.EffectFade = !m.carousel.EffectFade
		return m, nil

	case key.Matches(msg, m.keys.First):
		cmd := m.carousel.GoTo(0)
		m.rememberPosition()
		return m, cmd

	case key.Matches(msg, m.keys.Last):
		cmd := m.carousel.GoTo(m.carousel.Count() - 1)
		m.rememberPosition()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutCarousel()
		return m, nil
	}

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	m.rememberPosition()
	return m, cmd
}

// rememberPosition records the current slide in the resume cache. The
// write is deferred to persistResume so playback never pays file IO on
// every navigation.
func (m *Model) rememberPosition() {
	if m.resume == nil || m.deckID == "" || m.carousel.Count() == 0 {
		return
	}
	m.resume.Set(m.deckID, m.slideNumber()-1)
}

func (m Model) persistResume() {
	if m.resume == nil || m.deckID == "" || m.carousel.Count() == 0 {
		return
	}
	m.resume.Set(m.deckID, m.slideNumber()-1)
	if err := m.resume.Save(); err != nil {
		m.log.WithFields(map[string]any{"deck": m.deckID}).Error(err, "failed to save resume position")
		return
	}
	m.log.WithFields(map[string]any{
		"deck":  m.deckID,
		"slide": m.slideNumber(),
	}).Debug("saved resume position")
}
