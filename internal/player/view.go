package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading deck..."
	}
	if m.tooSmall() {
		return errorStyle.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Minimum size: %dx%d.",
			m.width, m.height, minTerminalWidth, minTerminalHeight,
		))
	}

	sections := []string{
		m.renderHeader(),
		"",
		m.carousel.View(),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

// renderHeader draws the deck name on the left and the playback counter
// on the right, in a single row spanning the terminal.
func (m Model) renderHeader() string {
	title := titleStyle.Render(m.deck.Name)
	counter := counterStyle.Render(fmt.Sprintf("%s %d/%d", m.playIndicator(), m.slideNumber(), m.carousel.Count()))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 1 {
		return ansi.Truncate(title, m.width, "…")
	}
	return title + strings.Repeat(" ", gap) + counter
}

func (m Model) playIndicator() string {
	if m.carousel.Playing() {
		return "▶"
	}
	return "⏸"
}
