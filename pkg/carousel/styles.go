package carousel

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles describes the visual treatment of every widget element. Hosts may
// replace any of them; zero-value styles render unstyled text.
type Styles struct {
	// Frame draws the border box around each slide.
	Frame lipgloss.Style
	// Name and URL style the default frame's label lines.
	Name lipgloss.Style
	URL  lipgloss.Style
	// Caption layer styles, one per parallax depth.
	CaptionTitle    lipgloss.Style
	CaptionSubtitle lipgloss.Style
	CaptionBody     lipgloss.Style
	// Placeholder styles the body of lazily skipped slides.
	Placeholder lipgloss.Style
	// Pagination dot emphasis tiers.
	DotActive   lipgloss.Style
	DotAdjacent lipgloss.Style
	DotOther    lipgloss.Style
	// Control styles the previous/next buttons.
	Control lipgloss.Style
	// Empty styles the frame shown when the slide sequence is empty.
	Empty lipgloss.Style
}

// DefaultStyles returns the stock widget appearance.
func DefaultStyles() Styles {
	return Styles{
		Frame:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		Name:            lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		URL:             lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		CaptionTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		CaptionSubtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		CaptionBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("240")),
		DotActive:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		DotAdjacent:     lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		DotOther:        lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("240")),
		Control:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		Empty:           lipgloss.NewStyle().Faint(true).Align(lipgloss.Center),
	}
}

// faded returns base with its foreground replaced by a grayscale level
// matching the given opacity. Full opacity returns base unchanged so the
// settled slide keeps its real colors.
func faded(base lipgloss.Style, opacity float64) lipgloss.Style {
	if opacity >= 1 {
		return base
	}
	if opacity < 0 {
		opacity = 0
	}
	// ANSI-256 grayscale band: 232 (near black) through 255 (near white).
	level := 232 + int(opacity*23)
	if level > 255 {
		level = 255
	}
	return base.Foreground(lipgloss.Color(strconv.Itoa(level)))
}
