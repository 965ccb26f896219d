// Package player hosts the full-screen playback TUI that wraps the
// carousel widget with a header, help footer, and resume persistence.
package player

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/gallery"
	"github.com/carouselkit/carousel/internal/logging"
	"github.com/carouselkit/carousel/pkg/carousel"
)

const (
	minTerminalWidth  = 40
	minTerminalHeight = 10

	// Rows above the widget: the header line and one blank spacer. The
	// mouse origin passed to the widget depends on this staying exact.
	headerRows = 2
)

// Model is the top-level Bubble Tea model for deck playback.
type Model struct {
	carousel carousel.Model
	deck     *config.Deck
	deckID   string
	resume   *gallery.ResumeCache
	log      *logging.Logger

	keys KeyMap
	help help.Model

	startCmd tea.Cmd

	width  int
	height int
}

// NewModel builds a player for the given deck. deckID keys the resume
// cache; pass an empty ID to play without persisting a position.
func NewModel(deck *config.Deck, deckID string, resume *gallery.ResumeCache, log *logging.Logger) Model {
	start := deck.Options.Start
	if resume != nil && deckID != "" {
		if state, ok := resume.Get(deckID); ok {
			start = state.Index
		}
	}

	m := Model{
		carousel: buildCarousel(deck, start),
		deck:     deck,
		deckID:   deckID,
		resume:   resume,
		log:      log,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.layoutCarousel()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.carousel.Init(), m.startCmd)
}

// JumpTo points the player at an arbitrary slide before the program
// starts. The index is handed to the widget verbatim under its
// permissive jump contract.
func (m Model) JumpTo(index int) Model {
	m.startCmd = m.carousel.GoTo(index)
	m.rememberPosition()
	return m
}

// Carousel exposes the embedded widget, mainly for tests.
func (m Model) Carousel() carousel.Model {
	return m.carousel
}

// DeckID returns the gallery ID the player persists its position under.
func (m Model) DeckID() string {
	return m.deckID
}

func (m Model) tooSmall() bool {
	return m.width < minTerminalWidth || m.height < minTerminalHeight
}

// layoutCarousel sizes the widget to the space left after the header and
// footer chrome and anchors its mouse origin under the header.
func (m *Model) layoutCarousel() {
	footer := lipgloss.Height(helpStyle.Render(m.help.View(m.keys)))
	h := m.height - headerRows - 1 - footer - m.extraWidgetRows()
	m.carousel.SetSize(m.width, h)
	m.carousel.SetOrigin(0, headerRows)
}

// extraWidgetRows counts the rows the widget renders below its slide
// area, which layoutCarousel must subtract from the viewport height.
func (m Model) extraWidgetRows() int {
	rows := 0
	if m.carousel.ShowPrevButton || m.carousel.ShowNextButton || m.carousel.Pagination != carousel.PaginationOff {
		rows++
	}
	if m.carousel.ShowScrollbar {
		rows++
	}
	return rows
}

// slideNumber is the one-based display index, clamped into range so a
// permissive jump past the edges still reads sensibly in the header.
func (m Model) slideNumber() int {
	n := m.carousel.Index() + 1
	if n < 1 {
		n = 1
	}
	if count := m.carousel.Count(); n > count {
		n = count
	}
	return n
}
