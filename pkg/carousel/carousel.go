// Package carousel provides a slideshow widget for Bubble Tea programs.
//
// A carousel presents an ordered sequence of slides one viewport at a time
// and lets the user move between them with pointer drags, previous/next
// buttons, arrow keys, or an autoplay timer. Navigation wraps at both ends.
// Every control is opt-in: buttons, pagination dots, the progress
// scrollbar, crossfade transitions, parallax caption layers, keyboard
// handling, and lazy slide rendering all default to off.
package carousel

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth            = 80
	defaultHeight           = 12
	defaultDragThreshold    = 4.0
	defaultAutoPlayInterval = 3 * time.Second
)

// PaginationMode selects how pagination dots are rendered.
type PaginationMode int

const (
	// PaginationOff hides the dots.
	PaginationOff PaginationMode = iota
	// PaginationPlain renders one uniform dot per slide, emphasized by color.
	PaginationPlain
	// PaginationDynamic additionally shrinks dots by distance from the
	// active slide, keeping long sequences compact.
	PaginationDynamic
)

var lastID int64

func nextModelID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model holds the carousel state. Create one with New.
type Model struct {
	// KeyMap holds the arrow-key bindings used when KeyboardControl is on.
	KeyMap KeyMap
	// Styles controls the widget appearance.
	Styles Styles
	// DragThreshold is the horizontal pointer travel, as a percentage of
	// the viewport width, past which releasing a drag commits a slide
	// change instead of snapping back.
	DragThreshold float64
	// AutoPlay reports whether the model was built with an autoplay timer.
	AutoPlay bool
	// AutoPlayInterval is the delay between automatic advances.
	AutoPlayInterval time.Duration
	// EffectFade crossfades between slides instead of sliding the track.
	EffectFade bool
	// KeyboardControl enables arrow-key navigation while focused.
	KeyboardControl bool
	// Parallax offsets caption layers against track movement.
	Parallax bool
	// Lazy renders placeholders for slides that have not been shown yet.
	Lazy bool
	// ShowPrevButton and ShowNextButton toggle the navigation buttons.
	ShowPrevButton bool
	ShowNextButton bool
	// Pagination selects the dot mode.
	Pagination PaginationMode
	// ShowScrollbar draws a progress bar tracking the active slide.
	ShowScrollbar bool

	id       int
	slides   []Slide
	contents []Content
	index    int
	focus    bool

	width  int
	height int
	// originX/originY locate the widget's top-left cell in program
	// coordinates so mouse events can be mapped onto the track.
	originX int
	originY int

	dragging        bool
	dragStartX      int
	dragX           int
	dragStartOffset float64

	playing     bool
	autoplayTag int

	fadeTag   int
	fadeFrame int

	visited   map[int]bool
	renderer  SlideRenderer
	prevSlot  ControlSlot
	nextSlot  ControlSlot
	scrollbar progress.Model
}

// New builds a carousel over the given slides.
func New(slides []Slide, opts ...Option) Model {
	m := Model{
		KeyMap:           DefaultKeyMap(),
		Styles:           DefaultStyles(),
		DragThreshold:    defaultDragThreshold,
		AutoPlayInterval: defaultAutoPlayInterval,

		id:        nextModelID(),
		slides:    slides,
		focus:     true,
		width:     defaultWidth,
		height:    defaultHeight,
		fadeFrame: fadeFrameCount,
		visited:   make(map[int]bool),
		scrollbar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.visited[m.index] = true
	m.scrollbar.Width = m.width
	return m
}

// Init starts the autoplay timer when autoplay is enabled.
func (m Model) Init() tea.Cmd {
	if m.playing && len(m.slides) > 0 {
		return m.autoplayTick()
	}
	return nil
}

// Update handles key, mouse, timer, and navigation messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focus || !m.KeyboardControl {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.KeyMap.Next):
			cmd := m.Next()
			return m, cmd
		case key.Matches(msg, m.KeyMap.Prev):
			cmd := m.Prev()
			return m, cmd
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case AutoplayTickMsg:
		return m.handleAutoplayTick(msg)

	case FadeTickMsg:
		return m.handleFadeTick(msg)

	case NextMsg:
		if msg.ID > 0 && msg.ID != m.id {
			return m, nil
		}
		cmd := m.Next()
		return m, cmd

	case PrevMsg:
		if msg.ID > 0 && msg.ID != m.id {
			return m, nil
		}
		cmd := m.Prev()
		return m, cmd

	case GoToMsg:
		if msg.ID > 0 && msg.ID != m.id {
			return m, nil
		}
		cmd := m.GoTo(msg.Index)
		return m, cmd
	}
	return m, nil
}

// NextMsg asks a carousel to advance one slide. A zero ID addresses any
// carousel; a non-zero ID addresses the matching model only.
type NextMsg struct{ ID int }

// PrevMsg asks a carousel to go back one slide.
type PrevMsg struct{ ID int }

// GoToMsg asks a carousel to jump to a specific slide index.
type GoToMsg struct {
	ID    int
	Index int
}

// NextCmd produces a NextMsg addressed to this model. Use it to drive the
// carousel from outside its own Update, for example from a custom control.
func (m Model) NextCmd() tea.Cmd {
	return func() tea.Msg { return NextMsg{ID: m.id} }
}

// PrevCmd produces a PrevMsg addressed to this model.
func (m Model) PrevCmd() tea.Cmd {
	return func() tea.Msg { return PrevMsg{ID: m.id} }
}

// GoToCmd produces a GoToMsg addressed to this model.
func (m Model) GoToCmd(index int) tea.Cmd {
	return func() tea.Msg { return GoToMsg{ID: m.id, Index: index} }
}

// Next advances to the following slide, wrapping past the end. The
// returned command restarts the crossfade when fading is enabled.
func (m *Model) Next() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	m.setIndex((m.index + 1) % len(m.slides))
	return m.restartFade()
}

// Prev moves to the preceding slide, wrapping past the start.
func (m *Model) Prev() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	m.setIndex((m.index - 1 + len(m.slides)) % len(m.slides))
	return m.restartFade()
}

// GoTo jumps to the given slide index. The index is stored as requested,
// even outside the slide range; rendering clamps into range, so callers
// may hand user input straight through.
func (m *Model) GoTo(index int) tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	m.setIndex(index)
	return m.restartFade()
}

func (m *Model) setIndex(i int) {
	m.index = i
	if m.visited != nil {
		m.visited[m.renderIndex()] = true
	}
}

// renderIndex clamps the stored index into the slide range for rendering.
func (m Model) renderIndex() int {
	if len(m.slides) == 0 {
		return 0
	}
	i := m.index
	if i < 0 {
		return 0
	}
	if i >= len(m.slides) {
		return len(m.slides) - 1
	}
	return i
}

// Index reports the active slide index as last set.
func (m Model) Index() int { return m.index }

// Count reports the number of slides.
func (m Model) Count() int { return len(m.slides) }

// ID reports the model's unique identity used for message routing.
func (m Model) ID() int { return m.id }

// Slide returns the active slide, if any.
func (m Model) Slide() (Slide, bool) {
	if len(m.slides) == 0 {
		return Slide{}, false
	}
	return m.slides[m.renderIndex()], true
}

// Content returns the overlay content attached to slide i.
func (m Model) Content(i int) Content {
	if i < 0 || i >= len(m.contents) {
		return Content{}
	}
	return m.contents[i]
}

// Dragging reports whether a pointer drag is in progress.
func (m Model) Dragging() bool { return m.dragging }

// Playing reports whether the autoplay timer is running.
func (m Model) Playing() bool { return m.playing }

// Focused reports whether the widget receives key events.
func (m Model) Focused() bool { return m.focus }

// Focus makes the widget respond to key events.
func (m *Model) Focus() { m.focus = true }

// Blur stops the widget from responding to key events. A drag in progress
// is abandoned without committing.
func (m *Model) Blur() {
	m.focus = false
	m.dragging = false
}

// Width reports the slide viewport width in cells.
func (m Model) Width() int { return m.width }

// Height reports the slide viewport height in cells.
func (m Model) Height() int { return m.height }

// SetSize resizes the slide viewport.
func (m *Model) SetSize(width, height int) {
	if width < minViewportWidth {
		width = minViewportWidth
	}
	if height < minViewportHeight {
		height = minViewportHeight
	}
	m.width = width
	m.height = height
	m.scrollbar.Width = width
}

// SetOrigin records the widget's top-left position in program coordinates.
// Mouse positions arrive program-relative, so hosts embedding the widget
// anywhere but the top-left corner must keep the origin current for drag
// tracking to line up with the track.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

const (
	minViewportWidth  = 10
	minViewportHeight = 3
)
