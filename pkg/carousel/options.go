package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option configures the model during New.
type Option func(*Model)

// WithContents attaches per-slide overlay text. Entries are matched to
// slides by position; extra entries are ignored.
func WithContents(contents []Content) Option {
	return func(m *Model) {
		m.contents = contents
	}
}

// WithSize sets the slide viewport dimensions in cells.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.SetSize(width, height)
	}
}

// WithStartIndex selects the slide shown first. Out-of-range values are
// clamped into the sequence.
func WithStartIndex(i int) Option {
	return func(m *Model) {
		if len(m.slides) == 0 {
			m.index = 0
			return
		}
		if i < 0 {
			i = 0
		}
		if i >= len(m.slides) {
			i = len(m.slides) - 1
		}
		m.index = i
	}
}

// WithAutoPlay enables the autoplay timer with the given interval between
// advances. A non-positive interval keeps the default.
func WithAutoPlay(interval time.Duration) Option {
	return func(m *Model) {
		m.AutoPlay = true
		m.playing = true
		if interval > 0 {
			m.AutoPlayInterval = interval
		}
	}
}

// WithFade switches slide transitions from sliding to crossfade.
func WithFade() Option {
	return func(m *Model) {
		m.EffectFade = true
	}
}

// WithKeyboard enables arrow-key navigation while the widget has focus.
func WithKeyboard() Option {
	return func(m *Model) {
		m.KeyboardControl = true
	}
}

// WithParallax offsets caption layers against slide movement.
func WithParallax() Option {
	return func(m *Model) {
		m.Parallax = true
	}
}

// WithLazy defers rendering of slides that have not been visited yet.
func WithLazy() Option {
	return func(m *Model) {
		m.Lazy = true
	}
}

// WithPagination selects the pagination dot mode.
func WithPagination(mode PaginationMode) Option {
	return func(m *Model) {
		m.Pagination = mode
	}
}

// WithScrollbar shows the progress scrollbar under the controls.
func WithScrollbar() Option {
	return func(m *Model) {
		m.ShowScrollbar = true
	}
}

// WithPrevButton toggles the previous-slide button.
func WithPrevButton(show bool) Option {
	return func(m *Model) {
		m.ShowPrevButton = show
	}
}

// WithNextButton toggles the next-slide button.
func WithNextButton(show bool) Option {
	return func(m *Model) {
		m.ShowNextButton = show
	}
}

// WithDragThreshold sets the commit threshold for pointer drags, as a
// percentage of the viewport width.
func WithDragThreshold(percent float64) Option {
	return func(m *Model) {
		if percent > 0 {
			m.DragThreshold = percent
		}
	}
}

// WithSlideRenderer replaces the default slide frame renderer.
func WithSlideRenderer(r SlideRenderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithPrevControl replaces the default previous button with a custom slot.
func WithPrevControl(slot ControlSlot) Option {
	return func(m *Model) {
		m.prevSlot = slot
	}
}

// WithNextControl replaces the default next button with a custom slot.
func WithNextControl(slot ControlSlot) Option {
	return func(m *Model) {
		m.nextSlot = slot
	}
}

// WithStyles replaces the widget styles wholesale.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// WithKeyMap replaces the navigation key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.KeyMap = km
	}
}

// ControlSlot renders a custom navigation control. The style is the
// widget's control style and navigate is the command the control should
// issue when activated; slots that render their own chrome may ignore the
// style but should surface navigate to the host.
type ControlSlot func(style lipgloss.Style, navigate tea.Cmd) string
