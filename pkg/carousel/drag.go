package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse routes pointer events. Presses on the controls navigate
// directly; presses on the track start a drag that follows the pointer
// until it is released or leaves the track.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focus {
		return m, nil
	}
	lx := msg.X - m.originX
	ly := msg.Y - m.originY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		reg := m.layout()
		if reg.prev.contains(lx, ly) {
			cmd := m.Prev()
			return m, cmd
		}
		if reg.next.contains(lx, ly) {
			cmd := m.Next()
			return m, cmd
		}
		for i, dot := range reg.dots {
			if dot.contains(lx, ly) {
				cmd := m.GoTo(i)
				return m, cmd
			}
		}
		if reg.track.contains(lx, ly) {
			m.dragging = true
			m.dragStartX = lx
			m.dragX = lx
			m.dragStartOffset = float64(m.renderIndex()) * -100
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.dragX = lx
		// Leaving the track settles the drag exactly like a release.
		if lx < 0 || lx >= m.width || ly < 0 || ly >= m.height {
			cmd := m.settleDrag()
			return m, cmd
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		cmd := m.settleDrag()
		return m, cmd
	}
	return m, nil
}

// settleDrag ends a drag, committing a slide change when the pointer
// traveled past DragThreshold. Unlike button navigation a drag commit
// never wraps; past either end the track snaps back instead.
func (m *Model) settleDrag() tea.Cmd {
	walk := m.dragWalk()
	m.dragging = false
	if len(m.slides) == 0 {
		return nil
	}
	switch {
	case walk <= -m.DragThreshold && m.renderIndex() < len(m.slides)-1:
		return m.Next()
	case walk >= m.DragThreshold && m.renderIndex() > 0:
		return m.Prev()
	}
	return nil
}

// dragWalk reports live drag travel as a percentage of the viewport
// width. Leftward travel is negative, matching track offsets.
func (m Model) dragWalk() float64 {
	if !m.dragging || m.width == 0 {
		return 0
	}
	return float64(m.dragX-m.dragStartX) / float64(m.width) * 100
}

// trackOffset reports the strip translation in percent. Settled it is the
// active index's berth; during a drag it follows the pointer, clamped to
// the strip's ends.
func (m Model) trackOffset() float64 {
	base := float64(m.renderIndex()) * -100
	if !m.dragging {
		return base
	}
	off := m.dragStartOffset + m.dragWalk()
	low := float64(len(m.slides)-1) * -100
	if off > 0 {
		off = 0
	}
	if off < low {
		off = low
	}
	return off
}
