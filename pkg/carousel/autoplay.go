package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AutoplayTickMsg is emitted when the autoplay interval elapses. The tag
// matches the timer generation that scheduled it, so ticks from a stopped
// or restarted timer are discarded instead of advancing the carousel.
type AutoplayTickMsg struct {
	ID  int
	tag int
}

func (m Model) autoplayTick() tea.Cmd {
	return tea.Tick(m.AutoPlayInterval, func(time.Time) tea.Msg {
		return AutoplayTickMsg{ID: m.id, tag: m.autoplayTag}
	})
}

func (m Model) handleAutoplayTick(msg AutoplayTickMsg) (Model, tea.Cmd) {
	if msg.ID != m.id || msg.tag != m.autoplayTag || !m.playing {
		return m, nil
	}
	fade := m.Next()
	return m, tea.Batch(m.autoplayTick(), fade)
}

// StartAutoplay begins advancing slides automatically every
// AutoPlayInterval. The returned command schedules the first tick and must
// reach the program for the timer to run. On an empty slide sequence it is
// a no-op.
func (m *Model) StartAutoplay() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	m.AutoPlay = true
	m.playing = true
	m.autoplayTag++
	return m.autoplayTick()
}

// StopAutoplay halts automatic advancement. In-flight ticks from the old
// timer generation are orphaned.
func (m *Model) StopAutoplay() {
	m.playing = false
	m.autoplayTag++
}

// ToggleAutoplay flips the autoplay timer and returns the command that
// arms it when turning on.
func (m *Model) ToggleAutoplay() tea.Cmd {
	if m.playing {
		m.StopAutoplay()
		return nil
	}
	return m.StartAutoplay()
}

// SetAutoPlay reconciles the timer with the desired flag: turning it on
// starts or restarts the timer, turning it off stops it. The returned
// command is nil when turning off.
func (m *Model) SetAutoPlay(on bool) tea.Cmd {
	if !on {
		m.StopAutoplay()
		return nil
	}
	return m.StartAutoplay()
}
