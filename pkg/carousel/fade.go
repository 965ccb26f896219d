package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	fadeFrameCount    = 8
	fadeFrameInterval = 60 * time.Millisecond
)

// FadeTickMsg drives one frame of the crossfade ramp. Like autoplay ticks
// it carries the scheduling generation so a navigation mid-fade restarts
// the ramp cleanly.
type FadeTickMsg struct {
	ID  int
	tag int
}

func (m Model) fadeTick() tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(time.Time) tea.Msg {
		return FadeTickMsg{ID: m.id, tag: m.fadeTag}
	})
}

// restartFade resets the opacity ramp after a navigation. It is a no-op
// unless the fade effect is enabled.
func (m *Model) restartFade() tea.Cmd {
	if !m.EffectFade {
		return nil
	}
	m.fadeTag++
	m.fadeFrame = 0
	return m.fadeTick()
}

func (m Model) handleFadeTick(msg FadeTickMsg) (Model, tea.Cmd) {
	if msg.ID != m.id || msg.tag != m.fadeTag || m.fadeFrame >= fadeFrameCount {
		return m, nil
	}
	m.fadeFrame++
	if m.fadeFrame >= fadeFrameCount {
		return m, nil
	}
	return m, m.fadeTick()
}

// Opacity reports the active slide's crossfade opacity in [0, 1]. Without
// the fade effect, or once a fade has settled, it is 1.
func (m Model) Opacity() float64 {
	if !m.EffectFade || m.fadeFrame >= fadeFrameCount {
		return 1
	}
	return float64(m.fadeFrame) / float64(fadeFrameCount)
}
