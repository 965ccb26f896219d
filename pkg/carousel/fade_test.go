package carousel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpacityIsFullWithoutFadeEffect(t *testing.T) {
	m := New(testSlides(3))

	m.Next()
	assert.Equal(t, 1.0, m.Opacity())
}

func TestNavigationRestartsFadeRamp(t *testing.T) {
	m := New(testSlides(3), WithFade())
	require.Equal(t, 1.0, m.Opacity(), "a freshly built model should be settled")

	cmd := m.Next()
	require.NotNil(t, cmd, "navigating with fade enabled should schedule the ramp")
	assert.Zero(t, m.Opacity())
}

func TestFadeTicksRampOpacityToFull(t *testing.T) {
	m := New(testSlides(2), WithFade())
	m.Next()

	last := 0.0
	for i := 0; i < fadeFrameCount; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(FadeTickMsg{ID: m.ID(), tag: m.fadeTag})
		require.GreaterOrEqual(t, m.Opacity(), last)
		last = m.Opacity()
		if i < fadeFrameCount-1 {
			assert.NotNil(t, cmd, "mid-ramp ticks should schedule the next frame")
		} else {
			assert.Nil(t, cmd, "the final tick should end the ramp")
		}
	}
	assert.Equal(t, 1.0, m.Opacity())
}

func TestStaleFadeTickIgnored(t *testing.T) {
	m := New(testSlides(3), WithFade())
	m.Next()
	staleTag := m.fadeTag

	m.Next()
	m, cmd := m.Update(FadeTickMsg{ID: m.ID(), tag: staleTag})
	assert.Zero(t, m.Opacity(), "a tick from the interrupted ramp must not advance the new one")
	assert.Nil(t, cmd)
}

func TestFadeTickForOtherModelIgnored(t *testing.T) {
	m := New(testSlides(3), WithFade())
	m.Next()

	m, cmd := m.Update(FadeTickMsg{ID: m.ID() + 1, tag: m.fadeTag})
	assert.Zero(t, m.Opacity())
	assert.Nil(t, cmd)
}

func TestFadeViewRendersOnlyActiveSlide(t *testing.T) {
	m := New(testSlides(3), WithFade(), WithSize(40, 8))
	m.Next()
	for i := 0; i < fadeFrameCount; i++ {
		m, _ = m.Update(FadeTickMsg{ID: m.ID(), tag: m.fadeTag})
	}

	view := m.View()
	assert.True(t, strings.Contains(view, "slide-2"))
	assert.False(t, strings.Contains(view, "slide-1"), "fade mode should not draw neighboring slides")
	assert.False(t, strings.Contains(view, "slide-3"))
}
