package carousel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Track cells map 1:1 to percent at width 100, which keeps the walk
// arithmetic in these tests readable.
func newDragModel(n int) Model {
	return New(testSlides(n), WithSize(100, 6))
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestDragPastThresholdAdvances(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	require.True(t, m.Dragging())

	m, _ = m.Update(motion(45, 2))
	m, _ = m.Update(release(45, 2))

	assert.False(t, m.Dragging())
	assert.Equal(t, 1, m.Index())
}

func TestDragUnderThresholdSnapsBack(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(47, 2))
	m, _ = m.Update(release(47, 2))

	assert.False(t, m.Dragging())
	assert.Equal(t, 0, m.Index())
}

func TestDragRightCommitsPrev(t *testing.T) {
	m := newDragModel(3)
	m.GoTo(1)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(56, 2))
	m, _ = m.Update(release(56, 2))

	assert.Equal(t, 0, m.Index())
}

func TestDragNeverWrapsAtLastSlide(t *testing.T) {
	m := newDragModel(3)
	m.GoTo(2)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(10, 2))
	m, _ = m.Update(release(10, 2))

	assert.Equal(t, 2, m.Index(), "leftward drag past the end should snap back, not wrap")
}

func TestDragNeverWrapsAtFirstSlide(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(90, 2))
	m, _ = m.Update(release(90, 2))

	assert.Equal(t, 0, m.Index(), "rightward drag past the start should snap back, not wrap")
}

func TestCustomDragThreshold(t *testing.T) {
	m := New(testSlides(3), WithSize(100, 6), WithDragThreshold(10))

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(42, 2))
	m, _ = m.Update(release(42, 2))
	assert.Equal(t, 0, m.Index(), "a walk of 8 should not reach a threshold of 10")

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(39, 2))
	m, _ = m.Update(release(39, 2))
	assert.Equal(t, 1, m.Index())
}

func TestMotionLeavingTrackSettlesDrag(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(44, 7))

	assert.False(t, m.Dragging(), "leaving the track should end the drag")
	assert.Equal(t, 1, m.Index(), "the walk at the leave position should commit")

	m, cmd := m.Update(release(44, 7))
	assert.Nil(t, cmd, "the release after a leave-settle has nothing left to do")
	assert.Equal(t, 1, m.Index())
}

func TestMotionLeavingTrackUnderThresholdSnapsBack(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(48, 7))

	assert.False(t, m.Dragging())
	assert.Equal(t, 0, m.Index())
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	m := newDragModel(3)

	m, cmd := m.Update(release(40, 2))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())
	assert.False(t, m.Dragging())
}

func TestMotionWithoutPressIsIgnored(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(motion(10, 2))
	assert.False(t, m.Dragging())
	assert.Zero(t, m.trackOffset())
}

func TestPressOutsideTrackDoesNotStartDrag(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, m.Height()+3))
	assert.False(t, m.Dragging())
}

func TestNonLeftButtonDoesNotStartDrag(t *testing.T) {
	m := newDragModel(3)

	msg := tea.MouseMsg{X: 50, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m, _ = m.Update(msg)
	assert.False(t, m.Dragging())
}

func TestMouseIgnoredWhileBlurred(t *testing.T) {
	m := newDragModel(3)
	m.Blur()

	m, _ = m.Update(press(50, 2))
	assert.False(t, m.Dragging())
}

func TestBlurAbandonsDragInFlight(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	require.True(t, m.Dragging())

	m.Blur()
	assert.False(t, m.Dragging())

	m.Focus()
	m, _ = m.Update(release(30, 2))
	assert.Equal(t, 0, m.Index(), "release after blur should not commit the abandoned drag")
}

func TestTrackOffsetFollowsPointer(t *testing.T) {
	m := newDragModel(3)
	m.GoTo(1)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(30, 2))

	assert.InDelta(t, -120, m.trackOffset(), 1e-9)
}

func TestTrackOffsetClampsAtStripEnds(t *testing.T) {
	m := newDragModel(3)

	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(95, 2))
	assert.Zero(t, m.trackOffset(), "dragging right on the first slide should pin at the start")

	m, _ = m.Update(release(95, 2))
	m.GoTo(2)
	m, _ = m.Update(press(50, 2))
	m, _ = m.Update(motion(5, 2))
	assert.InDelta(t, -200, m.trackOffset(), 1e-9, "dragging left on the last slide should pin at the end")
}

func TestPressOnButtonsNavigates(t *testing.T) {
	m := New(testSlides(3), WithSize(100, 6), WithPrevButton(true), WithNextButton(true))
	reg := m.layout()
	require.NotZero(t, reg.prev.w)
	require.NotZero(t, reg.next.w)

	m, _ = m.Update(press(reg.next.x, reg.next.y))
	assert.Equal(t, 1, m.Index())

	m, _ = m.Update(press(reg.prev.x, reg.prev.y))
	assert.Equal(t, 0, m.Index())

	m, _ = m.Update(press(reg.prev.x, reg.prev.y))
	assert.Equal(t, 2, m.Index(), "button navigation should wrap")
}

func TestPressOnDotJumpsToSlide(t *testing.T) {
	m := New(testSlides(5), WithSize(100, 6), WithPagination(PaginationPlain))
	reg := m.layout()
	require.Len(t, reg.dots, 5)

	dot := reg.dots[3]
	m, _ = m.Update(press(dot.x, dot.y))
	assert.Equal(t, 3, m.Index())
}

func TestOriginTranslatesHitTesting(t *testing.T) {
	m := New(testSlides(4), WithSize(100, 6), WithPagination(PaginationPlain))
	m.SetOrigin(7, 3)
	reg := m.layout()

	m, _ = m.Update(press(reg.dots[2].x, reg.dots[2].y))
	assert.Equal(t, 0, m.Index(), "untranslated press should miss")

	m, _ = m.Update(press(reg.dots[2].x+7, reg.dots[2].y+3))
	assert.Equal(t, 2, m.Index())
}
