package carousel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the widget: the slide area on top, then the controls row,
// then the scrollbar, each only when enabled.
func (m Model) View() string {
	if len(m.slides) == 0 {
		return m.Styles.Empty.Width(m.width).Height(m.height).Render("no slides")
	}

	var b strings.Builder
	if m.EffectFade {
		b.WriteString(m.renderFrame(m.renderIndex(), float64(m.renderIndex())))
	} else {
		b.WriteString(m.viewTrack())
	}
	if row := m.viewControls(); row != "" {
		b.WriteByte('\n')
		b.WriteString(row)
	}
	if m.ShowScrollbar {
		b.WriteByte('\n')
		b.WriteString(m.scrollbar.ViewAs(ScrollbarRatio(m.renderIndex(), len(m.slides))))
	}
	return b.String()
}

// viewTrack renders every frame side by side and cuts the viewport-sized
// window at the current track offset, so drags show both slides moving
// together.
func (m Model) viewTrack() string {
	w := m.width
	pos := -m.trackOffset() / 100

	frames := make([]string, len(m.slides))
	for i := range m.slides {
		frames[i] = m.renderFrame(i, pos)
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, frames...)

	// Pad a full viewport of blank cells on both sides so the window can
	// straddle either end of the strip during a clamped drag.
	pad := strings.Repeat(" ", w)
	start := w + int(math.Round(pos*float64(w)))
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		line = ansi.TruncateLeft(pad+line+pad, start, "")
		lines[i] = ansi.Truncate(line, w, "")
	}
	return strings.Join(lines, "\n")
}

// renderFrame produces one slide frame normalized to the viewport size.
func (m Model) renderFrame(i int, pos float64) string {
	ctx := SlideContext{
		Index:    i,
		Current:  m.renderIndex(),
		Position: pos,
		Width:    m.width,
		Height:   m.height,
		Opacity:  1,
		Lazy:     m.Lazy && !m.visited[i],
		Parallax: m.Parallax,
		Styles:   m.Styles,
	}
	if m.EffectFade && i == ctx.Current {
		ctx.Opacity = m.Opacity()
	}
	render := m.renderer
	if render == nil {
		render = defaultSlideRenderer
	}
	frame := render(m.slides[i], m.Content(i), ctx)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// defaultSlideRenderer draws a bordered frame with the slide name and URL,
// the caption layers beneath them, and a dimmed placeholder for slides not
// rendered yet.
func defaultSlideRenderer(slide Slide, content Content, ctx SlideContext) string {
	st := ctx.Styles
	innerW := ctx.Width - 2
	innerH := ctx.Height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var body string
	if ctx.Lazy {
		body = st.Placeholder.Render("… " + slide.Name)
	} else {
		lines := []string{
			faded(st.Name, ctx.Opacity).Render(slide.Name),
			faded(st.URL, ctx.Opacity).Render(slide.URL),
		}
		if !content.Empty() {
			lines = append(lines, "")
			lines = append(lines, captionLines(content, ctx)...)
		}
		body = strings.Join(lines, "\n")
	}

	inner := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)
	return faded(st.Frame, ctx.Opacity).Render(inner)
}

// captionLines renders the three caption layers, shifting each by its
// parallax depth when parallax is enabled.
func captionLines(content Content, ctx SlideContext) []string {
	type layer struct {
		text  string
		style lipgloss.Style
		depth float64
	}
	layers := []layer{
		{content.Title, ctx.Styles.CaptionTitle, DepthTitle},
		{content.Subtitle, ctx.Styles.CaptionSubtitle, DepthSubtitle},
		{content.Body, ctx.Styles.CaptionBody, DepthBody},
	}
	out := make([]string, 0, len(layers))
	for _, l := range layers {
		if l.text == "" {
			continue
		}
		line := faded(l.style, ctx.Opacity).Render(l.text)
		if ctx.Parallax {
			line = shiftLine(line, ParallaxOffset(l.depth, ctx.Position, ctx.Index))
		}
		out = append(out, line)
	}
	return out
}

// shiftLine moves a rendered line horizontally by off cells. Rightward
// shifts pad, leftward shifts crop.
func shiftLine(s string, off int) string {
	switch {
	case off > 0:
		return strings.Repeat(" ", off) + s
	case off < 0:
		return ansi.TruncateLeft(s, -off, "")
	}
	return s
}

// viewControls renders the previous button, pagination dots, and next
// button on one row. It returns "" when every control is hidden.
func (m Model) viewControls() string {
	prev := m.prevButton()
	next := m.nextButton()
	dots := m.viewDots()
	if prev == "" && next == "" && dots == "" {
		return ""
	}

	gap := m.width - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 0 {
		gap = 0
	}
	if lipgloss.Width(dots) > gap {
		dots = ansi.Truncate(dots, gap, "")
	}
	left := (gap - lipgloss.Width(dots)) / 2
	right := gap - lipgloss.Width(dots) - left
	return prev + blank(left) + dots + blank(right) + next
}

func (m Model) prevButton() string {
	if !m.ShowPrevButton {
		return ""
	}
	if m.prevSlot != nil {
		return m.prevSlot(m.Styles.Control, m.PrevCmd())
	}
	return m.Styles.Control.Render("‹")
}

func (m Model) nextButton() string {
	if !m.ShowNextButton {
		return ""
	}
	if m.nextSlot != nil {
		return m.nextSlot(m.Styles.Control, m.NextCmd())
	}
	return m.Styles.Control.Render("›")
}

// viewDots renders one dot per slide. Plain mode varies color only;
// dynamic mode also shrinks glyphs with distance from the active slide.
func (m Model) viewDots() string {
	if m.Pagination == PaginationOff {
		return ""
	}
	active := m.renderIndex()
	glyphs := make([]string, len(m.slides))
	for i := range m.slides {
		class := ClassifyDot(i, active)
		glyph := "•"
		if m.Pagination == PaginationDynamic {
			switch class {
			case DotActiveClass:
				glyph = "●"
			case DotAdjacentClass:
				glyph = "•"
			default:
				glyph = "·"
			}
		}
		var style lipgloss.Style
		switch class {
		case DotActiveClass:
			style = m.Styles.DotActive
		case DotAdjacentClass:
			style = m.Styles.DotAdjacent
		default:
			style = m.Styles.DotOther
		}
		glyphs[i] = style.Render(glyph)
	}
	return strings.Join(glyphs, " ")
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// rect is a hit-test region in widget-relative cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// regions locates the interactive areas for the current configuration.
// The zero rect matches nothing, so hidden controls never hit.
type regions struct {
	track rect
	prev  rect
	next  rect
	dots  []rect
}

// layout mirrors viewControls geometry so pointer hits land on the same
// cells the controls render into.
func (m Model) layout() regions {
	reg := regions{track: rect{0, 0, m.width, m.height}}

	prev := m.prevButton()
	next := m.nextButton()
	dots := m.viewDots()
	if prev == "" && next == "" && dots == "" {
		return reg
	}
	y := m.height
	pw := lipgloss.Width(prev)
	nw := lipgloss.Width(next)
	if prev != "" {
		reg.prev = rect{0, y, pw, 1}
	}
	if next != "" {
		reg.next = rect{m.width - nw, y, nw, 1}
	}
	if dots != "" {
		gap := m.width - pw - nw
		dw := lipgloss.Width(dots)
		if dw > gap {
			dw = gap
		}
		x := pw + (gap-dw)/2
		for range m.slides {
			if x+1 > pw+gap {
				break
			}
			reg.dots = append(reg.dots, rect{x, y, 1, 1})
			x += 2
		}
	}
	return reg
}
