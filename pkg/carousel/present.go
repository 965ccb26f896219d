package carousel

import "math"

// DotClass tiers a pagination dot by its distance from the active slide.
type DotClass int

const (
	// DotOtherClass marks dots two or more positions away.
	DotOtherClass DotClass = iota
	// DotAdjacentClass marks the dots immediately before and after the
	// active one.
	DotAdjacentClass
	// DotActiveClass marks the active slide's dot.
	DotActiveClass
)

// ClassifyDot tiers dot i against the active slide index. Distance is
// positional, so the first and last dots are never adjacent to each other
// even though navigation wraps.
func ClassifyDot(i, active int) DotClass {
	switch d := i - active; {
	case d == 0:
		return DotActiveClass
	case d == -1 || d == 1:
		return DotAdjacentClass
	default:
		return DotOtherClass
	}
}

// ScrollbarRatio maps the active slide to overall progress through the
// sequence: 1/count on the first slide rising to 1 on the last.
func ScrollbarRatio(active, count int) float64 {
	if count <= 0 {
		return 0
	}
	if active < 0 {
		active = 0
	}
	if active >= count {
		active = count - 1
	}
	return float64(active+1) / float64(count)
}

// Caption layer depths. Deeper layers travel further against the track,
// so the title drifts most and the body least.
const (
	DepthTitle    = -300.0
	DepthSubtitle = -200.0
	DepthBody     = -100.0
)

// ParallaxOffset reports the horizontal shift in cells for a caption layer
// of the given depth on slide index, with the track at position pos in
// slide units. pos is fractional mid-drag. A settled slide (pos == index)
// has zero shift.
func ParallaxOffset(depth, pos float64, index int) int {
	progress := pos - float64(index)
	return int(math.Round(depth * progress / 100))
}
