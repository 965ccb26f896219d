package carousel

// Slide is a single carousel item. Slides are supplied by the host when the
// model is created and are never mutated by the widget; their order defines
// the navigation order.
type Slide struct {
	// URL locates the slide image. The widget displays it verbatim and
	// never fetches it.
	URL string
	// ID identifies the slide to the host.
	ID int
	// Name is the human-readable label (alt text) for the slide.
	Name string
}

// Content holds the optional caption layers for a slide. The content
// sequence is index-aligned with the slide sequence; a missing entry
// renders as empty strings.
type Content struct {
	Title    string
	Subtitle string
	Body     string
}

// Empty reports whether all caption layers are blank.
func (c Content) Empty() bool {
	return c.Title == "" && c.Subtitle == "" && c.Body == ""
}

// SlideContext carries the render-time facts a slide renderer needs.
type SlideContext struct {
	// Index is the position of the slide being rendered.
	Index int
	// Current is the committed active slide index.
	Current int
	// Position is the track position in slide units. It equals Current
	// when settled and is fractional while a drag is in flight.
	Position float64
	// Width and Height are the frame dimensions in cells.
	Width  int
	Height int
	// Opacity is the fade-in opacity of the active slide, in [0, 1].
	// It is 1 whenever the fade effect is disabled or settled.
	Opacity float64
	// Lazy is set when the slide sits outside the eagerly rendered
	// window around the active slide and may skip heavy content.
	Lazy bool
	// Parallax reports whether caption layers should be displaced by
	// their index distance from the active slide.
	Parallax bool
	// Styles is the widget style set in effect.
	Styles Styles
}

// SlideRenderer produces the frame for one slide. Implementations replace
// the default frame entirely; the widget normalizes the result to the
// frame dimensions, so oversized output is cropped and undersized output
// is padded.
type SlideRenderer func(slide Slide, content Content, ctx SlideContext) string
