package player

import (
	"time"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/pkg/carousel"
)

// buildCarousel translates a parsed deck into a configured widget.
// start overrides the deck's own start option so a resumed session
// picks up where it left off.
func buildCarousel(deck *config.Deck, start int) carousel.Model {
	opts := []carousel.Option{
		carousel.WithContents(contentsFromDeck(deck)),
		carousel.WithStartIndex(start),
	}

	o := deck.Options
	if o.Effect == config.EffectFade {
		opts = append(opts, carousel.WithFade())
	}
	if o.Keyboard {
		opts = append(opts, carousel.WithKeyboard())
	}
	if o.Parallax {
		opts = append(opts, carousel.WithParallax())
	}
	if o.Lazy {
		opts = append(opts, carousel.WithLazy())
	}
	if o.AutoPlayEnabled() {
		opts = append(opts, carousel.WithAutoPlay(autoPlayInterval(o.AutoPlay)))
	}
	if o.ShowButtons() {
		opts = append(opts, carousel.WithPrevButton(true), carousel.WithNextButton(true))
	}
	opts = append(opts, carousel.WithPagination(paginationMode(o.Pagination)))
	if o.Scrollbar {
		opts = append(opts, carousel.WithScrollbar())
	}
	if o.DragThreshold > 0 {
		opts = append(opts, carousel.WithDragThreshold(o.DragThreshold))
	}

	return carousel.New(slidesFromDeck(deck), opts...)
}

func slidesFromDeck(deck *config.Deck) []carousel.Slide {
	slides := make([]carousel.Slide, len(deck.Slides))
	for i, s := range deck.Slides {
		slides[i] = carousel.Slide{
			ID:   s.ID,
			Name: s.Name,
			URL:  s.URL,
		}
	}
	return slides
}

func contentsFromDeck(deck *config.Deck) []carousel.Content {
	if len(deck.Captions) == 0 {
		return nil
	}
	contents := make([]carousel.Content, len(deck.Captions))
	for i, c := range deck.Captions {
		contents[i] = carousel.Content{
			Title:    c.Title,
			Subtitle: c.Subtitle,
			Body:     c.Body,
		}
	}
	return contents
}

func autoPlayInterval(a *config.AutoPlay) time.Duration {
	if a == nil || a.IntervalMS <= 0 {
		return 0
	}
	return time.Duration(a.IntervalMS) * time.Millisecond
}

// paginationMode maps the deck's pagination forms onto the widget's modes.
// A deck that says nothing gets plain dots.
func paginationMode(p config.Pagination) carousel.PaginationMode {
	switch {
	case !p.Set:
		return carousel.PaginationPlain
	case !p.Enabled:
		return carousel.PaginationOff
	case p.DynamicBullets:
		return carousel.PaginationDynamic
	default:
		return carousel.PaginationPlain
	}
}
