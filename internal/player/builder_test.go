package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/pkg/carousel"
)

func TestBuildCarouselDefaults(t *testing.T) {
	m := buildCarousel(testDeck(3), 0)

	assert.False(t, m.EffectFade)
	assert.False(t, m.Parallax)
	assert.False(t, m.Lazy)
	assert.False(t, m.Playing())
	assert.True(t, m.ShowPrevButton)
	assert.True(t, m.ShowNextButton)
	assert.Equal(t, carousel.PaginationPlain, m.Pagination)
	assert.False(t, m.ShowScrollbar)
	assert.Equal(t, 3, m.Count())
}

func TestBuildCarouselAppliesDeckOptions(t *testing.T) {
	deck := testDeck(4)
	deck.Options = config.Options{
		Effect:        config.EffectFade,
		AutoPlay:      &config.AutoPlay{Enabled: true, IntervalMS: 2500},
		Keyboard:      true,
		Parallax:      true,
		Lazy:          true,
		Scrollbar:     true,
		DragThreshold: 8,
	}

	m := buildCarousel(deck, 0)

	assert.True(t, m.EffectFade)
	assert.True(t, m.KeyboardControl)
	assert.True(t, m.Parallax)
	assert.True(t, m.Lazy)
	assert.True(t, m.ShowScrollbar)
	assert.True(t, m.Playing())
	assert.Equal(t, 2500*time.Millisecond, m.AutoPlayInterval)
	assert.Equal(t, 8.0, m.DragThreshold)
}

func TestBuildCarouselAutoplayWithoutIntervalUsesDefault(t *testing.T) {
	deck := testDeck(3)
	deck.Options.AutoPlay = &config.AutoPlay{Enabled: true}

	m := buildCarousel(deck, 0)

	assert.True(t, m.Playing())
	assert.Equal(t, 3*time.Second, m.AutoPlayInterval)
}

func TestBuildCarouselAutoplayDisabledForm(t *testing.T) {
	deck := testDeck(3)
	deck.Options.AutoPlay = &config.AutoPlay{Enabled: false}

	m := buildCarousel(deck, 0)

	assert.False(t, m.Playing())
}

func TestBuildCarouselButtonsOff(t *testing.T) {
	deck := testDeck(3)
	off := false
	deck.Options.Buttons = &off

	m := buildCarousel(deck, 0)

	assert.False(t, m.ShowPrevButton)
	assert.False(t, m.ShowNextButton)
}

func TestBuildCarouselPaginationForms(t *testing.T) {
	tests := []struct {
		name       string
		pagination config.Pagination
		want       carousel.PaginationMode
	}{
		{"unset defaults to plain dots", config.Pagination{}, carousel.PaginationPlain},
		{"disabled", config.Pagination{Set: true, Enabled: false}, carousel.PaginationOff},
		{"plain", config.Pagination{Set: true, Enabled: true}, carousel.PaginationPlain},
		{"dynamic", config.Pagination{Set: true, Enabled: true, DynamicBullets: true}, carousel.PaginationDynamic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := testDeck(3)
			deck.Options.Pagination = tt.pagination

			m := buildCarousel(deck, 0)
			assert.Equal(t, tt.want, m.Pagination)
		})
	}
}

func TestBuildCarouselStartIndex(t *testing.T) {
	m := buildCarousel(testDeck(5), 3)
	assert.Equal(t, 3, m.Index())
}

func TestSlidesFromDeckKeepsOrderAndFields(t *testing.T) {
	deck := testDeck(3)
	slides := slidesFromDeck(deck)

	assert.Len(t, slides, 3)
	assert.Equal(t, "slide-0", slides[0].Name)
	assert.Equal(t, "https://example.com/2.png", slides[2].URL)
	assert.Equal(t, 1, slides[0].ID)
}

func TestContentsFromDeckAlignsByPosition(t *testing.T) {
	deck := testDeck(3)
	deck.Captions = []config.CaptionSpec{
		{Title: "first", Subtitle: "one", Body: "body one"},
		{Title: "second"},
	}

	contents := contentsFromDeck(deck)

	assert.Len(t, contents, 2)
	assert.Equal(t, "first", contents[0].Title)
	assert.Equal(t, "one", contents[0].Subtitle)
	assert.Equal(t, "second", contents[1].Title)
}

func TestContentsFromDeckEmptyCaptions(t *testing.T) {
	assert.Nil(t, contentsFromDeck(testDeck(3)))
}

func TestAutoPlayIntervalConversion(t *testing.T) {
	assert.Equal(t, time.Duration(0), autoPlayInterval(nil))
	assert.Equal(t, time.Duration(0), autoPlayInterval(&config.AutoPlay{Enabled: true}))
	assert.Equal(t, 500*time.Millisecond, autoPlayInterval(&config.AutoPlay{IntervalMS: 500}))
}
