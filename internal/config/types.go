package config

import (
	"gopkg.in/yaml.v3"
)

// Transition effects a deck may select.
const (
	EffectSlide = "slide"
	EffectFade  = "fade"
)

// Deck represents a full slideshow document.
type Deck struct {
	Version     string        `yaml:"version" validate:"required,deck_version"`
	Name        string        `yaml:"name" validate:"required,min=1,max=100"`
	Description string        `yaml:"description,omitempty"`
	Options     Options       `yaml:"options,omitempty"`
	Slides      []SlideSpec   `yaml:"slides" validate:"required,min=1,dive"`
	Captions    []CaptionSpec `yaml:"captions,omitempty" validate:"omitempty,dive"`
}

// Options holds deck-level playback parameters.
type Options struct {
	Effect        string     `yaml:"effect,omitempty" validate:"omitempty,oneof=slide fade"`
	AutoPlay      *AutoPlay  `yaml:"autoplay,omitempty"`
	Keyboard      bool       `yaml:"keyboard,omitempty"`
	Parallax      bool       `yaml:"parallax,omitempty"`
	Lazy          bool       `yaml:"lazy,omitempty"`
	Buttons       *bool      `yaml:"buttons,omitempty"`
	Pagination    Pagination `yaml:"pagination,omitempty"`
	Scrollbar     bool       `yaml:"scrollbar,omitempty"`
	Start         int        `yaml:"start,omitempty" validate:"omitempty,min=0"`
	DragThreshold float64    `yaml:"drag_threshold,omitempty" validate:"omitempty,gt=0,lte=50"`
}

// AutoPlay accepts either a bare boolean or a mapping with an interval:
//
//	autoplay: true
//	autoplay:
//	  interval_ms: 2500
type AutoPlay struct {
	Enabled    bool `yaml:"-"`
	IntervalMS int  `yaml:"interval_ms,omitempty" validate:"omitempty,min=100,max=600000"`
}

// UnmarshalYAML decodes the boolean and mapping forms.
func (a *AutoPlay) UnmarshalYAML(value *yaml.Node) error {
	var enabled bool
	if err := value.Decode(&enabled); err == nil {
		a.Enabled = enabled
		a.IntervalMS = 0
		return nil
	}

	type rawAutoPlay AutoPlay
	var raw rawAutoPlay
	if err := value.Decode(&raw); err != nil {
		return err
	}
	a.Enabled = true
	a.IntervalMS = raw.IntervalMS
	return nil
}

// Pagination accepts either a bare boolean or a mapping:
//
//	pagination: false
//	pagination:
//	  dynamic_bullets: true
//
// An absent key leaves Set false and the deck falls back to plain dots.
type Pagination struct {
	Enabled        bool `yaml:"-"`
	DynamicBullets bool `yaml:"dynamic_bullets,omitempty"`
	Set            bool `yaml:"-"`
}

// UnmarshalYAML decodes the boolean and mapping forms.
func (p *Pagination) UnmarshalYAML(value *yaml.Node) error {
	p.Set = true

	var enabled bool
	if err := value.Decode(&enabled); err == nil {
		p.Enabled = enabled
		p.DynamicBullets = false
		return nil
	}

	type rawPagination Pagination
	var raw rawPagination
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Enabled = true
	p.DynamicBullets = raw.DynamicBullets
	return nil
}

// SlideSpec describes one slide in the deck.
type SlideSpec struct {
	ID   int    `yaml:"id,omitempty" validate:"omitempty,min=1"`
	Name string `yaml:"name" validate:"required,min=1,max=100"`
	URL  string `yaml:"url" validate:"required,slide_url"`
}

// CaptionSpec describes the overlay text for the slide at the same
// position. Decks may carry fewer captions than slides; trailing slides
// render without overlays.
type CaptionSpec struct {
	Title    string `yaml:"title,omitempty" validate:"omitempty,max=200"`
	Subtitle string `yaml:"subtitle,omitempty" validate:"omitempty,max=200"`
	Body     string `yaml:"body,omitempty" validate:"omitempty,max=2000"`
}

// applyDefaults fills derivable fields after decoding: slide IDs default
// to their one-based position and the effect defaults to sliding.
func applyDefaults(deck *Deck) {
	for i := range deck.Slides {
		if deck.Slides[i].ID == 0 {
			deck.Slides[i].ID = i + 1
		}
	}
	if deck.Options.Effect == "" {
		deck.Options.Effect = EffectSlide
	}
}

// ShowButtons reports whether the navigation buttons are enabled,
// defaulting to true when the deck does not say.
func (o Options) ShowButtons() bool {
	if o.Buttons == nil {
		return true
	}
	return *o.Buttons
}

// AutoPlayEnabled reports whether the deck asks for autoplay.
func (o Options) AutoPlayEnabled() bool {
	return o.AutoPlay != nil && o.AutoPlay.Enabled
}
