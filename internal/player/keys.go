package player

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/carouselkit/carousel/pkg/carousel"
)

// KeyMap collects the player's bindings alongside the widget's own
// navigation keys so the help footer can present them together.
type KeyMap struct {
	Carousel carousel.KeyMap

	First key.Binding
	Last  key.Binding
	Play  key.Binding
	Fade  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the stock player bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Carousel: carousel.DefaultKeyMap(),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last slide"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "play/pause"),
		),
		Fade: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle fade"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Carousel.Prev, k.Carousel.Next, k.Play, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Carousel.Prev, k.Carousel.Next, k.First, k.Last},
		{k.Play, k.Fade},
		{k.Help, k.Quit},
	}
}
