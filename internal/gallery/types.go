package gallery

import (
	"time"
)

// Entry represents a registered deck.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Description  string    `json:"description"`
	SlideCount   int       `json:"slide_count"`
	RegisteredAt time.Time `json:"registered_at"`
}

// GalleryFile is the JSON file format for the deck gallery.
type GalleryFile struct {
	Version string  `json:"version"`
	Decks   []Entry `json:"decks"`
}

// ResumeState records where playback of a deck last stood.
type ResumeState struct {
	Index     int       `json:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResumeFile is the JSON file format for the resume cache.
type ResumeFile struct {
	Version   string                 `json:"version"`
	Positions map[string]ResumeState `json:"positions"`
}
