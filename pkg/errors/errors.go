package errors

import (
	"fmt"
)

// ParseError represents a deck file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures deck validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PlaybackError represents a runtime failure while playing a deck.
type PlaybackError struct {
	Deck string
	Err  error
}

// NewPlaybackError constructs a PlaybackError.
func NewPlaybackError(deck string, err error) error {
	return &PlaybackError{Deck: deck, Err: err}
}

func (e *PlaybackError) Error() string {
	if e == nil {
		return ""
	}
	if e.Deck != "" {
		return fmt.Sprintf("playback error on deck %s: %v", e.Deck, e.Err)
	}
	return fmt.Sprintf("playback error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *PlaybackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GalleryError indicates issues reading or writing the deck gallery.
type GalleryError struct {
	DeckID  string
	Message string
	Err     error
}

// NewGalleryError constructs a GalleryError for the given deck.
func NewGalleryError(deckID string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &GalleryError{DeckID: deckID, Message: message, Err: err}
}

func (e *GalleryError) Error() string {
	if e == nil {
		return ""
	}
	if e.DeckID != "" {
		return fmt.Sprintf("gallery error [%s]: %s", e.DeckID, e.Message)
	}
	return fmt.Sprintf("gallery error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *GalleryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
