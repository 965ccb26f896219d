package gallery

import (
	"crypto/rand"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	deckIDMaxLength        = 64
	randomIDSuffixLength   = 8
	randomIDSuffixFallback = "abcdefgh"
)

var (
	deckIDPattern       = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateDeckID converts a deck file path into a sanitized deck ID.
func GenerateDeckID(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	id := SanitizeFilename(base)
	if id == "" {
		id = fmt.Sprintf("deck-%s", randomIDSuffix(randomIDSuffixLength))
	}

	if len(id) > deckIDMaxLength {
		id = trimToLength(id, deckIDMaxLength)
	}

	if id == "" {
		id = fmt.Sprintf("deck-%s", randomIDSuffix(randomIDSuffixLength))
	}

	return id
}

// ValidateDeckID ensures the provided ID matches the allowed pattern.
func ValidateDeckID(id string) error {
	if id == "" {
		return fmt.Errorf("deck ID cannot be empty")
	}

	if len(id) > deckIDMaxLength {
		return fmt.Errorf("deck ID %q is too long: maximum length is %d characters", id, deckIDMaxLength)
	}

	if !deckIDPattern.MatchString(id) {
		return fmt.Errorf("invalid deck ID %q: must match %s", id, deckIDPattern.String())
	}

	return nil
}

// SanitizeFilename normalizes a filename into an identifier-friendly format.
func SanitizeFilename(name string) string {
	lowered := strings.ToLower(name)
	sanitized := nonAlphanumericExpr.ReplaceAllString(lowered, "-")
	sanitized = strings.Trim(sanitized, "-")

	if len(sanitized) > deckIDMaxLength {
		sanitized = trimToLength(sanitized, deckIDMaxLength)
	}

	return sanitized
}

func randomIDSuffix(length int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return randomIDSuffixFallback
	}

	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}

	return string(buf)
}

func trimToLength(value string, length int) string {
	if len(value) <= length {
		return strings.Trim(value, "-")
	}

	trimmed := value[:length]
	return strings.Trim(trimmed, "-")
}
