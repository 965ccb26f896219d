package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

// Gallery manages the deck gallery persistence.
type Gallery struct {
	path    string
	mu      sync.RWMutex
	version string
	decks   []Entry
}

// NewGallery creates a Gallery instance and loads it from disk. A missing
// file yields an empty gallery.
func NewGallery(path string) (*Gallery, error) {
	g := &Gallery{
		path:    path,
		version: "1.0",
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create gallery directory: %w", err)
	}

	if err := g.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		g.decks = []Entry{}
	}

	return g, nil
}

// Load reads the gallery from disk.
func (g *Gallery) Load() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := os.ReadFile(g.path)
	if err != nil {
		return err
	}

	var file GalleryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse gallery: %w", err)
	}

	g.version = file.Version
	g.decks = file.Decks

	return nil
}

// Save writes the gallery to disk atomically.
func (g *Gallery) Save() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	file := GalleryFile{
		Version: g.version,
		Decks:   g.decks,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gallery: %w", err)
	}

	// Write to temporary file first, then rename into place.
	tmpPath := g.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, g.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns all registered decks sorted by name, with the ID as a
// tie breaker.
func (g *Gallery) List() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make([]Entry, len(g.decks))
	copy(result, g.decks)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Get retrieves a deck by ID.
func (g *Gallery) Get(id string) (Entry, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, d := range g.decks {
		if d.ID == id {
			return d, nil
		}
	}

	return Entry{}, carouselerrors.NewGalleryError(id, fmt.Errorf("deck not found"))
}

// Add adds a new deck to the gallery.
func (g *Gallery) Add(e Entry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, existing := range g.decks {
		if existing.ID == e.ID {
			return carouselerrors.NewGalleryError(e.ID, fmt.Errorf("deck already registered"))
		}
	}

	g.decks = append(g.decks, e)
	return nil
}

// Update replaces an existing deck entry.
func (g *Gallery) Update(e Entry) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, existing := range g.decks {
		if existing.ID == e.ID {
			g.decks[i] = e
			return nil
		}
	}

	return carouselerrors.NewGalleryError(e.ID, fmt.Errorf("deck not found"))
}

// Remove removes a deck from the gallery.
func (g *Gallery) Remove(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, d := range g.decks {
		if d.ID == id {
			g.decks = append(g.decks[:i], g.decks[i+1:]...)
			return nil
		}
	}

	return carouselerrors.NewGalleryError(id, fmt.Errorf("deck not found"))
}
