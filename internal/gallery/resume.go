package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ResumeCache persists per-deck playback positions between sessions.
type ResumeCache struct {
	path      string
	mu        sync.RWMutex
	version   string
	positions map[string]ResumeState
}

// NewResumeCache creates a ResumeCache instance and loads it from disk.
// Both a missing and a corrupt file yield an empty cache; losing resume
// positions must never block playback.
func NewResumeCache(path string) (*ResumeCache, error) {
	c := &ResumeCache{
		path:      path,
		version:   "1.0",
		positions: make(map[string]ResumeState),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := c.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return c, nil
}

// Load reads the cache from disk. A file that fails to parse resets the
// cache instead of erroring.
func (c *ResumeCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	var file ResumeFile
	if err := json.Unmarshal(data, &file); err != nil {
		c.positions = make(map[string]ResumeState)
		return nil
	}

	c.version = file.Version
	c.positions = file.Positions
	if c.positions == nil {
		c.positions = make(map[string]ResumeState)
	}

	return nil
}

// Save writes the cache to disk atomically.
func (c *ResumeCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := ResumeFile{
		Version:   c.version,
		Positions: c.positions,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Get retrieves the saved position for a deck.
func (c *ResumeCache) Get(deckID string) (ResumeState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, ok := c.positions[deckID]
	return state, ok
}

// Set records the playback position for a deck.
func (c *ResumeCache) Set(deckID string, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.positions[deckID] = ResumeState{Index: index, UpdatedAt: time.Now().UTC()}
}

// Invalidate removes the saved position for a deck.
func (c *ResumeCache) Invalidate(deckID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.positions, deckID)
}

// InvalidateAll removes every saved position.
func (c *ResumeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.positions = make(map[string]ResumeState)
}
