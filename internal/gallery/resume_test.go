package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeCacheNew(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, ok := c.Get("city-tour")
	assert.False(t, ok)
}

func TestResumeCacheSetAndGet(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err)

	c.Set("city-tour", 3)

	state, ok := c.Get("city-tour")
	require.True(t, ok)
	assert.Equal(t, 3, state.Index)
	assert.False(t, state.UpdatedAt.IsZero())
}

func TestResumeCacheSaveAndReload(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err)
	c.Set("city-tour", 2)
	c.Set("road-trip", 5)
	require.NoError(t, c.Save())

	reloaded, err := NewResumeCache(cachePath)
	require.NoError(t, err)

	state, ok := reloaded.Get("city-tour")
	require.True(t, ok)
	assert.Equal(t, 2, state.Index)

	state, ok = reloaded.Get("road-trip")
	require.True(t, ok)
	assert.Equal(t, 5, state.Index)
}

func TestResumeCacheCorruptFileResets(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{broken"), 0644))

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err, "a corrupt resume cache must not block startup")

	_, ok := c.Get("city-tour")
	assert.False(t, ok)
}

func TestResumeCacheInvalidate(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err)
	c.Set("city-tour", 1)
	c.Set("road-trip", 2)

	c.Invalidate("city-tour")
	_, ok := c.Get("city-tour")
	assert.False(t, ok)
	_, ok = c.Get("road-trip")
	assert.True(t, ok)

	c.InvalidateAll()
	_, ok = c.Get("road-trip")
	assert.False(t, ok)
}

func TestResumeCacheOverwritesPosition(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "resume.json")

	c, err := NewResumeCache(cachePath)
	require.NoError(t, err)

	c.Set("city-tour", 1)
	c.Set("city-tour", 4)

	state, ok := c.Get("city-tour")
	require.True(t, ok)
	assert.Equal(t, 4, state.Index)
}
