package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carouselkit/carousel/internal/gallery"
)

func TestListCommand_TableOutput(t *testing.T) {
	home := setupCommandHome(t)
	galleryPath := filepath.Join(home, ".carousel", "gallery.json")

	seedGallery(t, galleryPath,
		gallery.Entry{ID: "city-tour", Name: "City Tour", Path: filepath.Join(home, "decks", "city.yaml"), SlideCount: 8, RegisteredAt: time.Now().Add(-4 * time.Hour)},
		gallery.Entry{ID: "alps", Name: "Alpine Hike", Path: filepath.Join(home, "decks", "alps.yaml"), SlideCount: 12, RegisteredAt: time.Now().Add(-2 * time.Hour)},
	)
	seedResume(t, filepath.Join(home, ".carousel", "resume.json"), "city-tour", 4)

	stdout, err := executeListCommand()
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "RESUME")
	require.Contains(t, stdout, "city-tour")
	require.Contains(t, stdout, "City Tour")
	require.Contains(t, stdout, "slide 5")
	require.Contains(t, stdout, filepath.Join(home, "decks", "city.yaml"))
}

func TestListCommand_SortsByName(t *testing.T) {
	home := setupCommandHome(t)
	galleryPath := filepath.Join(home, ".carousel", "gallery.json")

	seedGallery(t, galleryPath,
		gallery.Entry{ID: "aaa-deck", Name: "Zulu Tour", Path: "/tmp/z.yaml", RegisteredAt: time.Now()},
		gallery.Entry{ID: "zzz-deck", Name: "Alpha Tour", Path: "/tmp/a.yaml", RegisteredAt: time.Now()},
	)

	stdout, err := executeListCommand()
	require.NoError(t, err)
	require.Less(t, strings.Index(stdout, "Alpha Tour"), strings.Index(stdout, "Zulu Tour"))
}

func TestListCommand_JSONOutput(t *testing.T) {
	home := setupCommandHome(t)
	galleryPath := filepath.Join(home, ".carousel", "gallery.json")

	seedGallery(t, galleryPath, gallery.Entry{
		ID:           "city-tour",
		Name:         "City Tour",
		Path:         filepath.Join(home, "decks", "city.yaml"),
		Description:  "A walk downtown",
		SlideCount:   8,
		RegisteredAt: time.Now().Add(-4 * time.Hour),
	})
	seedResume(t, filepath.Join(home, ".carousel", "resume.json"), "city-tour", 4)

	stdout, err := executeListCommand("--json")
	require.NoError(t, err)

	var payload struct {
		Version string `json:"version"`
		Count   int    `json:"count"`
		Decks   []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Path        string `json:"path"`
			SlideCount  int    `json:"slide_count"`
			ResumeIndex *int   `json:"resume_index"`
		} `json:"decks"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, 1, payload.Count)
	require.Len(t, payload.Decks, 1)
	require.Equal(t, "city-tour", payload.Decks[0].ID)
	require.Equal(t, 8, payload.Decks[0].SlideCount)
	require.NotNil(t, payload.Decks[0].ResumeIndex)
	require.Equal(t, 4, *payload.Decks[0].ResumeIndex)
}

func TestListCommand_JSONOmitsResumeWhenAbsent(t *testing.T) {
	home := setupCommandHome(t)
	galleryPath := filepath.Join(home, ".carousel", "gallery.json")

	seedGallery(t, galleryPath, gallery.Entry{ID: "alps", Name: "Alps", Path: "/tmp/a.yaml", RegisteredAt: time.Now()})

	stdout, err := executeListCommand("--json")
	require.NoError(t, err)
	require.NotContains(t, stdout, "resume_index")
}

func TestListCommand_EmptyGallery(t *testing.T) {
	setupCommandHome(t)

	stdout, err := executeListCommand()
	require.NoError(t, err)
	require.Contains(t, stdout, "No decks in the gallery yet.")
	require.Contains(t, stdout, "carousel gallery add")
}

func executeListCommand(extraArgs ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)

	root.SetArgs(append([]string{"gallery", "list"}, extraArgs...))

	err := root.Execute()
	return buf.String(), err
}

func seedResume(t *testing.T, path, deckID string, index int) {
	resume, err := gallery.NewResumeCache(path)
	require.NoError(t, err)
	resume.Set(deckID, index)
	require.NoError(t, resume.Save())
}

