package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/carouselkit/carousel/internal/gallery"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the decks in the gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	galleryPath, err := defaultGalleryPath()
	if err != nil {
		return newCommandError("list", "determining gallery path", err, "Ensure your HOME directory is set correctly.")
	}

	resumePath, err := defaultResumePath()
	if err != nil {
		return newCommandError("list", "determining resume path", err, "Ensure your HOME directory is set correctly.")
	}

	g, err := gallery.NewGallery(galleryPath)
	if err != nil {
		return newCommandError("list", "loading gallery", err, "Check gallery file permissions and try again.")
	}

	decks := g.List()
	if len(decks) == 0 {
		return renderEmptyList(cmd)
	}

	resume, err := gallery.NewResumeCache(resumePath)
	if err != nil {
		return newCommandError("list", "loading resume cache", err, "Check resume file permissions and try again.")
	}

	enriched := enrichDecksWithResume(decks, resume)

	if opts.jsonOutput {
		return renderListJSON(cmd, enriched)
	}

	return renderListTable(cmd, enriched)
}

type deckWithResume struct {
	Entry  gallery.Entry
	Resume gallery.ResumeState
	HasPos bool
}

// enrichDecksWithResume pairs each entry with its saved position. The
// gallery already hands the entries over sorted by name.
func enrichDecksWithResume(decks []gallery.Entry, resume *gallery.ResumeCache) []deckWithResume {
	enriched := make([]deckWithResume, len(decks))

	for i, d := range decks {
		state, ok := resume.Get(d.ID)
		enriched[i] = deckWithResume{
			Entry:  d,
			Resume: state,
			HasPos: ok,
		}
	}

	return enriched
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No decks in the gallery yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'carousel gallery add <deck-path>' to register your first deck.")
	return nil
}

func renderListTable(cmd *cobra.Command, decks []deckWithResume) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tSLIDES\tRESUME\tADDED\tPATH")

	for _, d := range decks {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\n",
			d.Entry.ID,
			valueOrFallback(d.Entry.Name, "(no name)"),
			d.Entry.SlideCount,
			formatResume(d),
			formatRelativeTime(d.Entry.RegisteredAt),
			d.Entry.Path,
		)
	}

	return writer.Flush()
}

type listJSONDeck struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Description  string    `json:"description"`
	SlideCount   int       `json:"slide_count"`
	RegisteredAt time.Time `json:"registered_at"`
	ResumeIndex  *int      `json:"resume_index,omitempty"`
	ResumedAt    time.Time `json:"resumed_at,omitempty"`
}

type listJSONPayload struct {
	Version string         `json:"version"`
	Count   int            `json:"count"`
	Decks   []listJSONDeck `json:"decks"`
}

func renderListJSON(cmd *cobra.Command, decks []deckWithResume) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(decks),
		Decks:   make([]listJSONDeck, len(decks)),
	}

	for i, d := range decks {
		entry := listJSONDeck{
			ID:           d.Entry.ID,
			Name:         d.Entry.Name,
			Path:         d.Entry.Path,
			Description:  d.Entry.Description,
			SlideCount:   d.Entry.SlideCount,
			RegisteredAt: d.Entry.RegisteredAt,
		}
		if d.HasPos {
			index := d.Resume.Index
			entry.ResumeIndex = &index
			entry.ResumedAt = d.Resume.UpdatedAt
		}
		payload.Decks[i] = entry
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatResume(d deckWithResume) string {
	if !d.HasPos {
		return "-"
	}
	return fmt.Sprintf("slide %d, %s", d.Resume.Index+1, formatRelativeTime(d.Resume.UpdatedAt))
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
