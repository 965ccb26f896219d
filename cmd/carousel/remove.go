package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carouselkit/carousel/internal/gallery"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <deck-id>",
		Short: "Remove a deck from the gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, deckID string, opts *removeOptions) error {
	if strings.TrimSpace(deckID) == "" {
		return newCommandError("remove", "validating deck ID", errors.New("deck ID cannot be empty"), "Provide the deck ID you wish to remove.")
	}

	galleryPath, err := defaultGalleryPath()
	if err != nil {
		return newCommandError("remove", "determining gallery path", err, "Ensure your HOME directory is set correctly.")
	}

	g, err := gallery.NewGallery(galleryPath)
	if err != nil {
		return newCommandError("remove", "loading gallery", err, "Check gallery file permissions and try again.")
	}

	entry, err := g.Get(deckID)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up deck %q", deckID), err, "Run 'carousel gallery list' to view registered decks.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, deckID, entry.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := g.Remove(deckID); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing deck %q", deckID), err, "Verify the deck still exists using 'carousel gallery list'.")
	}

	if err := g.Save(); err != nil {
		return newCommandError("remove", "saving gallery", err, "Check disk space and file permissions, then retry.")
	}

	// A stale resume position for a removed deck is useless, drop it
	if resumePath, err := defaultResumePath(); err == nil {
		if resume, err := gallery.NewResumeCache(resumePath); err == nil {
			resume.Invalidate(deckID)
			_ = resume.Save()
		}
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed deck '%s'\n", deckID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nThe deck file at %s was not deleted.\n", entry.Path)

	return nil
}

func confirmRemoval(cmd *cobra.Command, deckID, deckName string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove deck '%s' (%s) from the gallery? [y/N]: ", deckID, deckName)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
