package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/gallery"
)

type addOptions struct {
	id          string
	name        string
	description string
	verbose     bool
}

func newAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <deck-path>",
		Short: "Add a deck to the gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.verbose = rootFlags.verbose
			return runAdd(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.id, "id", "i", "", "Deck ID (auto-generated if omitted)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Deck name (defaults to the deck's own name)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")

	return cmd
}

func runAdd(cmd *cobra.Command, deckPath string, opts *addOptions) error {
	absPath, err := validateAndNormalizePath(deckPath)
	if err != nil {
		return newCommandError("add", fmt.Sprintf("resolving deck path %q", deckPath), err, "Check that the file exists and you have permission to read it.")
	}

	if opts.verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "→ Validating deck file: %s\n", absPath)
	}

	deck, err := config.ParseDeck(absPath)
	if err != nil {
		return newCommandError("add", "validating deck", err, "Fix the deck errors shown above and try again.")
	}

	if opts.name == "" {
		opts.name = deck.Name
	}
	if opts.name == "" {
		opts.name = deriveNameFromPath(absPath)
	}

	if opts.id == "" {
		opts.id = gallery.GenerateDeckID(absPath)
	}

	if err := gallery.ValidateDeckID(opts.id); err != nil {
		return newCommandError("add", "validating deck ID", err, "Provide an ID using lowercase letters, numbers, and hyphens. IDs must start and end with alphanumeric characters.")
	}

	galleryPath, err := defaultGalleryPath()
	if err != nil {
		return newCommandError("add", "determining gallery path", err, "Ensure your HOME directory is set correctly.")
	}

	g, err := gallery.NewGallery(galleryPath)
	if err != nil {
		return newCommandError("add", "loading gallery", err, "Check that you have write access to the gallery directory.")
	}

	entry := gallery.Entry{
		ID:           opts.id,
		Name:         opts.name,
		Path:         absPath,
		Description:  opts.description,
		SlideCount:   len(deck.Slides),
		RegisteredAt: time.Now().UTC(),
	}

	if err := g.Add(entry); err != nil {
		return newCommandError("add", fmt.Sprintf("adding deck %q", opts.id), err, "Use a different ID or remove the existing deck first.")
	}

	if err := g.Save(); err != nil {
		return newCommandError("add", "saving gallery", err, "Check disk space and file permissions, then retry.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added deck '%s' (%s)\n", entry.ID, entry.Name)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Path:   %s\n", entry.Path)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Slides: %d\n", entry.SlideCount)

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'carousel play "+entry.ID+"' to start the slideshow.")

	return nil
}

func validateAndNormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("deck path cannot be empty")
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", absPath)
	}

	return absPath, nil
}

func deriveNameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return strings.TrimSpace(base)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
