package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/gallery"
	"github.com/carouselkit/carousel/internal/logging"
	"github.com/carouselkit/carousel/internal/player"
	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

// Static frames fall back to the classic terminal size when stdout
// cannot report one.
const (
	staticFrameWidth  = 80
	staticFrameHeight = 24
)

type playOptions struct {
	noResume bool
}

func newPlayCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play <deck-path|deck-id>",
		Short: "Play a slideshow deck",
		Long: `Play a slideshow deck from a YAML file or from the gallery by ID.

When stdout is not a terminal, play prints a single rendered frame
instead of starting the interactive player.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayWithOptions(cmd, args[0], rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noResume, "no-resume", false, "Start from the deck's first slide instead of the saved position")

	return cmd
}

func runPlay(cmd *cobra.Command, deckArg string, flags *rootFlags) error {
	return runPlayWithOptions(cmd, deckArg, flags, &playOptions{})
}

func runPlayWithOptions(cmd *cobra.Command, deckArg string, flags *rootFlags, opts *playOptions) error {
	deckPath, deckID, err := resolveDeck(deckArg)
	if err != nil {
		return err
	}

	deck, err := config.ParseDeck(deckPath)
	if err != nil {
		return newCommandError("play", fmt.Sprintf("loading deck %q", deckPath), err, "Fix the deck errors shown above and try again.")
	}

	resume := loadResumeCache(opts.noResume)

	if !isTerminal(cmd.OutOrStdout()) {
		m := player.NewModel(deck, deckID, resume, nil)
		if flags.startSet {
			m = m.JumpTo(flags.start)
		}
		return renderStaticFrame(cmd, m)
	}

	log, err := newPlayerLogger(flags)
	if err != nil {
		return newCommandError("play", "opening the log file", err, "Check that the log path is writable or pass a different --log-file.")
	}
	defer func() { _ = log.Close() }()

	log.WithFields(map[string]any{
		"deck":   deckID,
		"path":   deckPath,
		"slides": len(deck.Slides),
	}).Info("starting playback")

	m := player.NewModel(deck, deckID, resume, log)
	if flags.startSet {
		m = m.JumpTo(flags.start)
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if !flags.noMouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		log.Error(err, "player exited with error")
		return newCommandError("play", fmt.Sprintf("playing deck %q", deckID), carouselerrors.NewPlaybackError(deckID, err), "Re-run with --verbose and check the player log for details.")
	}

	log.WithFields(map[string]any{"deck": deckID}).Info("playback finished")
	return nil
}

// renderStaticFrame prints one frame of the deck for non-interactive
// stdout, for example when piping into a pager.
func renderStaticFrame(cmd *cobra.Command, m player.Model) error {
	resized, _ := m.Update(tea.WindowSizeMsg{Width: staticFrameWidth, Height: staticFrameHeight})
	pm, ok := resized.(player.Model)
	if !ok {
		return newCommandError("play", "rendering a static frame", fmt.Errorf("unexpected model type %T", resized), "This is a bug, please report it.")
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), pm.View())
	return err
}

// resolveDeck maps the command argument to a deck file. A gallery ID
// wins when it matches a registered deck; anything else is treated as a
// path. Ad hoc paths get a derived ID so their resume position sticks
// across runs.
func resolveDeck(arg string) (path string, id string, err error) {
	if gallery.ValidateDeckID(arg) == nil {
		if entry, ok := lookupGalleryEntry(arg); ok {
			return entry.Path, entry.ID, nil
		}
	}

	absPath, err := validateAndNormalizePath(arg)
	if err != nil {
		return "", "", newCommandError("play", fmt.Sprintf("resolving deck %q", arg), err, "Pass a deck file path, or a gallery ID from 'carousel gallery list'.")
	}

	return absPath, gallery.GenerateDeckID(absPath), nil
}

func lookupGalleryEntry(id string) (gallery.Entry, bool) {
	galleryPath, err := defaultGalleryPath()
	if err != nil {
		return gallery.Entry{}, false
	}

	g, err := gallery.NewGallery(galleryPath)
	if err != nil {
		return gallery.Entry{}, false
	}

	entry, err := g.Get(id)
	if err != nil {
		return gallery.Entry{}, false
	}
	return entry, true
}

// newPlayerLogger builds a file-backed logger. The player owns the
// alternate screen for the whole session, so nothing may write to
// stdout or stderr while it runs. When no log destination can be
// resolved the logger discards output rather than failing playback.
func newPlayerLogger(flags *rootFlags) (*logging.Logger, error) {
	logPath := flags.logFile
	if logPath == "" {
		defaultPath, err := defaultLogPath()
		if err != nil {
			return logging.New(logging.Options{Level: playerLogLevel(flags), Writer: io.Discard})
		}
		logPath = defaultPath
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	return logging.New(logging.Options{
		Level:    playerLogLevel(flags),
		FilePath: logPath,
	})
}

func playerLogLevel(flags *rootFlags) string {
	if flags.logLevel != "" {
		return flags.logLevel
	}
	if flags.verbose {
		return "debug"
	}
	return "info"
}

// loadResumeCache opens the resume store. Failures degrade to playing
// without resume rather than blocking playback.
func loadResumeCache(noResume bool) *gallery.ResumeCache {
	if noResume {
		return nil
	}

	resumePath, err := defaultResumePath()
	if err != nil {
		return nil
	}

	resume, err := gallery.NewResumeCache(resumePath)
	if err != nil {
		return nil
	}
	return resume
}
