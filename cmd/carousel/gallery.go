package main

import (
	"github.com/spf13/cobra"
)

func newGalleryCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage the deck gallery",
		Long:  `Register, list, and remove slideshow decks kept in the gallery.`,
	}

	cmd.AddCommand(newAddCmd(rootFlags))
	cmd.AddCommand(newRemoveCmd(rootFlags))
	cmd.AddCommand(newListCmd(rootFlags))

	return cmd
}
