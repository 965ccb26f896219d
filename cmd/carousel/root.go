package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose  bool
	logFile  string
	logLevel string
	noMouse  bool
	start    int
	startSet bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "carousel",
		Short:         "Carousel plays image-deck slideshows in the terminal",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.startSet = cmd.Flags().Changed("start")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare deck argument plays it without the play subcommand
			if len(args) == 1 {
				return runPlay(cmd, args[0], flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write the player log to this file (defaults to ~/.carousel/player.log)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse support in the player")
	cmd.PersistentFlags().IntVar(&flags.start, "start", 0, "Start playback at this slide index")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
