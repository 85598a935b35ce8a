package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	theme   string
	width   int
	backend string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "boxterm",
		Short:         "Boxterm draws colour-boxed tables, messages and tabs in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme file (defaults to $XDG_CONFIG_HOME/boxterm/theme.yaml or the built-in theme)")
	cmd.PersistentFlags().IntVarP(&flags.width, "width", "w", 0, "Output width in columns (0 detects the terminal width)")
	cmd.PersistentFlags().StringVarP(&flags.backend, "backend", "b", backendANSI, "Output backend: ansi, styled, cells or view")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newTableCmd(flags))
	cmd.AddCommand(newMessageCmd(flags))
	cmd.AddCommand(newTabsCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
