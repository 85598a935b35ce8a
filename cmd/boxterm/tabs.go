package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/widgets"
)

type tabsOptions struct {
	style       string
	activeStyle string
	active      int
	slim        bool
}

func newTabsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &tabsOptions{}

	cmd := &cobra.Command{
		Use:   "tabs <label>...",
		Short: "Draw a tab bar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootFlags.open(cmd, "draw tabs")
			if err != nil {
				return err
			}
			return runTabs(cmd, s, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "tab", "Theme style for inactive tabs")
	cmd.Flags().StringVar(&opts.activeStyle, "active-style", "tab-notice", "Theme style for the active tab")
	cmd.Flags().IntVarP(&opts.active, "active", "a", 0, "Index of the active tab (-1 for none)")
	cmd.Flags().BoolVar(&opts.slim, "slim", false, "Draw a single-line strip padded to the output width")

	return cmd
}

func runTabs(cmd *cobra.Command, s *session, labels []string, opts *tabsOptions) error {
	if opts.active < -1 || opts.active >= len(labels) {
		return newCommandError("draw tabs", "selecting the active tab",
			fmt.Errorf("index %d out of range for %d tabs", opts.active, len(labels)),
			"Pass an index between 0 and the number of labels minus one, or -1.")
	}

	inactive, err := s.style("draw tabs", opts.style)
	if err != nil {
		return err
	}
	active, err := s.style("draw tabs", opts.activeStyle)
	if err != nil {
		return err
	}

	if opts.slim {
		tabs := make([]widgets.SlimTab, len(labels))
		for i, label := range labels {
			attr := inactive.TextAttr()
			if i == opts.active {
				attr = active.TextAttr().WithBold(true)
			}
			tabs[i] = widgets.SlimTab{Label: label, Attr: attr}
		}
		background := render.DefaultAttr().WithBackground(inactive.Surround)
		return s.emit(cmd, "tabs", widgets.NewSlimTabs(background, tabs))
	}

	tabs := make([]widgets.BoxTab, len(labels))
	for i, label := range labels {
		style := inactive
		if i == opts.active {
			style = active
		}
		tabs[i] = widgets.BoxTab{Label: label, Style: style}
	}
	return s.emit(cmd, "tabs", widgets.NewBoxTabs(tabs))
}
