package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/widgets"
)

type messageOptions struct {
	style string
	mini  bool
}

func newMessageCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &messageOptions{}

	cmd := &cobra.Command{
		Use:   "message [text...]",
		Short: "Draw text in a boxed message",
		Long:  "Draws the arguments joined by spaces, or stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootFlags.open(cmd, "draw message")
			if err != nil {
				return err
			}
			return runMessage(cmd, s, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", "title", "Theme style for the box")
	cmd.Flags().BoolVarP(&opts.mini, "mini", "m", false, "Draw a single-line box with half-block caps")

	return cmd
}

func runMessage(cmd *cobra.Command, s *session, args []string, opts *messageOptions) error {
	style, err := s.style("draw message", opts.style)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return newCommandError("draw message", "reading stdin", err, "")
		}
		text = string(data)
	}

	if opts.mini {
		text = strings.Join(strings.Fields(text), " ")
		return s.emit(cmd, "message", render.Line{widgets.NewMiniMessageBox(style, text)})
	}
	return s.emit(cmd, "message", widgets.NewMessageBox(style, text))
}
