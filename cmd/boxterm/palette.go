package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxterm/internal/render"
	"github.com/alexisbeaulieu97/boxterm/internal/theme"
	"github.com/alexisbeaulieu97/boxterm/internal/widgets"
)

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	var stylesOnly bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the theme's colours and styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootFlags.open(cmd, "show palette")
			if err != nil {
				return err
			}
			return s.emit(cmd, "palette", palette{theme: s.theme, stylesOnly: stylesOnly})
		},
	}

	cmd.Flags().BoolVar(&stylesOnly, "styles", false, "Only show styles")

	return cmd
}

// palette lists every resolved colour with a swatch, then every style as a
// mini message box.
type palette struct {
	theme      *theme.Theme
	stylesOnly bool
}

func (p palette) Render(t render.Target) error {
	out := render.NewPrinter(t)

	if !p.stylesOnly {
		names := p.theme.Colours().Names()
		nameWidth := 0
		for _, name := range names {
			nameWidth = max(nameWidth, utf8.RuneCountInString(name))
		}

		for _, name := range names {
			c := p.theme.Colours().MustGet(name)
			out.Str(fmt.Sprintf(" %-*s ", nameWidth, name)).
				Attr(render.DefaultAttr().WithBackground(c)).
				Str("    ").
				Attr(render.DefaultAttr()).
				Str(" " + c.String()).
				Newline()
		}
		out.Newline()
	}

	for _, name := range p.theme.StyleNames() {
		style, _ := p.theme.Style(name)
		out.Str(" ").Push(render.Line{widgets.NewMiniMessageBox(style, name)})
	}

	return out.Err()
}
