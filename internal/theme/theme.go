// Package theme loads named colours and box styles from theme files.
//
// A theme file lists colours, as hex literals or aliases of other colours,
// and named box styles built from those colours:
//
//	colours:
//	  black: "#000000"
//	  white: "#ffffff"
//	  title: "#3a5a8c"
//	  text: white
//	styles:
//	  title: { surround: black, background: title, foreground: text }
//
// YAML files keep the declared colour order; TOML files are resolved in
// name order.
package theme

import (
	"sort"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/colour"
)

// Theme is a resolved colour registry plus named box styles.
type Theme struct {
	source  string
	colours *colour.Registry
	styles  map[string]border.BoxStyle
}

// Source returns the file the theme was loaded from, or "default" for the
// built-in theme.
func (t *Theme) Source() string {
	return t.source
}

// Colours returns the resolved colour registry.
func (t *Theme) Colours() *colour.Registry {
	return t.colours
}

// Style returns the box style registered under name.
func (t *Theme) Style(name string) (border.BoxStyle, bool) {
	style, ok := t.styles[name]
	return style, ok
}

// StyleNames returns the style names in sorted order.
func (t *Theme) StyleNames() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
