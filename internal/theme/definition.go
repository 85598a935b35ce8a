package theme

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/colour"
	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

// Definition is the decoded, unresolved content of a theme file.
type Definition struct {
	Colours []ColourDef         `validate:"dive"`
	Styles  map[string]StyleDef `validate:"dive,keys,theme_name,endkeys"`
}

// ColourDef is one colours entry: a hex literal or another colour's name.
type ColourDef struct {
	Name  string `validate:"required,theme_name"`
	Value string `validate:"required"`
}

// StyleDef names the three colours of a box style.
type StyleDef struct {
	Surround   string `yaml:"surround" toml:"surround" validate:"required"`
	Background string `yaml:"background" toml:"background" validate:"required"`
	Foreground string `yaml:"foreground" toml:"foreground" validate:"required"`
}

// Resolve validates the definition, builds the colour registry and binds every
// style to its colours.
func (s *Definition) Resolve(source string) (*Theme, error) {
	if err := ValidateDefinition(s); err != nil {
		return nil, err
	}

	entries := make([]colour.Entry, len(s.Colours))
	for i, c := range s.Colours {
		entries[i] = colour.Entry{Name: c.Name, Value: c.Value}
	}
	registry, err := colour.BuildRegistry(entries)
	if err != nil {
		return nil, apperrors.NewValidationError("colours", err.Error(), err)
	}

	names := make([]string, 0, len(s.Styles))
	for name := range s.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	styles := make(map[string]border.BoxStyle, len(s.Styles))
	for _, name := range names {
		style := s.Styles[name]
		lookup := func(role, value string) (colour.Colour, error) {
			c, ok := registry.Get(value)
			if !ok {
				return colour.Colour{}, apperrors.NewValidationError(
					fmt.Sprintf("styles.%s.%s", name, role),
					fmt.Sprintf("unknown colour %q", value),
					nil)
			}
			return c, nil
		}

		surround, err := lookup("surround", style.Surround)
		if err != nil {
			return nil, err
		}
		background, err := lookup("background", style.Background)
		if err != nil {
			return nil, err
		}
		foreground, err := lookup("foreground", style.Foreground)
		if err != nil {
			return nil, err
		}
		styles[name] = border.NewBoxStyle(surround, background, foreground)
	}

	return &Theme{source: source, colours: registry, styles: styles}, nil
}
