package theme

import (
	_ "embed"
	"errors"
	"os"

	"github.com/adrg/xdg"

	"github.com/alexisbeaulieu97/boxterm/internal/logger"
)

// DefaultSource is the Source of the built-in theme.
const DefaultSource = "default"

// DefaultStyle is the style used when a command does not name one.
const DefaultStyle = "table"

//go:embed default.yaml
var defaultTheme []byte

var searchPaths = []string{
	"boxterm/theme.yaml",
	"boxterm/theme.yml",
	"boxterm/theme.toml",
}

// Default returns the built-in theme.
func Default() *Theme {
	def, err := Parse(DefaultSource, defaultTheme, FormatYAML)
	if err != nil {
		panic("theme: built-in theme does not parse: " + err.Error())
	}
	t, err := def.Resolve(DefaultSource)
	if err != nil {
		panic("theme: built-in theme does not resolve: " + err.Error())
	}
	return t
}

// Locate returns the first theme file found under the XDG config
// directories, or "" when there is none.
func Locate() string {
	for _, rel := range searchPaths {
		path, err := xdg.SearchConfigFile(rel)
		if err == nil {
			return path
		}
	}
	return ""
}

// Loader loads themes and logs what it picked.
type Loader struct {
	log *logger.Logger
}

// NewLoader returns a loader. log may be nil.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log.Component("theme")}
}

// Load reads the theme at path. An empty path searches the XDG config
// directories and falls back to the built-in theme.
func (l *Loader) Load(path string) (*Theme, error) {
	if path == "" {
		path = Locate()
		if path == "" {
			l.log.Debug("no theme file found, using built-in theme")
			return Default(), nil
		}
	}

	l.log.WithFields(logger.Fields{"path": path}).Debug("loading theme")

	def, err := ParseFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.log.WithFields(logger.Fields{"path": path}).Warn("theme file not found")
		}
		return nil, err
	}

	t, err := def.Resolve(path)
	if err != nil {
		l.log.WithFields(logger.Fields{"path": path}).Error(err, "theme failed to resolve")
		return nil, err
	}

	l.log.WithFields(logger.Fields{
		"path":    path,
		"colours": t.Colours().Len(),
		"styles":  len(t.styles),
	}).Debug("theme loaded")
	return t, nil
}
