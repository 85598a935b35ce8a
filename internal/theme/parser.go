package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", apperrors.NewValidationError("theme", fmt.Sprintf("unsupported theme file extension %q", filepath.Ext(path)), nil)
	}
}

// ParseFile reads and decodes a theme file. The result is not yet validated.
func ParseFile(path string) (*Definition, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	return Parse(path, data, format)
}

// Parse decodes theme data. path is only used in error messages.
func Parse(path string, data []byte, format Format) (*Definition, error) {
	switch format {
	case FormatYAML:
		return parseYAML(path, data)
	case FormatTOML:
		return parseTOML(path, data)
	default:
		return nil, apperrors.NewValidationError("theme", fmt.Sprintf("unsupported theme format %q", format), nil)
	}
}

type yamlFile struct {
	Colours yaml.Node           `yaml:"colours"`
	Styles  map[string]StyleDef `yaml:"styles"`
}

func parseYAML(path string, data []byte) (*Definition, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewParseError(path, extractLine(err), err)
	}

	colours, err := orderedColours(path, &file.Colours)
	if err != nil {
		return nil, err
	}

	return &Definition{Colours: colours, Styles: file.Styles}, nil
}

// orderedColours walks the colours mapping in document order.
func orderedColours(path string, node *yaml.Node) ([]ColourDef, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.NewParseError(path, node.Line, errors.New("colours must be a mapping of name to colour"))
	}

	colours := make([]ColourDef, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, apperrors.NewParseError(path, value.Line, fmt.Errorf("colour %q must be a string", key.Value))
		}
		colours = append(colours, ColourDef{Name: key.Value, Value: value.Value})
	}
	return colours, nil
}

type tomlFile struct {
	Colours map[string]string   `toml:"colours"`
	Styles  map[string]StyleDef `toml:"styles"`
}

func parseTOML(path string, data []byte) (*Definition, error) {
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		line := 0
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ = decodeErr.Position()
		}
		return nil, apperrors.NewParseError(path, line, err)
	}

	names := make([]string, 0, len(file.Colours))
	for name := range file.Colours {
		names = append(names, name)
	}
	sort.Strings(names)

	colours := make([]ColourDef, len(names))
	for i, name := range names {
		colours[i] = ColourDef{Name: name, Value: file.Colours[name]}
	}

	return &Definition{Colours: colours, Styles: file.Styles}, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
