package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/boxterm/internal/border"
	"github.com/alexisbeaulieu97/boxterm/internal/logger"
	"github.com/alexisbeaulieu97/boxterm/internal/theme"
)

const fallbackWidth = 80

// session is the per-command state derived from the root flags.
type session struct {
	log     *logger.Logger
	theme   *theme.Theme
	width   int
	backend string
}

func (f *rootFlags) open(cmd *cobra.Command, operation string) (*session, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "")
	}

	backend := strings.ToLower(strings.TrimSpace(f.backend))
	if !validBackend(backend) {
		return nil, newCommandError(operation, "selecting backend",
			fmt.Errorf("unknown backend %q", f.backend),
			"Use one of: "+strings.Join(backends, ", ")+".")
	}

	th, err := theme.NewLoader(log).Load(f.theme)
	if err != nil {
		return nil, newCommandError(operation, "loading theme", err,
			"Check the theme file syntax and that every style names a defined colour.")
	}

	width := resolveWidth(f.width, cmd.OutOrStdout())
	log.Component("cli").WithFields(logger.Fields{
		"command": operation,
		"theme":   th.Source(),
		"width":   width,
		"backend": backend,
	}).Debug("session ready")

	return &session{log: log, theme: th, width: width, backend: backend}, nil
}

// resolveWidth prefers the flag, then the size of out when it is a terminal.
func resolveWidth(flag int, out io.Writer) int {
	if flag > 0 {
		return flag
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

func (s *session) style(operation, name string) (border.BoxStyle, error) {
	style, ok := s.theme.Style(name)
	if !ok {
		return border.BoxStyle{}, newCommandError(operation, fmt.Sprintf("looking up style %q", name),
			fmt.Errorf("theme %s has no style %q", s.theme.Source(), name),
			"Available styles: "+strings.Join(s.theme.StyleNames(), ", ")+".")
	}
	return style, nil
}

// openInput returns stdin when no path or "-" is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(args[0])
}
