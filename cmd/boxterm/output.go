package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxterm/internal/backend/ansi"
	"github.com/alexisbeaulieu97/boxterm/internal/backend/cells"
	"github.com/alexisbeaulieu97/boxterm/internal/backend/screen"
	"github.com/alexisbeaulieu97/boxterm/internal/backend/styled"
	"github.com/alexisbeaulieu97/boxterm/internal/logger"
	"github.com/alexisbeaulieu97/boxterm/internal/render"
)

const (
	backendANSI   = "ansi"
	backendStyled = "styled"
	backendCells  = "cells"
	backendView   = "view"
)

var backends = []string{backendANSI, backendStyled, backendCells, backendView}

func validBackend(name string) bool {
	return slices.Contains(backends, name)
}

// emit renders r with the session's backend.
func (s *session) emit(cmd *cobra.Command, title string, r render.Renderable) error {
	log := s.log.Component("output").WithFields(logger.Fields{"backend": s.backend, "title": title})
	log.Debug("rendering")

	var err error
	switch s.backend {
	case backendANSI:
		out := bufio.NewWriter(cmd.OutOrStdout())
		err = render.Render(ansi.New(out, s.width), r)
		if flushErr := out.Flush(); err == nil {
			err = flushErr
		}
	case backendStyled:
		var text styled.Text
		text, err = styled.Capture(s.width, r)
		if err == nil {
			out := cmd.OutOrStdout()
			_, err = fmt.Fprintln(out, text.Styled(styled.NewRenderer(out, false)))
		}
	case backendCells:
		err = cells.Show(r)
	case backendView:
		var text styled.Text
		text, err = styled.Capture(s.width, r)
		if err == nil {
			err = screen.Show(title, text.Styled(styled.NewRenderer(os.Stdout, false)))
		}
	default:
		err = fmt.Errorf("unknown backend %q", s.backend)
	}

	if err != nil {
		log.Error(err, "render failed")
		return newCommandError(title, "rendering output", err, "Try --backend ansi to write plain escape sequences.")
	}
	return nil
}
