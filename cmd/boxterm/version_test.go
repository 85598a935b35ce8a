package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	prevVersion := version
	prevCommit := commit
	prevDate := date
	t.Cleanup(func() {
		version = prevVersion
		commit = prevCommit
		date = prevDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-16"

	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Boxterm 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2026-10-16")
}
