package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryResolvesAliases(t *testing.T) {
	t.Parallel()

	reg, err := BuildRegistry([]Entry{
		{Name: "black", Value: "#000000"},
		{Name: "white", Value: "#ffffff"},
		{Name: "default-foreground", Value: "white"},
		{Name: "default-background", Value: "black"},
		{Name: "inverse-foreground", Value: "default-background"},
		{Name: "inverse-background", Value: "default-foreground"},
	})
	require.NoError(t, err)

	black := New(0, 0, 0)
	white := New(0xff, 0xff, 0xff)

	assert.Equal(t, 6, reg.Len())
	expected := map[string]Colour{
		"black":              black,
		"white":              white,
		"default-foreground": white,
		"default-background": black,
		"inverse-foreground": black,
		"inverse-background": white,
	}
	for name, want := range expected {
		got, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestBuildRegistryResolvesAliasesDeclaredBeforeTargets(t *testing.T) {
	t.Parallel()

	reg, err := BuildRegistry([]Entry{
		{Name: "c", Value: "b"},
		{Name: "b", Value: "a"},
		{Name: "a", Value: "#123"},
	})
	require.NoError(t, err)
	assert.Equal(t, New(0x11, 0x22, 0x33), reg.MustGet("c"))
	assert.Equal(t, []string{"a", "b", "c"}, reg.Names())
}

func TestBuildRegistryErrors(t *testing.T) {
	t.Parallel()

	t.Run("literal parse failure", func(t *testing.T) {
		_, err := BuildRegistry([]Entry{{Name: "a", Value: "#hello!"}})
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "a", parseErr.Name)
		require.ErrorIs(t, err, ErrValueParse)
	})

	t.Run("dangling reference", func(t *testing.T) {
		_, err := BuildRegistry([]Entry{{Name: "a", Value: "b"}})
		var refErr *InvalidReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, &InvalidReferenceError{Name: "a", Target: "b"}, refErr)
	})

	t.Run("self reference", func(t *testing.T) {
		_, err := BuildRegistry([]Entry{{Name: "a", Value: "a"}})
		var cycleErr *CircularReferenceError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, &CircularReferenceError{Name: "a", Target: "a"}, cycleErr)
	})

	t.Run("longer cycle alongside resolvable entries", func(t *testing.T) {
		_, err := BuildRegistry([]Entry{
			{Name: "base", Value: "#fff"},
			{Name: "ok", Value: "base"},
			{Name: "x", Value: "y"},
			{Name: "y", Value: "z"},
			{Name: "z", Value: "x"},
		})
		var cycleErr *CircularReferenceError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, "x", cycleErr.Name)
		assert.Equal(t, "y", cycleErr.Target)
	})

	t.Run("dangling reference reported before cycles", func(t *testing.T) {
		_, err := BuildRegistry([]Entry{
			{Name: "a", Value: "a"},
			{Name: "b", Value: "missing"},
		})
		var refErr *InvalidReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "b", refErr.Name)
	})
}

func TestBuildRegistryLastEntryWins(t *testing.T) {
	t.Parallel()

	reg, err := BuildRegistry([]Entry{
		{Name: "a", Value: "#000"},
		{Name: "b", Value: "#fff"},
		{Name: "a", Value: "b"},
		{Name: "c", Value: "a"},
		{Name: "c", Value: "#f00"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, New(0xff, 0xff, 0xff), reg.MustGet("a"))
	assert.Equal(t, New(0xff, 0, 0), reg.MustGet("c"))
}

func TestBuildRegistryEmpty(t *testing.T) {
	t.Parallel()

	reg, err := BuildRegistry(nil)
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
	_, ok := reg.Get("anything")
	assert.False(t, ok)
	assert.Panics(t, func() { reg.MustGet("anything") })
}
