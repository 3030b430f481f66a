package restyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableThemes(t *testing.T) {
	names := AvailableThemes()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "dracula")
	assert.Contains(t, names, "ansi16")
	// Sorted, for stable --list-themes output.
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestThemeByName(t *testing.T) {
	th, ok := ThemeByName("nord")
	require.True(t, ok)
	assert.Equal(t, "nord", th.Name())

	// Lookup is case-insensitive and trims whitespace.
	th, ok = ThemeByName("  Gruvbox ")
	require.True(t, ok)
	assert.Equal(t, "gruvbox", th.Name())

	// Empty name falls back to the default theme.
	th, ok = ThemeByName("")
	require.True(t, ok)
	assert.Equal(t, "default", th.Name())

	_, ok = ThemeByName("no-such-theme")
	assert.False(t, ok)
}

func TestThemeRolesResolve(t *testing.T) {
	// Every role of every built-in theme must resolve to a color.
	for _, name := range AvailableThemes() {
		th, ok := ThemeByName(name)
		require.True(t, ok)
		r := resolver{theme: th}
		for _, role := range []string{"title", "subtitle", "accent", "muted", "success", "warning", "error", "info"} {
			_, err := r.resolve(role)
			assert.NoError(t, err, "theme %s role %s", name, role)
		}
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("custom", Roles{Error: "#ff0000"})
	r := resolver{theme: th}

	e, err := r.resolve("error")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;255;0;0m", e.open)

	// Unbound roles are unknown tags under this theme.
	_, err = r.resolve("warning")
	assert.Error(t, err)
}
