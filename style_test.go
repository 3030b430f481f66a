package restyle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAttributes(t *testing.T) {
	var r resolver
	e, err := r.resolve("bold")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m", e.open)
	assert.Equal(t, "\x1b[22m", e.close)

	e, err = r.resolve("strikethrough")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[9m", e.open)
	assert.Equal(t, "\x1b[29m", e.close)
}

func TestResolveColors(t *testing.T) {
	var r resolver
	e, err := r.resolve("red")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m", e.open)
	assert.Equal(t, "\x1b[39m", e.close)

	e, err = r.resolve("on_green")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[42m", e.open)
	assert.Equal(t, "\x1b[49m", e.close)

	e, err = r.resolve("on_#ff5555")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;2;255;85;85m", e.open)
	assert.Equal(t, "\x1b[49m", e.close)

	// The entry keeps the tag word as its name so closes match by word.
	assert.Equal(t, "on_green", mustResolve(t, r, "on_green").name)
}

func TestResolveThemeRoles(t *testing.T) {
	r := resolver{theme: DefaultTheme()}
	e, err := r.resolve("error")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31m", e.open)

	e, err = r.resolve("on_warning")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[43m", e.open)
	assert.Equal(t, "\x1b[49m", e.close)

	// Without a theme the role name is just an unknown tag.
	var bare resolver
	_, err = bare.resolve("error")
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestResolveUnknownTag(t *testing.T) {
	var r resolver
	_, err := r.resolve("sparkly")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTag))
	assert.Contains(t, err.Error(), "sparkly")
}

func TestStyleStackCloseNames(t *testing.T) {
	var st styleStack
	st.push(styleEntry{name: "bold", open: "\x1b[1m", close: "\x1b[22m"})
	st.push(styleEntry{name: "red", open: "\x1b[31m", close: "\x1b[39m"})
	st.push(styleEntry{name: "underline", open: "\x1b[4m", close: "\x1b[24m"})

	// Closes are by name, in stack order, regardless of the order opened.
	closes := st.closeNames([]string{"underline", "bold"})
	assert.Equal(t, []string{"\x1b[22m", "\x1b[24m"}, closes)
	assert.Equal(t, []string{"\x1b[31m"}, st.snapshot())

	// An unmatched close is a silent no-op.
	assert.Nil(t, st.closeNames([]string{"italic"}))
	assert.True(t, st.active())
}

func TestStyleStackCloseByCode(t *testing.T) {
	var st styleStack
	st.push(styleEntry{name: "red", open: "\x1b[31m", close: "\x1b[39m", ansi: true})
	st.push(styleEntry{name: "bold", open: "\x1b[1m", close: "\x1b[22m", ansi: true})

	// ESC[39m closes any foreground color however it was opened.
	st.closeByCode("\x1b[39m")
	assert.Equal(t, []string{"\x1b[1m"}, st.snapshot())

	st.closeByCode("\x1b[39m")
	assert.Equal(t, []string{"\x1b[1m"}, st.snapshot())
}

func TestStyleStackCloseAllAndClear(t *testing.T) {
	var st styleStack
	st.push(styleEntry{name: "bold", open: "\x1b[1m", close: "\x1b[22m"})
	st.push(styleEntry{name: "red", open: "\x1b[31m", close: "\x1b[39m"})

	// closeAll reports without mutating, for visual resets at line breaks.
	assert.Equal(t, []string{"\x1b[22m", "\x1b[39m"}, st.closeAll())
	assert.Equal(t, []string{"\x1b[1m", "\x1b[31m"}, st.snapshot())

	st.clear()
	assert.False(t, st.active())
	assert.Nil(t, st.snapshot())
	assert.Nil(t, st.closeAll())
}

func mustResolve(t *testing.T, r resolver, word string) styleEntry {
	t.Helper()
	e, err := r.resolve(word)
	require.NoError(t, err)
	return e
}
