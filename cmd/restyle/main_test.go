package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkt.systems/restyle"
)

func defaultTestOpts() renderOpts {
	return renderOpts{width: 80, theme: restyle.DefaultTheme()}
}

func TestRender(t *testing.T) {
	o := defaultTestOpts()
	out, err := render("{red}hi{/red}", o)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mhi\x1b[39m", out)
}

func TestRenderStrip(t *testing.T) {
	o := defaultTestOpts()
	o.strip = true
	out, err := render("{red}hi{/red} there", o)
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestRenderStripANSI(t *testing.T) {
	o := defaultTestOpts()
	o.stripANSI = true
	o.strip = true
	out, err := render("\x1b[1m{red}hi{/red}\x1b[0m", o)
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestRenderBoring(t *testing.T) {
	o := defaultTestOpts()
	o.boring = true
	out, err := render("{red}hi{/red}", o)
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestRenderExpandSkipsWrap(t *testing.T) {
	o := defaultTestOpts()
	o.width = 10
	o.expand = true
	out, err := render("one two three four five six", o)
	require.NoError(t, err)
	assert.NotContains(t, out, "\n")
}

func TestRenderWraps(t *testing.T) {
	o := defaultTestOpts()
	o.width = 10
	o.boring = true
	out, err := render("one two three four five six", o)
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
}

func TestRenderError(t *testing.T) {
	o := defaultTestOpts()
	_, err := render("{sparkly}x{/sparkly}", o)
	assert.Error(t, err)
}

func TestResolveWidth(t *testing.T) {
	assert.Equal(t, 42, resolveWidth(42))
	// Zero falls through to terminal detection with a sane floor.
	assert.Greater(t, resolveWidth(0), 0)
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("first "), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("second"), 0o644))

	src, err := readInputs([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, "first second", src)

	_, err = readInputs([]string{filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}

func TestNormalizePath(t *testing.T) {
	abs := normalizePath("some/relative/path")
	assert.True(t, filepath.IsAbs(abs))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes.txt"), normalizePath("~/notes.txt"))
}
