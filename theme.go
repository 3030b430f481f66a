package restyle

import (
	"sort"
	"strings"
)

// Roles maps thematic roles to color specs understood by the resolver:
// palette names, 256-color indexes, #rrggbb hex, or (r,g,b) tuples. An
// empty spec leaves the role unbound, in which case the role name is not a
// valid tag under that theme.
type Roles struct {
	Title    string
	Subtitle string
	Accent   string
	Muted    string
	Success  string
	Warning  string
	Error    string
	Info     string
}

// Theme provides named role colors for markup resolution.
type Theme interface {
	Name() string
	Roles() Roles
}

type theme struct {
	name  string
	roles Roles
}

func (t theme) Name() string { return t.name }
func (t theme) Roles() Roles { return t.roles }

// NewTheme returns a Theme from a Roles definition.
func NewTheme(name string, roles Roles) Theme {
	return theme{name: name, roles: roles}
}

func roleSpec(r Roles, name string) (string, bool) {
	var spec string
	switch name {
	case "title":
		spec = r.Title
	case "subtitle":
		spec = r.Subtitle
	case "accent":
		spec = r.Accent
	case "muted":
		spec = r.Muted
	case "success":
		spec = r.Success
	case "warning":
		spec = r.Warning
	case "error":
		spec = r.Error
	case "info":
		spec = r.Info
	}
	if spec == "" {
		return "", false
	}
	return spec, true
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", roles: Roles{
		Title:    "bright_white",
		Subtitle: "white",
		Accent:   "cyan",
		Muted:    "gray",
		Success:  "green",
		Warning:  "yellow",
		Error:    "red",
		Info:     "blue",
	}},
	"dracula": theme{name: "dracula", roles: Roles{
		Title:    "#f8f8f2",
		Subtitle: "#6272a4",
		Accent:   "#bd93f9",
		Muted:    "#6272a4",
		Success:  "#50fa7b",
		Warning:  "#f1fa8c",
		Error:    "#ff5555",
		Info:     "#8be9fd",
	}},
	"gruvbox": theme{name: "gruvbox", roles: Roles{
		Title:    "#ebdbb2",
		Subtitle: "#a89984",
		Accent:   "#d3869b",
		Muted:    "#928374",
		Success:  "#b8bb26",
		Warning:  "#fabd2f",
		Error:    "#fb4934",
		Info:     "#83a598",
	}},
	"nord": theme{name: "nord", roles: Roles{
		Title:    "#eceff4",
		Subtitle: "#d8dee9",
		Accent:   "#88c0d0",
		Muted:    "#4c566a",
		Success:  "#a3be8c",
		Warning:  "#ebcb8b",
		Error:    "#bf616a",
		Info:     "#81a1c1",
	}},
	"solarized-dark": theme{name: "solarized-dark", roles: Roles{
		Title:    "#93a1a1",
		Subtitle: "#586e75",
		Accent:   "#6c71c4",
		Muted:    "#586e75",
		Success:  "#859900",
		Warning:  "#b58900",
		Error:    "#dc322f",
		Info:     "#268bd2",
	}},
	"github-dark": theme{name: "github-dark", roles: Roles{
		Title:    "#e6edf3",
		Subtitle: "#8b949e",
		Accent:   "#d2a8ff",
		Muted:    "#8b949e",
		Success:  "#3fb950",
		Warning:  "#d29922",
		Error:    "#f85149",
		Info:     "#58a6ff",
	}},
	"ansi16": theme{name: "ansi16", roles: Roles{
		Title:    "bright_white",
		Subtitle: "bright_black",
		Accent:   "magenta",
		Muted:    "bright_black",
		Success:  "bright_green",
		Warning:  "bright_yellow",
		Error:    "bright_red",
		Info:     "bright_cyan",
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
