package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/restyle"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/restyle")
}

func main() {
	var (
		themeName   string
		widthFlag   int
		listThemes  bool
		outPath     string
		stripTags   bool
		stripANSI   bool
		expandOnly  bool
		boring      bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("restyle", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&stripTags, "strip", "s", false, "Strip markup tags instead of rendering")
	flags.BoolVar(&stripANSI, "strip-ansi", false, "Strip ANSI escape sequences from the input first")
	flags.BoolVarP(&expandOnly, "expand", "e", false, "Expand markup without wrapping")
	flags.BoolVarP(&boring, "boring", "b", false, "Render without ANSI styling")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: restyle [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes()
		return
	}

	theme, ok := restyle.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}

	src, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	out, err := render(src, renderOpts{
		width:     resolveWidth(widthFlag),
		theme:     theme,
		strip:     stripTags,
		stripANSI: stripANSI,
		expand:    expandOnly,
		boring:    boring || termenv.EnvNoColor(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(writer, out); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
}

type renderOpts struct {
	width     int
	theme     restyle.Theme
	strip     bool
	stripANSI bool
	expand    bool
	boring    bool
}

func render(src string, o renderOpts) (string, error) {
	if o.stripANSI {
		src = restyle.RemoveANSI(src)
	}
	if o.strip {
		return restyle.RemoveMarkup(src), nil
	}
	var out string
	var err error
	if o.expand {
		out, err = restyle.Expand(src, restyle.WithTheme(o.theme))
	} else {
		out, err = restyle.Reshape(src, o.width, restyle.WithTheme(o.theme))
	}
	if err != nil {
		return "", err
	}
	if o.boring {
		out = restyle.RemoveANSI(out)
	}
	return out, nil
}

func printThemes() {
	for _, name := range restyle.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func readInputs(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return "", err
		}
		b.Write(data)
	}
	return b.String(), nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
