package restyle

// Option configures Reshape and Expand behavior.
type Option func(*config)

type config struct {
	theme          Theme
	denseThreshold int
}

// defaultDenseRunThreshold is the grapheme count at which a run with no
// whitespace stops being treated as one unbreakable word and wraps glyph
// by glyph. Long enough that ordinary words and identifiers stay whole.
const defaultDenseRunThreshold = 24

func newConfig(opts ...Option) config {
	cfg := config{denseThreshold: defaultDenseRunThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTheme sets the theme consulted when resolving role tags such as
// {error} or {title}. Without a theme, role tags are unknown tags.
func WithTheme(t Theme) Option {
	return func(cfg *config) {
		cfg.theme = t
	}
}

// WithDenseRunThreshold overrides the dense-run segmentation threshold.
// Values below 1 keep the default.
func WithDenseRunThreshold(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.denseThreshold = n
		}
	}
}
