package internal

// Option is a functional option for configuring a run.
type Option func(*application)

type application struct {
	config    *Config
	checkOnly bool
	watch     bool
}

// WithConfig sets the run configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithCheckOnly validates the sources without writing the catalog.
func WithCheckOnly(enabled bool) Option {
	return func(a *application) {
		a.checkOnly = enabled
	}
}

// WithWatch keeps the process alive and rebuilds on source changes.
func WithWatch(enabled bool) Option {
	return func(a *application) {
		a.watch = enabled
	}
}
