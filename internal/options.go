package internal

import "github.com/joeycumines/logiface"

// Logger receives development diagnostics. A nil *Logger discards everything.
type Logger = logiface.Logger[logiface.Event]

type Option func(c *config)

type config struct {
	log *Logger

	maxNestedUpdates int
}

const defaultMaxNestedUpdates = 50

func newConfig(options ...Option) config {
	c := config{
		maxNestedUpdates: defaultMaxNestedUpdates,
	}
	for _, o := range options {
		o(&c)
	}
	return c
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(log *Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMaxNestedUpdates bounds how many times a root re-renders because of
// updates scheduled while it was rendering.
func WithMaxNestedUpdates(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxNestedUpdates = n
		}
	}
}
