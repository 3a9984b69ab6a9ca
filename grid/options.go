// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Option customizes grid construction.
type Option func(*config)

// config holds construction knobs. Zero height/width means "any size".
type config struct {
	height int
	width  int
}

// WithSize requires the input to be exactly height×width.
// Panics if either dimension is < 1.
func WithSize(height, width int) Option {
	if height < 1 || width < 1 {
		panic("grid: WithSize(height<1 || width<1)")
	}
	return func(c *config) {
		c.height, c.width = height, width
	}
}

// WithDefaultSize requires the standard DefaultHeight×DefaultWidth board.
func WithDefaultSize() Option {
	return WithSize(DefaultHeight, DefaultWidth)
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// check validates a height×width shape against the configured size.
func (c config) check(method string, height, width int) error {
	if c.height == 0 {
		return nil
	}
	if height != c.height || width != c.width {
		return fmt.Errorf("%s: got %dx%d, want %dx%d: %w",
			method, height, width, c.height, c.width, ErrSizeMismatch)
	}
	return nil
}
