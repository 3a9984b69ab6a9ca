// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mhusbyn/former-solver/cluster"
	"github.com/mhusbyn/former-solver/grid"
)

// Sentinel errors returned by Solve and Greedy.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrNoSolution indicates no clearing sequence exists within MaxDepth.
	ErrNoSolution = errors.New("solver: no clearing sequence within depth limit")

	// ErrStateLimit indicates the search expanded MaxStates states without
	// finding a clearing sequence.
	ErrStateLimit = errors.New("solver: state limit reached")
)

// DefaultMaxStates caps a search when no WithMaxStates option is given.
const DefaultMaxStates = 1_000_000

// Solution is a clearing sequence.
type Solution struct {
	// Moves are cluster representatives, to be selected in order.
	Moves []grid.Point
	// Expanded counts the states taken from the queue.
	Expanded int
	// Optimal is true when no shorter sequence exists.
	Optimal bool
}

// Options configures the search.
type Options struct {
	// MaxStates bounds the number of expanded states. Must be ≥ 1.
	MaxStates int
	// MaxDepth, if > 0, ignores sequences longer than MaxDepth moves.
	MaxDepth int
	// Logger receives progress and result lines.
	Logger logrus.FieldLogger
	// OnExpand is called with the depth of each expanded state and the
	// current queue length.
	OnExpand func(depth, frontier int)

	selectOpts []cluster.SelectOption
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with DefaultMaxStates, no depth limit,
// a discarding logger and a no-op hook.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		MaxStates: DefaultMaxStates,
		Logger:    l,
		OnExpand:  func(int, int) {},
	}
}

// WithMaxStates sets the expansion budget. Panics if n < 1.
func WithMaxStates(n int) Option {
	if n < 1 {
		panic("solver: WithMaxStates(n<1)")
	}
	return func(o *Options) { o.MaxStates = n }
}

// WithMaxDepth bounds the sequence length; 0 disables the bound.
// Panics if n < 0.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("solver: WithMaxDepth(n<0)")
	}
	return func(o *Options) { o.MaxDepth = n }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithOnExpand installs a hook called for every expanded state.
func WithOnExpand(fn func(depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithColumnCollapse searches under the rule variant where empty columns
// close up after every move (see cluster.WithColumnCollapse).
func WithColumnCollapse() Option {
	return func(o *Options) {
		o.selectOpts = append(o.selectOpts, cluster.WithColumnCollapse())
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
