// SPDX-License-Identifier: MIT
// Package: former-solver/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the constructor name.
//   • Constructors never panic; option constructors (WithX) do.

package builder

import "errors"

// ErrNeedRandSource indicates a stochastic constructor (Random) ran without
// an RNG in the resolved config. Supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyPattern indicates a striped constructor received no colours.
var ErrEmptyPattern = errors.New("builder: pattern has no colours")

// ErrPatchOutOfBounds indicates a patch does not fit inside the board at the
// requested offset.
var ErrPatchOutOfBounds = errors.New("builder: patch does not fit on board")

// ErrConstructFailed indicates a nil constructor or a board the grid package
// rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
