// SPDX-License-Identifier: MIT

// Package builder provides "functional-options"-style constructors for
// puzzle boards: uniform fills, striped rows and columns, overlaid patches
// and random boards. Constructors compose: Build applies them in order to
// one working matrix, so a Patch can be stamped on top of a Uniform fill.
//
// Key components:
//
//   - Constructor: a function that paints a working matrix under a resolved
//     builderConfig.
//   - BuilderOption: mutates builderConfig before construction
//     (WithSize, WithSeed, WithRand, WithPalette).
//   - Constructors: Uniform, Rows, Columns, Patch, Random.
//
// Guarantees:
//
//   - Deterministic defaults: DefaultHeight×DefaultWidth board, the standard
//     palette, no RNG unless seeded.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with the constructor name and never panic.
//
// Complexity: every constructor is O(H×W) time; Build adds O(H×W) memory.
package builder
