// SPDX-License-Identifier: MIT

package builder

// Constructor names, used to prefix errors.
const (
	methodBuild   = "Build"
	methodRows    = "Rows"
	methodColumns = "Columns"
	methodPatch   = "Patch"
	methodRandom  = "Random"
)
