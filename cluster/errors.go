// SPDX-License-Identifier: MIT

package cluster

import "errors"

// ErrInvalidSelection indicates the selected point is not the representative
// of any cluster on the current grid. Fetch Choices again before retrying.
var ErrInvalidSelection = errors.New("cluster: point is not a cluster representative")
