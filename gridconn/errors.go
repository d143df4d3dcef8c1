// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridconn

import "errors"

var (
	// ErrInvalidConfig reports an invalid strategy, grid or mesh level
	// selection. It is returned before any geometry is computed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDegenerateGeometry reports a grid point for which no containing mesh
	// face could be found.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
