// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is the class of all shape errors (empty or ragged input).
	ErrInvalidShape = errors.New("grid: invalid grid shape")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrInvalidShape)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidShape)
	// ErrInvalidCell indicates a cell value outside {Wall, Floor}.
	ErrInvalidCell = errors.New("grid: cell value must be 0 or 1")
)
