package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the matrix shape.
	ErrOutOfBounds = errors.New("matrix: coordinate out of bounds")

	// ErrUnsupportedSlice is returned for partial-slice access. Only full-axis
	// slices (a whole row or a whole column) are supported.
	ErrUnsupportedSlice = errors.New("matrix: only full-axis slices are supported")

	// ErrShapeMismatch is returned when input dimensions disagree, e.g. rows of
	// differing lengths passed to FromRows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)

// OutOfBoundsError reports the offending coordinate and the shape it violated.
//
// It satisfies errors.Is(err, ErrOutOfBounds).
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("matrix: coordinate (%d, %d) out of bounds for shape (%d, %d)", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

func boundsCheck(row, col, rows, cols int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return &OutOfBoundsError{Row: row, Col: col, Rows: rows, Cols: cols}
	}
	return nil
}
