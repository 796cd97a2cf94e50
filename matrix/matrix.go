// Package matrix provides the 2-D numeric backings used by biom tables.
//
// Two implementations share one contract: Sparse, a fixed-shape coordinate
// map with dual row/column roaring-bitmap indices for fast axis extraction,
// and Dense, a contiguous row-major buffer. Callers select a backing via its
// constructor and afterwards program against the Matrix interface; the
// Type tag reports which representation is behind it.
package matrix

import "math"

// Type identifies the backing representation of a Matrix.
type Type string

const (
	// TypeSparse is the coordinate-map backing.
	TypeSparse Type = "sparse"
	// TypeDense is the contiguous row-major backing.
	TypeDense Type = "dense"
)

// ElementType is the declared element type of a Matrix. The value is the
// literal string used by the interchange format.
type ElementType string

const (
	// ElementInt declares integer elements. Writes are truncated toward zero.
	ElementInt ElementType = "int"
	// ElementFloat declares floating point elements. Writes are stored as-is.
	ElementFloat ElementType = "float"
	// ElementString is recognized by the interchange format but cannot back a
	// matrix; decoding a payload declaring it fails.
	ElementString ElementType = "str"
)

// cast applies the declared element cast on write. No enforcement happens
// beyond this cast.
func (et ElementType) cast(v float64) float64 {
	if et == ElementInt {
		return math.Trunc(v)
	}
	return v
}

// Entry is a single (coordinate, value) pair for bulk updates.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// Matrix is the shared contract over sparse and dense backings.
//
// The shape is fixed at construction. A zero value means "absent": reading a
// coordinate that was never written returns 0, and writing 0 erases any
// stored entry. Implementations are not safe for concurrent mutation.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Type reports the backing representation.
	Type() Type

	// ElementType reports the declared element type.
	ElementType() ElementType

	// At returns the value at (row, col), or the zero element if none is
	// stored. Fails with ErrOutOfBounds for invalid coordinates.
	At(row, col int) (float64, error)

	// Set stores value at (row, col), applying the declared element cast.
	// Storing zero deletes the entry if present and is otherwise a no-op.
	// Fails with ErrOutOfBounds for invalid coordinates.
	Set(row, col int, value float64) error

	// BulkUpdate applies many entries with the same semantics as Set. It is
	// not atomic: a bounds failure partway through leaves prior updates
	// applied.
	BulkUpdate(entries []Entry) error

	// Row returns row as a fresh 1×cols matrix of the same backing type.
	Row(row int) (Matrix, error)

	// Col returns col as a fresh rows×1 matrix of the same backing type.
	Col(col int) (Matrix, error)

	// Slice addresses a rectangular region. Only full-axis slices are
	// supported: (row..row+1, all columns) and (all rows, col..col+1);
	// anything else fails with ErrUnsupportedSlice.
	Slice(rowStart, rowEnd, colStart, colEnd int) (Matrix, error)

	// RowVector materializes row as a dense vector of length Cols.
	RowVector(row int) ([]float64, error)

	// ColVector materializes col as a dense vector of length Rows.
	ColVector(col int) ([]float64, error)

	// Transpose returns a new matrix with the shape reversed and every
	// coordinate pair swapped.
	Transpose() Matrix

	// Clone returns a structurally independent deep copy.
	Clone() Matrix

	// Nonzeros returns the number of stored nonzero entries.
	Nonzeros() int
}

// New returns an empty matrix of the given backing type and shape.
func New(typ Type, rows, cols int, elem ElementType) Matrix {
	if typ == TypeDense {
		return NewDense(rows, cols, elem)
	}
	return NewSparse(rows, cols, elem)
}

// Equal reports whether two matrices hold the same values at every
// coordinate. Representation and declared element type do not participate:
// a sparse and a dense matrix with identical values compare equal.
func Equal(a, b Matrix) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if sa, ok := a.(*Sparse); ok {
		if sb, ok := b.(*Sparse); ok {
			return sa.equalSparse(sb)
		}
	}
	for r := 0; r < a.Rows(); r++ {
		av, err := a.RowVector(r)
		if err != nil {
			return false
		}
		bv, err := b.RowVector(r)
		if err != nil {
			return false
		}
		for c := range av {
			if av[c] != bv[c] {
				return false
			}
		}
	}
	return true
}

// sliceMode classifies a Slice request against a shape. It returns the
// single row or column addressed, or an error for partial slices.
func sliceMode(rowStart, rowEnd, colStart, colEnd, rows, cols int) (row, col int, err error) {
	fullRows := rowStart == 0 && rowEnd == rows
	fullCols := colStart == 0 && colEnd == cols

	switch {
	case fullCols && rowEnd == rowStart+1:
		return rowStart, -1, nil
	case fullRows && colEnd == colStart+1:
		return -1, colStart, nil
	default:
		return 0, 0, ErrUnsupportedSlice
	}
}
