package matrix

import (
	"github.com/RoaringBitmap/roaring/v2"
)

type coord struct {
	row int
	col int
}

// Sparse is a fixed-shape sparse matrix backed by a coordinate map with dual
// row/column indices. The indices hold, per row, the set of occupied column
// positions and, per column, the set of occupied row positions; they are
// maintained incrementally on every insert and delete so that extracting a
// row or column costs O(nonzeros on that axis) instead of a full scan.
//
// Zero is never stored: writing zero removes the entry from the map and both
// indices.
type Sparse struct {
	rows int
	cols int
	elem ElementType

	values   map[coord]float64
	rowIndex []*roaring.Bitmap // occupied column positions per row
	colIndex []*roaring.Bitmap // occupied row positions per column
}

// NewSparse returns an empty sparse matrix with the given fixed shape.
func NewSparse(rows, cols int, elem ElementType) *Sparse {
	ri := make([]*roaring.Bitmap, rows)
	for i := range ri {
		ri[i] = roaring.New()
	}
	ci := make([]*roaring.Bitmap, cols)
	for i := range ci {
		ci[i] = roaring.New()
	}
	return &Sparse{
		rows:     rows,
		cols:     cols,
		elem:     elem,
		values:   make(map[coord]float64),
		rowIndex: ri,
		colIndex: ci,
	}
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// Type reports TypeSparse.
func (s *Sparse) Type() Type { return TypeSparse }

// ElementType reports the declared element type.
func (s *Sparse) ElementType() ElementType { return s.elem }

// Nonzeros returns the number of stored entries.
func (s *Sparse) Nonzeros() int { return len(s.values) }

// Set stores value at (row, col). The declared element cast is applied first;
// a resulting zero deletes the entry if present and is otherwise a no-op.
func (s *Sparse) Set(row, col int, value float64) error {
	if err := boundsCheck(row, col, s.rows, s.cols); err != nil {
		return err
	}

	value = s.elem.cast(value)
	key := coord{row, col}

	if value == 0 {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			s.rowIndex[row].Remove(uint32(col))
			s.colIndex[col].Remove(uint32(row))
		}
		return nil
	}

	s.values[key] = value
	s.rowIndex[row].Add(uint32(col))
	s.colIndex[col].Add(uint32(row))
	return nil
}

// At returns the stored value at (row, col), or the zero element if absent.
func (s *Sparse) At(row, col int) (float64, error) {
	if err := boundsCheck(row, col, s.rows, s.cols); err != nil {
		return 0, err
	}
	return s.values[coord{row, col}], nil
}

// BulkUpdate applies entries in order with Set semantics. Not atomic: a
// bounds failure partway through leaves prior updates applied.
func (s *Sparse) BulkUpdate(entries []Entry) error {
	for _, e := range entries {
		if err := s.Set(e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Row builds a fresh 1×cols sparse matrix by copying only the entries
// indexed under row. O(nonzeros in that row).
func (s *Sparse) Row(row int) (Matrix, error) {
	if row < 0 || row >= s.rows {
		return nil, &OutOfBoundsError{Row: row, Col: 0, Rows: s.rows, Cols: s.cols}
	}

	out := NewSparse(1, s.cols, s.elem)
	it := s.rowIndex[row].Iterator()
	for it.HasNext() {
		col := int(it.Next())
		v := s.values[coord{row, col}]
		out.values[coord{0, col}] = v
		out.rowIndex[0].Add(uint32(col))
		out.colIndex[col].Add(0)
	}
	return out, nil
}

// Col builds a fresh rows×1 sparse matrix by copying only the entries
// indexed under col. O(nonzeros in that column).
func (s *Sparse) Col(col int) (Matrix, error) {
	if col < 0 || col >= s.cols {
		return nil, &OutOfBoundsError{Row: 0, Col: col, Rows: s.rows, Cols: s.cols}
	}

	out := NewSparse(s.rows, 1, s.elem)
	it := s.colIndex[col].Iterator()
	for it.HasNext() {
		row := int(it.Next())
		v := s.values[coord{row, col}]
		out.values[coord{row, 0}] = v
		out.rowIndex[row].Add(0)
		out.colIndex[0].Add(uint32(row))
	}
	return out, nil
}

// Slice supports full-axis addressing only; see Matrix.Slice.
func (s *Sparse) Slice(rowStart, rowEnd, colStart, colEnd int) (Matrix, error) {
	row, col, err := sliceMode(rowStart, rowEnd, colStart, colEnd, s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	if col < 0 {
		return s.Row(row)
	}
	return s.Col(col)
}

// RowVector materializes row as a dense vector of length Cols.
func (s *Sparse) RowVector(row int) ([]float64, error) {
	if row < 0 || row >= s.rows {
		return nil, &OutOfBoundsError{Row: row, Col: 0, Rows: s.rows, Cols: s.cols}
	}
	vec := make([]float64, s.cols)
	it := s.rowIndex[row].Iterator()
	for it.HasNext() {
		col := int(it.Next())
		vec[col] = s.values[coord{row, col}]
	}
	return vec, nil
}

// ColVector materializes col as a dense vector of length Rows.
func (s *Sparse) ColVector(col int) ([]float64, error) {
	if col < 0 || col >= s.cols {
		return nil, &OutOfBoundsError{Row: 0, Col: col, Rows: s.rows, Cols: s.cols}
	}
	vec := make([]float64, s.rows)
	it := s.colIndex[col].Iterator()
	for it.HasNext() {
		row := int(it.Next())
		vec[row] = s.values[coord{row, col}]
	}
	return vec, nil
}

// Transpose returns a new sparse matrix with the shape reversed and every
// coordinate pair swapped. Indices are rebuilt to match.
func (s *Sparse) Transpose() Matrix {
	out := NewSparse(s.cols, s.rows, s.elem)
	for key, v := range s.values {
		out.values[coord{key.col, key.row}] = v
		out.rowIndex[key.col].Add(uint32(key.row))
		out.colIndex[key.row].Add(uint32(key.col))
	}
	return out
}

// Clone returns a structurally independent deep copy.
func (s *Sparse) Clone() Matrix {
	out := NewSparse(s.rows, s.cols, s.elem)
	for key, v := range s.values {
		out.values[key] = v
	}
	for i, b := range s.rowIndex {
		out.rowIndex[i] = b.Clone()
	}
	for i, b := range s.colIndex {
		out.colIndex[i] = b.Clone()
	}
	return out
}

// ForEach calls fn for every stored entry in observation-then-sample order
// (row-major over nonzeros). Iteration stops early if fn returns false.
func (s *Sparse) ForEach(fn func(row, col int, value float64) bool) {
	for row := 0; row < s.rows; row++ {
		it := s.rowIndex[row].Iterator()
		for it.HasNext() {
			col := int(it.Next())
			if !fn(row, col, s.values[coord{row, col}]) {
				return
			}
		}
	}
}

func (s *Sparse) equalSparse(other *Sparse) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for key, v := range s.values {
		if ov, ok := other.values[key]; !ok || ov != v {
			return false
		}
	}
	return true
}
