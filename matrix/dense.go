package matrix

// Dense is a contiguous row-major float64 buffer behind the Matrix contract.
// It behaves identically to Sparse under the shared interface: zero is the
// absent element, the shape is fixed, and the declared element cast is
// applied on every write.
type Dense struct {
	rows int
	cols int
	elem ElementType
	data []float64 // row-major, len == rows*cols
}

// NewDense returns a zero-initialized dense matrix with the given shape.
func NewDense(rows, cols int, elem ElementType) *Dense {
	return &Dense{
		rows: rows,
		cols: cols,
		elem: elem,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Type reports TypeDense.
func (d *Dense) Type() Type { return TypeDense }

// ElementType reports the declared element type.
func (d *Dense) ElementType() ElementType { return d.elem }

// Nonzeros counts the nonzero cells. O(rows*cols).
func (d *Dense) Nonzeros() int {
	n := 0
	for _, v := range d.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Set stores value at (row, col) after applying the declared element cast.
func (d *Dense) Set(row, col int, value float64) error {
	if err := boundsCheck(row, col, d.rows, d.cols); err != nil {
		return err
	}
	d.data[row*d.cols+col] = d.elem.cast(value)
	return nil
}

// At returns the value at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	if err := boundsCheck(row, col, d.rows, d.cols); err != nil {
		return 0, err
	}
	return d.data[row*d.cols+col], nil
}

// BulkUpdate applies entries in order with Set semantics. Not atomic: a
// bounds failure partway through leaves prior updates applied.
func (d *Dense) BulkUpdate(entries []Entry) error {
	for _, e := range entries {
		if err := d.Set(e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Row returns row as a fresh 1×cols dense matrix.
func (d *Dense) Row(row int) (Matrix, error) {
	if row < 0 || row >= d.rows {
		return nil, &OutOfBoundsError{Row: row, Col: 0, Rows: d.rows, Cols: d.cols}
	}
	out := NewDense(1, d.cols, d.elem)
	copy(out.data, d.data[row*d.cols:(row+1)*d.cols])
	return out, nil
}

// Col returns col as a fresh rows×1 dense matrix.
func (d *Dense) Col(col int) (Matrix, error) {
	if col < 0 || col >= d.cols {
		return nil, &OutOfBoundsError{Row: 0, Col: col, Rows: d.rows, Cols: d.cols}
	}
	out := NewDense(d.rows, 1, d.elem)
	for row := 0; row < d.rows; row++ {
		out.data[row] = d.data[row*d.cols+col]
	}
	return out, nil
}

// Slice supports full-axis addressing only; see Matrix.Slice.
func (d *Dense) Slice(rowStart, rowEnd, colStart, colEnd int) (Matrix, error) {
	row, col, err := sliceMode(rowStart, rowEnd, colStart, colEnd, d.rows, d.cols)
	if err != nil {
		return nil, err
	}
	if col < 0 {
		return d.Row(row)
	}
	return d.Col(col)
}

// RowVector materializes row as an independent dense vector.
func (d *Dense) RowVector(row int) ([]float64, error) {
	if row < 0 || row >= d.rows {
		return nil, &OutOfBoundsError{Row: row, Col: 0, Rows: d.rows, Cols: d.cols}
	}
	vec := make([]float64, d.cols)
	copy(vec, d.data[row*d.cols:(row+1)*d.cols])
	return vec, nil
}

// ColVector materializes col as an independent dense vector.
func (d *Dense) ColVector(col int) ([]float64, error) {
	if col < 0 || col >= d.cols {
		return nil, &OutOfBoundsError{Row: 0, Col: col, Rows: d.rows, Cols: d.cols}
	}
	vec := make([]float64, d.rows)
	for row := 0; row < d.rows; row++ {
		vec[row] = d.data[row*d.cols+col]
	}
	return vec, nil
}

// Transpose returns a new dense matrix with the shape reversed.
func (d *Dense) Transpose() Matrix {
	out := NewDense(d.cols, d.rows, d.elem)
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			out.data[col*d.rows+row] = d.data[row*d.cols+col]
		}
	}
	return out
}

// Clone returns a structurally independent deep copy.
func (d *Dense) Clone() Matrix {
	out := NewDense(d.rows, d.cols, d.elem)
	copy(out.data, d.data)
	return out
}
