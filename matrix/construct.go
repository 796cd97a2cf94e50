package matrix

import "fmt"

// FromRows builds a matrix of the given backing type from per-row vectors.
// All vectors must share one length; a ragged input fails with
// ErrShapeMismatch.
func FromRows(typ Type, vectors [][]float64, elem ElementType) (Matrix, error) {
	rows := len(vectors)
	cols := 0
	if rows > 0 {
		cols = len(vectors[0])
	}

	out := New(typ, rows, cols, elem)
	for r, vec := range vectors {
		if len(vec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, r, len(vec), cols)
		}
		for c, v := range vec {
			if v == 0 {
				continue
			}
			if err := out.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// FromCols builds a matrix of the given backing type from per-column
// vectors, i.e. the transpose of FromRows.
func FromCols(typ Type, vectors [][]float64, elem ElementType) (Matrix, error) {
	cols := len(vectors)
	rows := 0
	if cols > 0 {
		rows = len(vectors[0])
	}

	out := New(typ, rows, cols, elem)
	for c, vec := range vectors {
		if len(vec) != rows {
			return nil, fmt.Errorf("%w: column %d has %d values, want %d", ErrShapeMismatch, c, len(vec), rows)
		}
		for r, v := range vec {
			if v == 0 {
				continue
			}
			if err := out.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// FromTriples builds a matrix of the given backing type and shape from
// coordinate triples. Triples outside the shape fail with ErrOutOfBounds;
// zero-valued triples are dropped.
func FromTriples(typ Type, rows, cols int, entries []Entry, elem ElementType) (Matrix, error) {
	out := New(typ, rows, cols, elem)
	if err := out.BulkUpdate(entries); err != nil {
		return nil, err
	}
	return out, nil
}

// FromMap builds a matrix of the given backing type and shape from a
// coordinate-keyed value map. Keys are [row, col] pairs; keys outside the
// shape fail with ErrOutOfBounds and zero values are dropped.
func FromMap(typ Type, rows, cols int, values map[[2]int]float64, elem ElementType) (Matrix, error) {
	out := New(typ, rows, cols, elem)
	for key, v := range values {
		if v == 0 {
			continue
		}
		if err := out.Set(key[0], key[1], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
