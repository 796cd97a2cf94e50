package biom

import (
	"iter"

	"github.com/otulab/biom/matrix"
)

// AxisEntry is one position on a table axis: its materialized dense vector,
// its identifier and its metadata (nil when the position carries none).
type AxisEntry struct {
	ID       string
	Vector   []float64
	Metadata Metadata
}

// Samples returns a lazy sequence of per-sample entries in sample order.
// Each call yields a fresh traversal; vectors are materialized on demand, so
// sparse backings pay only for the columns actually visited.
func (t *Table) Samples() iter.Seq[AxisEntry] {
	return func(yield func(AxisEntry) bool) {
		for col, id := range t.sampleIDs {
			vec, err := t.data.ColVector(col)
			if err != nil {
				return
			}
			var md Metadata
			if t.sampleMetadata != nil {
				md = t.sampleMetadata[col]
			}
			if !yield(AxisEntry{ID: id, Vector: vec, Metadata: md}) {
				return
			}
		}
	}
}

// Observations returns a lazy sequence of per-observation entries in
// observation order, with the same traversal semantics as Samples.
func (t *Table) Observations() iter.Seq[AxisEntry] {
	return func(yield func(AxisEntry) bool) {
		for row, id := range t.observationIDs {
			vec, err := t.data.RowVector(row)
			if err != nil {
				return
			}
			var md Metadata
			if t.observationMetadata != nil {
				md = t.observationMetadata[row]
			}
			if !yield(AxisEntry{ID: id, Vector: vec, Metadata: md}) {
				return
			}
		}
	}
}

// Nonzero returns a lazy sequence of (observation id, sample id) pairs for
// every nonzero cell, in observation-then-sample order. Sparse backings walk
// only their stored entries; dense backings scan every observation vector.
func (t *Table) Nonzero() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s, ok := t.data.(*matrix.Sparse); ok {
			s.ForEach(func(row, col int, _ float64) bool {
				return yield(t.observationIDs[row], t.sampleIDs[col])
			})
			return
		}
		for row, id := range t.observationIDs {
			vec, err := t.data.RowVector(row)
			if err != nil {
				return
			}
			for col, v := range vec {
				if v == 0 {
					continue
				}
				if !yield(id, t.sampleIDs[col]) {
					return
				}
			}
		}
	}
}
