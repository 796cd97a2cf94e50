package biom

import (
	"fmt"

	"github.com/otulab/biom/internal/natsort"
	"github.com/otulab/biom/matrix"
)

// SortSampleOrder returns a new table with samples rearranged into the given
// order. The order must be a full permutation of the sample ids: a missing or
// unknown id fails with UnknownIdentifierError, a repeated one with
// DuplicateIdentifierError.
func (t *Table) SortSampleOrder(order []string) (*Table, error) {
	if err := t.validateOrder(AxisSample, order, t.sampleIndex); err != nil {
		return nil, err
	}

	vectors := make([][]float64, len(order))
	var md []Metadata
	if t.sampleMetadata != nil {
		md = make([]Metadata, len(order))
	}
	for i, id := range order {
		col := t.sampleIndex[id]
		vec, err := t.data.ColVector(col)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
		if md != nil {
			md[i] = t.sampleMetadata[col].Clone()
		}
	}

	data, err := matrix.FromCols(t.data.Type(), vectors, t.data.ElementType())
	if err != nil {
		return nil, translateError(err)
	}
	return t.derive(data, order, t.observationIDs, md, cloneMetadataSeq(t.observationMetadata))
}

// SortObservationOrder returns a new table with observations rearranged into
// the given order, under the same full-permutation contract as
// SortSampleOrder.
func (t *Table) SortObservationOrder(order []string) (*Table, error) {
	if err := t.validateOrder(AxisObservation, order, t.observationIndex); err != nil {
		return nil, err
	}

	vectors := make([][]float64, len(order))
	var md []Metadata
	if t.observationMetadata != nil {
		md = make([]Metadata, len(order))
	}
	for i, id := range order {
		row := t.observationIndex[id]
		vec, err := t.data.RowVector(row)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
		if md != nil {
			md[i] = t.observationMetadata[row].Clone()
		}
	}

	data, err := matrix.FromRows(t.data.Type(), vectors, t.data.ElementType())
	if err != nil {
		return nil, translateError(err)
	}
	return t.derive(data, t.sampleIDs, order, cloneMetadataSeq(t.sampleMetadata), md)
}

// SortBySampleID returns a new table with samples in natural order: digit
// runs compare numerically, so "S2" sorts before "S10".
func (t *Table) SortBySampleID() (*Table, error) {
	order := t.SampleIDs()
	natsort.Sort(order)
	return t.SortSampleOrder(order)
}

// SortByObservationID returns a new table with observations in natural order.
func (t *Table) SortByObservationID() (*Table, error) {
	order := t.ObservationIDs()
	natsort.Sort(order)
	return t.SortObservationOrder(order)
}

func (t *Table) validateOrder(axis Axis, order []string, index map[string]int) error {
	if len(order) != len(index) {
		return fmt.Errorf("%w: order has %d ids, %s axis has %d", ErrShapeMismatch, len(order), axis, len(index))
	}
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, ok := index[id]; !ok {
			return &UnknownIdentifierError{Axis: axis, ID: id}
		}
		if _, dup := seen[id]; dup {
			return &DuplicateIdentifierError{Axis: axis, ID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}
