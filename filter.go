package biom

import (
	"time"

	"github.com/otulab/biom/matrix"
)

// AxisPredicate decides whether one axis entry survives a filter.
type AxisPredicate func(entry AxisEntry) bool

// FilterSamples returns a new table containing only the samples keep admits.
// With invert set, the kept set is complemented instead. Removing every
// sample fails with ErrEmptyResult; the receiver is never mutated.
func (t *Table) FilterSamples(keep AxisPredicate, invert bool) (*Table, error) {
	start := time.Now()
	out, err := t.filterAxis(AxisSample, keep, invert)

	kept := 0
	if out != nil {
		_, kept = out.Shape()
	}
	t.metrics.RecordFilter(AxisSample, kept, time.Since(start), err)
	t.logger.LogFilter(AxisSample, len(t.sampleIDs), kept, err)
	return out, err
}

// FilterObservations returns a new table containing only the observations
// keep admits, with the same invert and empty-result semantics as
// FilterSamples.
func (t *Table) FilterObservations(keep AxisPredicate, invert bool) (*Table, error) {
	start := time.Now()
	out, err := t.filterAxis(AxisObservation, keep, invert)

	kept := 0
	if out != nil {
		kept, _ = out.Shape()
	}
	t.metrics.RecordFilter(AxisObservation, kept, time.Since(start), err)
	t.logger.LogFilter(AxisObservation, len(t.observationIDs), kept, err)
	return out, err
}

func (t *Table) filterAxis(axis Axis, keep AxisPredicate, invert bool) (*Table, error) {
	entries := t.Samples()
	if axis == AxisObservation {
		entries = t.Observations()
	}

	var (
		ids     []string
		vectors [][]float64
		md      []Metadata
		anyMD   bool
	)
	for entry := range entries {
		if keep(entry) == invert {
			continue
		}
		ids = append(ids, entry.ID)
		vectors = append(vectors, entry.Vector)
		md = append(md, entry.Metadata.Clone())
		if entry.Metadata != nil {
			anyMD = true
		}
	}
	if len(ids) == 0 {
		return nil, ErrEmptyResult
	}
	if !anyMD {
		md = nil
	}

	if axis == AxisSample {
		data, err := matrix.FromCols(t.data.Type(), vectors, t.data.ElementType())
		if err != nil {
			return nil, translateError(err)
		}
		return t.derive(data, ids, t.observationIDs, md, cloneMetadataSeq(t.observationMetadata))
	}

	data, err := matrix.FromRows(t.data.Type(), vectors, t.data.ElementType())
	if err != nil {
		return nil, translateError(err)
	}
	return t.derive(data, t.sampleIDs, ids, cloneMetadataSeq(t.sampleMetadata), md)
}
