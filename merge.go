package biom

import (
	"time"

	"github.com/otulab/biom/matrix"
)

// MergeMode selects how an axis's identifier sets are reconciled during a
// merge.
type MergeMode string

const (
	// MergeUnion keeps every identifier from both tables: the receiver's
	// ids in order, then the other table's new ids in their order.
	MergeUnion MergeMode = "union"
	// MergeIntersection keeps only shared identifiers, in the receiver's
	// order.
	MergeIntersection MergeMode = "intersection"
)

// CombineFunc reconciles the two values of one cell during a merge. A value
// is zero when its table lacks the cell's row or column.
type CombineFunc func(self, other float64) float64

// AddValues is the default cell combine policy.
func AddValues(self, other float64) float64 { return self + other }

type mergeOptions struct {
	sampleMode           MergeMode
	observationMode      MergeMode
	combine              CombineFunc
	sampleMDCombine      MetadataCombineFunc
	observationMDCombine MetadataCombineFunc
}

// MergeOption configures a merge.
type MergeOption func(*mergeOptions)

// WithSampleMode sets the sample-axis reconciliation mode.
func WithSampleMode(mode MergeMode) MergeOption {
	return func(o *mergeOptions) { o.sampleMode = mode }
}

// WithObservationMode sets the observation-axis reconciliation mode.
func WithObservationMode(mode MergeMode) MergeOption {
	return func(o *mergeOptions) { o.observationMode = mode }
}

// WithCombine sets the cell combine policy.
func WithCombine(f CombineFunc) MergeOption {
	return func(o *mergeOptions) { o.combine = f }
}

// WithSampleMetadataCombine sets the sample metadata combine policy.
func WithSampleMetadataCombine(f MetadataCombineFunc) MergeOption {
	return func(o *mergeOptions) { o.sampleMDCombine = f }
}

// WithObservationMetadataCombine sets the observation metadata combine
// policy.
func WithObservationMetadataCombine(f MetadataCombineFunc) MergeOption {
	return func(o *mergeOptions) { o.observationMDCombine = f }
}

func applyMergeOptions(optFns []MergeOption) mergeOptions {
	o := mergeOptions{
		sampleMode:           MergeUnion,
		observationMode:      MergeUnion,
		combine:              AddValues,
		sampleMDCombine:      PreferSelf,
		observationMDCombine: PreferSelf,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Merge combines the receiver with another table into a new one. Axis modes
// default to union on both axes, cell values default to addition and metadata
// defaults to preferring the receiver's. The result keeps the receiver's
// backing representation and kind but is always float-typed and carries no
// table id.
//
// Every cell of the result is visited, so merging two large sparse tables
// costs rows × cols regardless of how many cells are nonzero.
func (t *Table) Merge(other *Table, optFns ...MergeOption) (*Table, error) {
	start := time.Now()
	out, err := t.merge(other, applyMergeOptions(optFns))

	observations, samples := 0, 0
	if out != nil {
		observations, samples = out.Shape()
	}
	t.metrics.RecordMerge(time.Since(start), err)
	t.logger.LogMerge(observations, samples, err)
	return out, err
}

func (t *Table) merge(other *Table, o mergeOptions) (*Table, error) {
	sampleIDs, err := mergeIDs(t.sampleIDs, other.sampleIDs, other.sampleIndex, o.sampleMode)
	if err != nil {
		return nil, err
	}
	observationIDs, err := mergeIDs(t.observationIDs, other.observationIDs, other.observationIndex, o.observationMode)
	if err != nil {
		return nil, err
	}
	if len(sampleIDs) == 0 || len(observationIDs) == 0 {
		return nil, ErrEmptyMergeResult
	}

	data := matrix.New(t.data.Type(), len(observationIDs), len(sampleIDs), matrix.ElementFloat)
	for r, obsID := range observationIDs {
		for c, sampID := range sampleIDs {
			v := o.combine(cellValue(t, obsID, sampID), cellValue(other, obsID, sampID))
			if v == 0 {
				continue
			}
			if err := data.Set(r, c, v); err != nil {
				return nil, translateError(err)
			}
		}
	}

	sampleMD := mergeMetadata(sampleIDs, t.sampleLookup(), other.sampleLookup(), o.sampleMDCombine)
	observationMD := mergeMetadata(observationIDs, t.observationLookup(), other.observationLookup(), o.observationMDCombine)

	out, err := construct(data, sampleIDs, observationIDs, sampleMD, observationMD, "", t.kind, t.logger, t.metrics)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mergeIDs(self, other []string, otherIndex map[string]int, mode MergeMode) ([]string, error) {
	switch mode {
	case MergeUnion:
		out := make([]string, 0, len(self)+len(other))
		seen := make(map[string]struct{}, len(self)+len(other))
		for _, id := range self {
			out = append(out, id)
			seen[id] = struct{}{}
		}
		for _, id := range other {
			if _, ok := seen[id]; ok {
				continue
			}
			out = append(out, id)
			seen[id] = struct{}{}
		}
		return out, nil
	case MergeIntersection:
		var out []string
		for _, id := range self {
			if _, ok := otherIndex[id]; ok {
				out = append(out, id)
			}
		}
		return out, nil
	default:
		return nil, ErrInvalidMergeMode
	}
}

// cellValue returns the table's value for the pair, or zero when either id is
// absent from the table.
func cellValue(t *Table, observationID, sampleID string) float64 {
	row, ok := t.observationIndex[observationID]
	if !ok {
		return 0
	}
	col, ok := t.sampleIndex[sampleID]
	if !ok {
		return 0
	}
	v, err := t.data.At(row, col)
	if err != nil {
		return 0
	}
	return v
}

type metadataLookup func(id string) Metadata

func (t *Table) sampleLookup() metadataLookup {
	return func(id string) Metadata {
		if t.sampleMetadata == nil {
			return nil
		}
		col, ok := t.sampleIndex[id]
		if !ok {
			return nil
		}
		return t.sampleMetadata[col]
	}
}

func (t *Table) observationLookup() metadataLookup {
	return func(id string) Metadata {
		if t.observationMetadata == nil {
			return nil
		}
		row, ok := t.observationIndex[id]
		if !ok {
			return nil
		}
		return t.observationMetadata[row]
	}
}

func mergeMetadata(ids []string, self, other metadataLookup, combine MetadataCombineFunc) []Metadata {
	out := make([]Metadata, len(ids))
	any := false
	for i, id := range ids {
		md := combine(self(id), other(id))
		out[i] = md.Clone()
		if md != nil {
			any = true
		}
	}
	if !any {
		return nil
	}
	return out
}
