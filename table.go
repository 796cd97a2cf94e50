package biom

import (
	"slices"
	"time"

	"github.com/otulab/biom/matrix"
)

// Kind tags what a table's observations represent. It is orthogonal to the
// backing representation: any kind may be sparse or dense.
type Kind string

const (
	// KindOTU marks an OTU table.
	KindOTU Kind = "OTU table"
	// KindAbundance marks an abundance table.
	KindAbundance Kind = "Abundance table"
)

// Table is an observations × samples count matrix with string identifiers
// and optional per-position metadata on each axis.
//
// A Table is immutable in its axis identifiers and backing shape after
// construction. Cell values may be overwritten in place via SetValueAt, and
// metadata may be augmented additively; every axis-level change (filter,
// transform, sort, bin, merge) produces a new Table and never mutates the
// receiver. Tables are not safe for concurrent mutation; use Copy to hand a
// structurally independent value to another goroutine.
type Table struct {
	data matrix.Matrix

	sampleIDs      []string
	observationIDs []string

	sampleMetadata      []Metadata
	observationMetadata []Metadata

	tableID string
	kind    Kind

	// Derived identifier→position caches, rebuilt by every constructor and
	// reorder path. Never shared across instances.
	sampleIndex      map[string]int
	observationIndex map[string]int

	logger  *Logger
	metrics MetricsCollector
}

// New constructs a Table over the given backing. The matrix shape must match
// the identifier counts (rows = observations, cols = samples), identifiers
// must be unique within their axis, and any metadata sequence must match its
// axis length.
func New(data matrix.Matrix, sampleIDs, observationIDs []string, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	start := time.Now()
	t, err := construct(data, sampleIDs, observationIDs, o.sampleMetadata, o.observationMetadata, o.tableID, o.kind, o.logger, o.metrics)
	o.metrics.RecordConstruct(time.Since(start), err)
	o.logger.LogConstruct(len(observationIDs), len(sampleIDs), err)
	return t, err
}

// construct runs full validation and index building. Every operation that
// produces a new Table funnels through here so the invariants cannot drift.
func construct(data matrix.Matrix, sampleIDs, observationIDs []string, sampleMD, observationMD []Metadata, tableID string, kind Kind, logger *Logger, metrics MetricsCollector) (*Table, error) {
	if logger == nil {
		logger = NoopLogger()
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	if data.Rows() != len(observationIDs) {
		return nil, &shapeError{axis: AxisObservation, matrixLen: data.Rows(), idLen: len(observationIDs)}
	}
	if data.Cols() != len(sampleIDs) {
		return nil, &shapeError{axis: AxisSample, matrixLen: data.Cols(), idLen: len(sampleIDs)}
	}

	if id, ok := firstDuplicate(observationIDs); ok {
		return nil, &DuplicateIdentifierError{Axis: AxisObservation, ID: id}
	}
	if id, ok := firstDuplicate(sampleIDs); ok {
		return nil, &DuplicateIdentifierError{Axis: AxisSample, ID: id}
	}

	sampleMD, err := normalizeMetadata(sampleMD, len(sampleIDs), AxisSample)
	if err != nil {
		return nil, err
	}
	observationMD, err = normalizeMetadata(observationMD, len(observationIDs), AxisObservation)
	if err != nil {
		return nil, err
	}

	t := &Table{
		data:                data,
		sampleIDs:           slices.Clone(sampleIDs),
		observationIDs:      slices.Clone(observationIDs),
		sampleMetadata:      sampleMD,
		observationMetadata: observationMD,
		tableID:             tableID,
		kind:                kind,
		logger:              logger,
		metrics:             metrics,
	}
	t.indexIDs()
	return t, nil
}

// derive builds a new Table from operation output, carrying the receiver's
// id, kind and instrumentation.
func (t *Table) derive(data matrix.Matrix, sampleIDs, observationIDs []string, sampleMD, observationMD []Metadata) (*Table, error) {
	return construct(data, sampleIDs, observationIDs, sampleMD, observationMD, t.tableID, t.kind, t.logger, t.metrics)
}

// indexIDs rebuilds the identifier→position caches.
func (t *Table) indexIDs() {
	t.sampleIndex = indexList(t.sampleIDs)
	t.observationIndex = indexList(t.observationIDs)
}

func indexList(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

func firstDuplicate(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}

// normalizeMetadata enforces the axis-length invariant and collapses a
// sequence of entirely absent entries to "no metadata for this axis".
func normalizeMetadata(md []Metadata, axisLen int, axis Axis) ([]Metadata, error) {
	if md == nil {
		return nil, nil
	}
	if len(md) != axisLen {
		return nil, &metadataShapeError{axis: axis, mdLen: len(md), idLen: axisLen}
	}
	allNil := true
	for _, m := range md {
		if m != nil {
			allNil = false
			break
		}
	}
	if allNil {
		return nil, nil
	}
	return slices.Clone(md), nil
}

// Shape returns (observations, samples).
func (t *Table) Shape() (observations, samples int) {
	return len(t.observationIDs), len(t.sampleIDs)
}

// IsEmpty reports whether either axis has zero identifiers.
func (t *Table) IsEmpty() bool {
	return len(t.sampleIDs) == 0 || len(t.observationIDs) == 0
}

// SampleIDs returns the ordered sample identifiers.
func (t *Table) SampleIDs() []string { return slices.Clone(t.sampleIDs) }

// ObservationIDs returns the ordered observation identifiers.
func (t *Table) ObservationIDs() []string { return slices.Clone(t.observationIDs) }

// TableID returns the optional free-text table identifier.
func (t *Table) TableID() string { return t.tableID }

// Kind returns the table kind tag, or "" if unset.
func (t *Table) Kind() Kind { return t.kind }

// MatrixType reports the backing representation.
func (t *Table) MatrixType() matrix.Type { return t.data.Type() }

// ElementType reports the declared element type of the backing.
func (t *Table) ElementType() matrix.ElementType { return t.data.ElementType() }

// NonzeroCount returns the number of nonzero cells in the backing.
func (t *Table) NonzeroCount() int { return t.data.Nonzeros() }

// SampleExists reports whether id is a known sample.
func (t *Table) SampleExists(id string) bool {
	_, ok := t.sampleIndex[id]
	return ok
}

// ObservationExists reports whether id is a known observation.
func (t *Table) ObservationExists(id string) bool {
	_, ok := t.observationIndex[id]
	return ok
}

// SampleIndex returns the column position of a sample id.
func (t *Table) SampleIndex(id string) (int, error) {
	idx, ok := t.sampleIndex[id]
	if !ok {
		return 0, &UnknownIdentifierError{Axis: AxisSample, ID: id}
	}
	return idx, nil
}

// ObservationIndex returns the row position of an observation id.
func (t *Table) ObservationIndex(id string) (int, error) {
	idx, ok := t.observationIndex[id]
	if !ok {
		return 0, &UnknownIdentifierError{Axis: AxisObservation, ID: id}
	}
	return idx, nil
}

// ValueAt returns the matrix value for an (observation id, sample id) pair.
func (t *Table) ValueAt(observationID, sampleID string) (float64, error) {
	row, err := t.ObservationIndex(observationID)
	if err != nil {
		return 0, err
	}
	col, err := t.SampleIndex(sampleID)
	if err != nil {
		return 0, err
	}
	return t.data.At(row, col)
}

// SetValueAt overwrites the matrix value for an (observation id, sample id)
// pair, delegating zero-handling to the backing store.
func (t *Table) SetValueAt(observationID, sampleID string, value float64) error {
	row, err := t.ObservationIndex(observationID)
	if err != nil {
		return err
	}
	col, err := t.SampleIndex(sampleID)
	if err != nil {
		return err
	}
	return t.data.Set(row, col, value)
}

// SampleVector materializes the full column for a sample id as a dense
// vector of per-observation values, regardless of backing.
func (t *Table) SampleVector(id string) ([]float64, error) {
	col, err := t.SampleIndex(id)
	if err != nil {
		return nil, err
	}
	return t.data.ColVector(col)
}

// ObservationVector materializes the full row for an observation id as a
// dense vector of per-sample values, regardless of backing.
func (t *Table) ObservationVector(id string) ([]float64, error) {
	row, err := t.ObservationIndex(id)
	if err != nil {
		return nil, err
	}
	return t.data.RowVector(row)
}

// SampleMetadata returns the metadata mapping for a sample id, or nil when
// the sample (or the whole axis) carries none.
func (t *Table) SampleMetadata(id string) (Metadata, error) {
	col, err := t.SampleIndex(id)
	if err != nil {
		return nil, err
	}
	if t.sampleMetadata == nil {
		return nil, nil
	}
	return t.sampleMetadata[col], nil
}

// ObservationMetadata returns the metadata mapping for an observation id, or
// nil when the observation (or the whole axis) carries none.
func (t *Table) ObservationMetadata(id string) (Metadata, error) {
	row, err := t.ObservationIndex(id)
	if err != nil {
		return nil, err
	}
	if t.observationMetadata == nil {
		return nil, nil
	}
	return t.observationMetadata[row], nil
}

// AddSampleMetadata merges metadata into the sample axis in place. Existing
// per-id mappings gain the new keys; if the axis carried no metadata, a
// fresh sequence is created (ids absent from md get a nil entry). Unknown
// ids fail with UnknownIdentifierError before any mutation.
func (t *Table) AddSampleMetadata(md map[string]Metadata) error {
	for id := range md {
		if !t.SampleExists(id) {
			return &UnknownIdentifierError{Axis: AxisSample, ID: id}
		}
	}

	if t.sampleMetadata == nil {
		seq := make([]Metadata, len(t.sampleIDs))
		for i, id := range t.sampleIDs {
			seq[i] = md[id]
		}
		normalized, err := normalizeMetadata(seq, len(t.sampleIDs), AxisSample)
		if err != nil {
			return err
		}
		t.sampleMetadata = normalized
		return nil
	}

	for id, entry := range md {
		idx := t.sampleIndex[id]
		if t.sampleMetadata[idx] == nil {
			t.sampleMetadata[idx] = Metadata{}
		}
		for k, v := range entry {
			t.sampleMetadata[idx][k] = v
		}
	}
	return nil
}

// AddObservationMetadata merges metadata into the observation axis in place,
// with the same semantics as AddSampleMetadata.
func (t *Table) AddObservationMetadata(md map[string]Metadata) error {
	for id := range md {
		if !t.ObservationExists(id) {
			return &UnknownIdentifierError{Axis: AxisObservation, ID: id}
		}
	}

	if t.observationMetadata == nil {
		seq := make([]Metadata, len(t.observationIDs))
		for i, id := range t.observationIDs {
			seq[i] = md[id]
		}
		normalized, err := normalizeMetadata(seq, len(t.observationIDs), AxisObservation)
		if err != nil {
			return err
		}
		t.observationMetadata = normalized
		return nil
	}

	for id, entry := range md {
		idx := t.observationIndex[id]
		if t.observationMetadata[idx] == nil {
			t.observationMetadata[idx] = Metadata{}
		}
		for k, v := range entry {
			t.observationMetadata[idx][k] = v
		}
	}
	return nil
}

// Copy returns a structurally independent deep copy: backing matrix,
// identifier sequences and metadata sequences are all duplicated, so that
// mutation of the copy (including in-place metadata augmentation) never
// affects the original.
func (t *Table) Copy() *Table {
	out := &Table{
		data:                t.data.Clone(),
		sampleIDs:           slices.Clone(t.sampleIDs),
		observationIDs:      slices.Clone(t.observationIDs),
		sampleMetadata:      cloneMetadataSeq(t.sampleMetadata),
		observationMetadata: cloneMetadataSeq(t.observationMetadata),
		tableID:             t.tableID,
		kind:                t.kind,
		logger:              t.logger,
		metrics:             t.metrics,
	}
	out.indexIDs()
	return out
}

// Equal reports whether two tables carry the same identifiers, the same
// metadata and the same matrix values. Backing representation, element type,
// kind and table id do not participate: a sparse table equals a dense table
// with identical content.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if !slices.Equal(t.observationIDs, other.observationIDs) {
		return false
	}
	if !slices.Equal(t.sampleIDs, other.sampleIDs) {
		return false
	}
	if !metadataSeqEqual(t.sampleMetadata, other.sampleMetadata) {
		return false
	}
	if !metadataSeqEqual(t.observationMetadata, other.observationMetadata) {
		return false
	}
	return matrix.Equal(t.data, other.data)
}
