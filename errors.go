package biom

import (
	"errors"
	"fmt"

	"github.com/otulab/biom/matrix"
)

var (
	// ErrShapeMismatch is returned when matrix dimensions disagree with the
	// identifier counts supplied at construction.
	ErrShapeMismatch = errors.New("biom: matrix dimensions disagree with identifier counts")

	// ErrMetadataShapeMismatch is returned when a metadata sequence length
	// differs from its axis length.
	ErrMetadataShapeMismatch = errors.New("biom: metadata length differs from axis length")

	// ErrInvalidMetadata is returned when a metadata entry is neither a
	// mapping nor absent (reachable when decoding interchange payloads).
	ErrInvalidMetadata = errors.New("biom: metadata entries must be mappings or null")

	// ErrEmptyTable is returned when an operation requires data but either
	// axis has zero identifiers.
	ErrEmptyTable = errors.New("biom: table is empty")

	// ErrEmptyResult is returned when a filter removes every entry on an
	// axis. Returning a table with identifiers on one axis but no matrix
	// data would be inconsistent, so the operation fails instead.
	ErrEmptyResult = errors.New("biom: all entries filtered out")

	// ErrEmptyMergeResult is returned when a merge would produce an empty
	// sample or observation set, typically an intersection with no overlap.
	ErrEmptyMergeResult = errors.New("biom: merge produced an empty axis")

	// ErrInvalidMergeMode is returned for a merge mode other than union or
	// intersection.
	ErrInvalidMergeMode = errors.New("biom: merge mode must be union or intersection")

	// ErrUnknownTableKind is returned when encoding a table whose kind tag
	// is unset.
	ErrUnknownTableKind = errors.New("biom: table kind is unset")

	// ErrInvalidGeneratedBy is returned when the generated-by label supplied
	// to the codec is empty.
	ErrInvalidGeneratedBy = errors.New("biom: generated_by must be a non-empty string")

	// ErrMissingHeaderPair is returned by delimited rendering when only one
	// of the header key/value options is supplied.
	ErrMissingHeaderPair = errors.New("biom: header key and header value must be supplied together")

	// ErrInvalidRecord is returned when an interchange record violates the
	// format contract (unknown matrix type, malformed sparse triple, ...).
	ErrInvalidRecord = errors.New("biom: invalid interchange record")
)

// Axis selects a table axis for reduction, filtering and iteration.
type Axis string

const (
	// AxisSample addresses the column axis.
	AxisSample Axis = "sample"
	// AxisObservation addresses the row axis.
	AxisObservation Axis = "observation"
	// AxisWhole addresses the whole matrix; only SumWhole reduces over it.
	AxisWhole Axis = "whole"
)

// DuplicateIdentifierError indicates a repeated id within one axis.
type DuplicateIdentifierError struct {
	Axis Axis
	ID   string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("biom: duplicate %s id %q", e.Axis, e.ID)
}

// UnknownIdentifierError indicates a lookup by an id not present on an axis.
type UnknownIdentifierError struct {
	Axis Axis
	ID   string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("biom: unknown %s id %q", e.Axis, e.ID)
}

// InvalidAxisError indicates an axis argument outside the accepted set.
type InvalidAxisError struct {
	Axis Axis
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("biom: invalid axis %q", e.Axis)
}

// MissingMetadataKeyError indicates a transform referenced a metadata key
// that is absent (or not numeric) for an axis entry.
type MissingMetadataKeyError struct {
	ID  string
	Key string
}

func (e *MissingMetadataKeyError) Error() string {
	return fmt.Sprintf("biom: metadata key %q missing for %q", e.Key, e.ID)
}

// shapeError reports a matrix axis length disagreeing with its identifier
// count. It satisfies errors.Is(err, ErrShapeMismatch).
type shapeError struct {
	axis      Axis
	matrixLen int
	idLen     int
}

func (e *shapeError) Error() string {
	return fmt.Sprintf("biom: matrix has %d %ss but %d %s ids", e.matrixLen, e.axis, e.idLen, e.axis)
}

func (e *shapeError) Unwrap() error { return ErrShapeMismatch }

// metadataShapeError reports a metadata sequence length disagreeing with its
// axis length. It satisfies errors.Is(err, ErrMetadataShapeMismatch).
type metadataShapeError struct {
	axis  Axis
	mdLen int
	idLen int
}

func (e *metadataShapeError) Error() string {
	return fmt.Sprintf("biom: %s metadata has %d entries but axis has %d ids", e.axis, e.mdLen, e.idLen)
}

func (e *metadataShapeError) Unwrap() error { return ErrMetadataShapeMismatch }

// translateError maps matrix-level failures onto the table-level taxonomy at
// the API boundary. Errors without a table-level meaning pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrShapeMismatch) {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	return err
}
