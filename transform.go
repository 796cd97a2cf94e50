package biom

import (
	"encoding/json"
	"time"

	"github.com/otulab/biom/matrix"
)

// TransformFunc rewrites one axis vector. It receives the entry (vector,
// identifier, metadata) and returns the replacement vector, which must keep
// the entry's length.
type TransformFunc func(entry AxisEntry) ([]float64, error)

// TransformSamples returns a new table whose sample vectors are rewritten by
// f. The backing representation and declared element type are preserved, so
// fractional results written into an int-typed table are truncated on store.
func (t *Table) TransformSamples(f TransformFunc) (*Table, error) {
	return t.transformAxis(AxisSample, f, t.data.ElementType())
}

// TransformObservations returns a new table whose observation vectors are
// rewritten by f, with the same type-preservation rule as TransformSamples.
func (t *Table) TransformObservations(f TransformFunc) (*Table, error) {
	return t.transformAxis(AxisObservation, f, t.data.ElementType())
}

func (t *Table) transformAxis(axis Axis, f TransformFunc, elem matrix.ElementType) (*Table, error) {
	start := time.Now()
	out, err := t.transform(axis, f, elem)
	t.metrics.RecordTransform(axis, time.Since(start), err)
	t.logger.LogTransform(axis, err)
	return out, err
}

func (t *Table) transform(axis Axis, f TransformFunc, elem matrix.ElementType) (*Table, error) {
	entries := t.Samples()
	n := len(t.sampleIDs)
	if axis == AxisObservation {
		entries = t.Observations()
		n = len(t.observationIDs)
	}

	vectors := make([][]float64, 0, n)
	for entry := range entries {
		vec, err := f(entry)
		if err != nil {
			return nil, err
		}
		if len(vec) != len(entry.Vector) {
			return nil, &shapeError{axis: axis, matrixLen: len(vec), idLen: len(entry.Vector)}
		}
		vectors = append(vectors, vec)
	}

	var (
		data matrix.Matrix
		err  error
	)
	if axis == AxisSample {
		data, err = matrix.FromCols(t.data.Type(), vectors, elem)
	} else {
		data, err = matrix.FromRows(t.data.Type(), vectors, elem)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return t.derive(data, t.sampleIDs, t.observationIDs, cloneMetadataSeq(t.sampleMetadata), cloneMetadataSeq(t.observationMetadata))
}

// NormalizeBySampleSum returns a new table where every sample vector is
// divided by its own sum, producing relative abundances per sample. The
// result is float-typed regardless of the receiver's element type; all-zero
// vectors are left as zeros.
func (t *Table) NormalizeBySampleSum() (*Table, error) {
	return t.transformAxis(AxisSample, normalizeVector, matrix.ElementFloat)
}

// NormalizeByObservationSum returns a new table where every observation
// vector is divided by its own sum, with the same typing rule as
// NormalizeBySampleSum.
func (t *Table) NormalizeByObservationSum() (*Table, error) {
	return t.transformAxis(AxisObservation, normalizeVector, matrix.ElementFloat)
}

func normalizeVector(entry AxisEntry) ([]float64, error) {
	total := 0.0
	for _, v := range entry.Vector {
		total += v
	}
	out := make([]float64, len(entry.Vector))
	if total == 0 {
		return out, nil
	}
	for i, v := range entry.Vector {
		out[i] = v / total
	}
	return out, nil
}

// NormalizeObservationsByMetadata divides every observation vector by the
// numeric metadata value under key (copy-number correction is the typical
// use). A missing or non-numeric value fails with MissingMetadataKeyError.
// The result is float-typed.
func (t *Table) NormalizeObservationsByMetadata(key string) (*Table, error) {
	return t.transformAxis(AxisObservation, func(entry AxisEntry) ([]float64, error) {
		divisor, ok := metadataNumber(entry.Metadata.Get(key))
		if !ok || divisor == 0 {
			return nil, &MissingMetadataKeyError{ID: entry.ID, Key: key}
		}
		out := make([]float64, len(entry.Vector))
		for i, v := range entry.Vector {
			out[i] = v / divisor
		}
		return out, nil
	}, matrix.ElementFloat)
}

// metadataNumber coerces the numeric shapes metadata values arrive in,
// including json.Number from decoded payloads.
func metadataNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
