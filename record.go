package biom

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/otulab/biom/codec"
	"github.com/otulab/biom/matrix"
)

const (
	// FormatVersion is the interchange format version label.
	FormatVersion = "Biological Observation Matrix 0.9dev"
	// FormatURL is the interchange format reference URL.
	FormatURL = "http://biom-format.org"
)

// AxisRecord is one axis position in an interchange record. Metadata is an
// arbitrary JSON value on the wire; anything other than an object or null is
// rejected on decode.
type AxisRecord struct {
	ID       string `json:"id"`
	Metadata any    `json:"metadata"`
}

// Record is the interchange form of a table. Data holds dense row vectors for
// a dense matrix type and [row, col, value] triples for a sparse one.
type Record struct {
	ID                string       `json:"id"`
	Format            string       `json:"format"`
	FormatURL         string       `json:"format_url"`
	Type              string       `json:"type"`
	GeneratedBy       string       `json:"generated_by"`
	Date              string       `json:"date"`
	MatrixType        string       `json:"matrix_type"`
	MatrixElementType string       `json:"matrix_element_type"`
	Shape             [2]int       `json:"shape"`
	Rows              []AxisRecord `json:"rows"`
	Columns           []AxisRecord `json:"columns"`
	Data              [][]float64  `json:"data"`
}

// ToRecord builds the interchange record for the table. generatedBy labels
// the producing agent and must be non-empty; a table with an unset kind fails
// with ErrUnknownTableKind. The date field is stamped with the current time
// in RFC 3339 form.
func (t *Table) ToRecord(generatedBy string) (*Record, error) {
	if generatedBy == "" {
		return nil, ErrInvalidGeneratedBy
	}
	if t.kind == "" {
		return nil, ErrUnknownTableKind
	}

	observations, samples := t.Shape()
	rec := &Record{
		ID:                t.tableID,
		Format:            FormatVersion,
		FormatURL:         FormatURL,
		Type:              string(t.kind),
		GeneratedBy:       generatedBy,
		Date:              time.Now().Format(time.RFC3339),
		MatrixType:        string(t.data.Type()),
		MatrixElementType: string(t.data.ElementType()),
		Shape:             [2]int{observations, samples},
		Rows:              t.axisRecords(t.observationIDs, t.observationMetadata),
		Columns:           t.axisRecords(t.sampleIDs, t.sampleMetadata),
	}

	if s, ok := t.data.(*matrix.Sparse); ok {
		rec.Data = make([][]float64, 0, s.Nonzeros())
		s.ForEach(func(row, col int, v float64) bool {
			rec.Data = append(rec.Data, []float64{float64(row), float64(col), v})
			return true
		})
		return rec, nil
	}

	rec.Data = make([][]float64, observations)
	for r := range rec.Data {
		vec, err := t.data.RowVector(r)
		if err != nil {
			return nil, err
		}
		rec.Data[r] = vec
	}
	return rec, nil
}

func (t *Table) axisRecords(ids []string, md []Metadata) []AxisRecord {
	out := make([]AxisRecord, len(ids))
	for i, id := range ids {
		out[i].ID = id
		if md != nil && md[i] != nil {
			out[i].Metadata = map[string]any(md[i])
		}
	}
	return out
}

// ToJSON encodes the table as an interchange payload using the default codec.
func (t *Table) ToJSON(generatedBy string) ([]byte, error) {
	start := time.Now()
	data, err := t.toJSON(generatedBy)
	t.metrics.RecordEncode(time.Since(start), err)
	t.logger.LogEncode(string(t.data.Type()), len(data), err)
	return data, err
}

func (t *Table) toJSON(generatedBy string) ([]byte, error) {
	rec, err := t.ToRecord(generatedBy)
	if err != nil {
		return nil, err
	}
	return codec.Default.Marshal(rec)
}

// ToPrettyJSON encodes the table as an indented interchange payload with
// object keys in sorted order, for stable diffs and human inspection.
func (t *Table) ToPrettyJSON(generatedBy string) ([]byte, error) {
	raw, err := t.ToJSON(generatedBy)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, "", "    ")
}

// FromRecord reconstructs a table from an interchange record. The record's
// matrix type selects the backing; the declared element type must be int or
// float ("str" is part of the format but cannot back a matrix). Options may
// override instrumentation but not identity fields, which come from the
// record.
func FromRecord(rec *Record, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	start := time.Now()
	t, err := fromRecord(rec, o)
	o.metrics.RecordDecode(time.Since(start), err)
	o.logger.LogDecode(rec.Shape[0], rec.Shape[1], err)
	return t, err
}

func fromRecord(rec *Record, o options) (*Table, error) {
	var typ matrix.Type
	switch matrix.Type(rec.MatrixType) {
	case matrix.TypeSparse:
		typ = matrix.TypeSparse
	case matrix.TypeDense:
		typ = matrix.TypeDense
	default:
		return nil, fmt.Errorf("%w: matrix_type %q", ErrInvalidRecord, rec.MatrixType)
	}

	var elem matrix.ElementType
	switch matrix.ElementType(rec.MatrixElementType) {
	case matrix.ElementInt:
		elem = matrix.ElementInt
	case matrix.ElementFloat:
		elem = matrix.ElementFloat
	case matrix.ElementString:
		return nil, fmt.Errorf("%w: matrix_element_type %q cannot back a matrix", ErrInvalidRecord, rec.MatrixElementType)
	default:
		return nil, fmt.Errorf("%w: matrix_element_type %q", ErrInvalidRecord, rec.MatrixElementType)
	}

	rows, cols := rec.Shape[0], rec.Shape[1]
	if len(rec.Rows) != rows {
		return nil, fmt.Errorf("%w: shape declares %d rows, record has %d", ErrInvalidRecord, rows, len(rec.Rows))
	}
	if len(rec.Columns) != cols {
		return nil, fmt.Errorf("%w: shape declares %d columns, record has %d", ErrInvalidRecord, cols, len(rec.Columns))
	}

	data, err := decodeData(rec, typ, rows, cols, elem)
	if err != nil {
		return nil, err
	}

	observationIDs, observationMD, err := decodeAxis(rec.Rows, AxisObservation)
	if err != nil {
		return nil, err
	}
	sampleIDs, sampleMD, err := decodeAxis(rec.Columns, AxisSample)
	if err != nil {
		return nil, err
	}

	return construct(data, sampleIDs, observationIDs, sampleMD, observationMD, rec.ID, Kind(rec.Type), o.logger, o.metrics)
}

func decodeData(rec *Record, typ matrix.Type, rows, cols int, elem matrix.ElementType) (matrix.Matrix, error) {
	if typ == matrix.TypeSparse {
		entries := make([]matrix.Entry, 0, len(rec.Data))
		for i, triple := range rec.Data {
			if len(triple) != 3 {
				return nil, fmt.Errorf("%w: sparse triple %d has %d values", ErrInvalidRecord, i, len(triple))
			}
			r, c := triple[0], triple[1]
			if r != math.Trunc(r) || c != math.Trunc(c) {
				return nil, fmt.Errorf("%w: sparse triple %d has non-integer coordinates", ErrInvalidRecord, i)
			}
			entries = append(entries, matrix.Entry{Row: int(r), Col: int(c), Value: triple[2]})
		}
		data, err := matrix.FromTriples(typ, rows, cols, entries, elem)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		return data, nil
	}

	if len(rec.Data) != rows {
		return nil, fmt.Errorf("%w: dense data has %d rows, shape declares %d", ErrInvalidRecord, len(rec.Data), rows)
	}
	for i, vec := range rec.Data {
		if len(vec) != cols {
			return nil, fmt.Errorf("%w: dense row %d has %d values, shape declares %d", ErrInvalidRecord, i, len(vec), cols)
		}
	}
	data, err := matrix.FromRows(typ, rec.Data, elem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if len(rec.Data) == 0 {
		// FromRows infers the column count from the first row; an empty
		// record still carries its declared shape.
		data = matrix.New(typ, rows, cols, elem)
	}
	return data, nil
}

func decodeAxis(records []AxisRecord, axis Axis) ([]string, []Metadata, error) {
	ids := make([]string, len(records))
	md := make([]Metadata, len(records))
	for i, r := range records {
		ids[i] = r.ID
		switch v := r.Metadata.(type) {
		case nil:
		case map[string]any:
			md[i] = Metadata(v)
		case Metadata:
			md[i] = v
		default:
			return nil, nil, fmt.Errorf("%w: %s %q", ErrInvalidMetadata, axis, r.ID)
		}
	}
	return ids, md, nil
}

// FromJSON decodes an interchange payload using the default codec and
// reconstructs the table.
func FromJSON(data []byte, optFns ...Option) (*Table, error) {
	var rec Record
	if err := codec.Default.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return FromRecord(&rec, optFns...)
}
