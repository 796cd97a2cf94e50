// Package biom provides sparse and dense biological count tables for Go.
//
// A Table is an observations × samples matrix with string identifiers and
// optional per-position metadata on each axis. Both backings share one
// contract, so every operation works identically on sparse and dense data.
//
// # Quick Start
//
// Build a table from coordinate triples:
//
//	data, _ := matrix.FromTriples(matrix.TypeSparse, 2, 2, []matrix.Entry{
//	    {Row: 0, Col: 1, Value: 3},
//	}, matrix.ElementInt)
//	t, _ := biom.New(data, []string{"S1", "S2"}, []string{"O1", "O2"},
//	    biom.WithKind(biom.KindOTU))
//
// # Operations
//
// Axis-level operations never mutate the receiver; each returns a new table:
//
//	sums, _ := t.Sum(biom.AxisSample)
//	sub, _ := t.FilterSamples(func(e biom.AxisEntry) bool {
//	    return e.Metadata.Get("site") == "gut"
//	}, false)
//	rel, _ := t.NormalizeBySampleSum()
//	merged, _ := a.Merge(b)
//
// # Interchange
//
// Tables round-trip through the BIOM JSON interchange format:
//
//	payload, _ := t.ToJSON("my-pipeline 1.0")
//	t2, _ := biom.FromJSON(payload)
//
// Payloads can be persisted through a docstore.Store (local directory,
// in-memory, or an S3-compatible bucket via docstore/minio), with optional
// gzip, zstd or lz4 compression selected by file extension.
package biom
