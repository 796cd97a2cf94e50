package docstore

import (
	"context"
	"path"

	"github.com/otulab/biom"
)

// SaveTable encodes the table as an interchange payload and stores it under
// name. The name's extension selects the compression: ".gz", ".zst" and
// ".lz4" compress, anything else stores the JSON as-is.
func SaveTable(ctx context.Context, s Store, name string, t *biom.Table, generatedBy string) error {
	payload, err := t.ToJSON(generatedBy)
	if err != nil {
		return err
	}
	data, err := CompressorByExt(path.Ext(name)).Compress(payload)
	if err != nil {
		return err
	}
	return s.Put(ctx, name, data)
}

// LoadTable reads the payload stored under name, decompressing per the
// name's extension, and reconstructs the table. Options configure the
// reconstructed table's instrumentation.
func LoadTable(ctx context.Context, s Store, name string, optFns ...biom.Option) (*biom.Table, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	payload, err := CompressorByExt(path.Ext(name)).Decompress(data)
	if err != nil {
		return nil, err
	}
	return biom.FromJSON(payload, optFns...)
}
