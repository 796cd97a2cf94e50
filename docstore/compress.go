package docstore

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses and decompresses whole payloads.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	// Name returns the stable compressor name ("none", "gzip", "zstd", "lz4").
	Name() string
	// Ext returns the file extension selecting this compressor, "" for none.
	Ext() string
}

// CompressorByName returns a built-in compressor by its stable name.
func CompressorByName(name string) (Compressor, error) {
	switch name {
	case "none", "":
		return None{}, nil
	case "gzip":
		return Gzip{}, nil
	case "zstd":
		return Zstd{}, nil
	case "lz4":
		return LZ4{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompressor, name)
	}
}

// CompressorByExt returns the compressor selected by a file extension
// (".gz", ".zst", ".lz4"). Any other extension selects None.
func CompressorByExt(ext string) Compressor {
	switch ext {
	case ".gz":
		return Gzip{}
	case ".zst":
		return Zstd{}
	case ".lz4":
		return LZ4{}
	default:
		return None{}
	}
}

// None is the identity compressor.
type None struct{}

func (None) Compress(data []byte) ([]byte, error)   { return data, nil }
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
func (None) Name() string                           { return "none" }
func (None) Ext() string                            { return "" }

// Gzip compresses with the gzip format at the default level.
type Gzip struct{}

func (Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Gzip) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (Gzip) Name() string { return "gzip" }
func (Gzip) Ext() string  { return ".gz" }

// Zstd encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Zstd compresses with the zstd format at the default level.
type Zstd struct{}

func (Zstd) Compress(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)
	return enc.EncodeAll(data, nil), nil
}

func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)
	return dec.DecodeAll(data, nil)
}

func (Zstd) Name() string { return "zstd" }
func (Zstd) Ext() string  { return ".zst" }

// LZ4 compresses with the LZ4 frame format, so payloads stay readable by the
// standard lz4 tooling.
type LZ4 struct{}

func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))
	return io.ReadAll(r)
}

func (LZ4) Name() string { return "lz4" }
func (LZ4) Ext() string  { return ".lz4" }
