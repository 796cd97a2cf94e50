package docstore

import (
	"errors"
	"os"
)

// ErrNotFound is returned when a payload does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrUnknownCompressor is returned when a compressor name or file extension
// is not registered.
var ErrUnknownCompressor = errors.New("docstore: unknown compressor")
