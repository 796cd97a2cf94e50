// Package codec centralizes the serialization of interchange payloads.
//
// Both built-in codecs speak JSON, so bytes written by either decode with
// the other; the split exists so the hot encode/decode paths can use a fast
// implementation while callers that want zero extra dependencies can pin the
// standard library one. Documents stored alongside a codec name are reopened
// via ByName.
package codec

import "fmt"

// Codec encodes and decodes interchange values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when callers do not pick one explicitly.
// Changing it only affects newly written payloads; both built-in codecs
// read each other's output.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a built-in codec by its stable name, for reopening
// documents that record the codec they were written with.
func ByName(name string) (Codec, bool) {
	c, ok := builtin[name]
	return c, ok
}

// MustMarshal encodes with c (or Default when c is nil) and panics on
// failure. Intended for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
