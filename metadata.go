package biom

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Metadata is a string-keyed mapping attached to one axis position. A nil
// Metadata means "absent". Lookups of missing keys return nil rather than
// failing; absence is a deliberate default, not an error.
type Metadata map[string]any

// Get returns the value for key, or nil when the key (or the whole mapping)
// is absent.
func (m Metadata) Get(key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// Clone returns a structurally independent copy. Nested maps and slices are
// copied recursively so that mutating the clone never affects the original.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			out[k] = cloneValue(nested)
		}
		return out
	case Metadata:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, nested := range val {
			out[i] = cloneValue(nested)
		}
		return out
	default:
		// Typed slices ([]string taxonomy paths and the like) still need a
		// fresh backing array or the clone shares mutations.
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice && !rv.IsNil() {
			out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out.Index(i).Set(reflect.ValueOf(cloneValue(rv.Index(i).Interface())))
			}
			return out.Interface()
		}
		return v
	}
}

func cloneMetadataSeq(seq []Metadata) []Metadata {
	if seq == nil {
		return nil
	}
	out := make([]Metadata, len(seq))
	for i, m := range seq {
		out[i] = m.Clone()
	}
	return out
}

func metadataSeqEqual(a, b []Metadata) bool {
	if len(a) != len(b) {
		return false
	}
	if (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// MetadataCombineFunc reconciles the metadata of one identifier coming from
// two tables during a merge. Either argument may be nil.
type MetadataCombineFunc func(self, other Metadata) Metadata

// PreferSelf is the default metadata combine policy: self's metadata when
// present, else other's, else nil.
func PreferSelf(self, other Metadata) Metadata {
	if self != nil {
		return self
	}
	return other
}

// canonicalBinKey normalizes a bin key for use as a map key. Comparable
// values are used directly; slices, arrays and maps are normalized to an
// ordered-tuple string form so that equal contents land in the same bin.
func canonicalBinKey(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return canonicalForm(v)
}

func canonicalForm(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = canonicalForm(rv.Index(i).Interface())
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byKey := make(map[string]string, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := canonicalForm(iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = canonicalForm(iter.Value().Interface())
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + byKey[k]
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}
