package biom

// Bin is one partition produced by a metadata binning: the key shared by the
// partition's entries and a new table restricted to them.
type Bin struct {
	Key   any
	Table *Table
}

// BinFunc derives a bin key from one axis entry's metadata. The metadata may
// be nil for entries without any. Keys are compared by content: composite
// values such as slices group together when their elements are equal.
type BinFunc func(md Metadata) any

// BinSamplesByMetadata partitions samples by the key f derives from each
// sample's metadata and returns one Bin per distinct key, in first-seen
// sample order.
func (t *Table) BinSamplesByMetadata(f BinFunc) ([]Bin, error) {
	return t.binAxis(AxisSample, f)
}

// BinObservationsByMetadata partitions observations by the key f derives
// from each observation's metadata, with the same semantics as
// BinSamplesByMetadata.
func (t *Table) BinObservationsByMetadata(f BinFunc) ([]Bin, error) {
	return t.binAxis(AxisObservation, f)
}

// BinSamplesByMetadataKey partitions samples by the metadata value stored
// under key. Samples without metadata (or without the key) bin under a nil
// key.
func (t *Table) BinSamplesByMetadataKey(key string) ([]Bin, error) {
	return t.binAxis(AxisSample, func(md Metadata) any { return md.Get(key) })
}

// BinObservationsByMetadataKey partitions observations by the metadata value
// stored under key, with the same semantics as BinSamplesByMetadataKey.
func (t *Table) BinObservationsByMetadataKey(key string) ([]Bin, error) {
	return t.binAxis(AxisObservation, func(md Metadata) any { return md.Get(key) })
}

func (t *Table) binAxis(axis Axis, f BinFunc) ([]Bin, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	entries := t.Samples()
	if axis == AxisObservation {
		entries = t.Observations()
	}

	// Group ids by canonical key, preserving first-seen key order.
	var order []any
	groups := make(map[any]map[string]struct{})
	keyByCanonical := make(map[any]any)
	for entry := range entries {
		raw := f(entry.Metadata)
		canonical := canonicalBinKey(raw)
		if _, ok := groups[canonical]; !ok {
			groups[canonical] = make(map[string]struct{})
			keyByCanonical[canonical] = raw
			order = append(order, canonical)
		}
		groups[canonical][entry.ID] = struct{}{}
	}

	bins := make([]Bin, 0, len(order))
	for _, canonical := range order {
		members := groups[canonical]
		keep := func(entry AxisEntry) bool {
			_, ok := members[entry.ID]
			return ok
		}

		var (
			sub *Table
			err error
		)
		if axis == AxisSample {
			sub, err = t.FilterSamples(keep, false)
		} else {
			sub, err = t.FilterObservations(keep, false)
		}
		if err != nil {
			return nil, err
		}
		bins = append(bins, Bin{Key: keyByCanonical[canonical], Table: sub})
	}
	return bins, nil
}
