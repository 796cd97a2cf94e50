package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/otulab/biom"
	"github.com/otulab/biom/matrix"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) ∝ 1/k^s where s is the skew parameter; s=1.0 gives standard Zipf.
// Count data in biological tables follows this kind of power law.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// SparseCounts generates coordinate triples for an observations×samples
// matrix. Each cell is nonzero with probability density; nonzero counts are
// Zipfian in [1, maxCount].
func (r *RNG) SparseCounts(observations, samples int, density float64, maxCount int) []matrix.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []matrix.Entry
	for row := range observations {
		for col := range samples {
			if r.rand.Float64() >= density {
				continue
			}
			entries = append(entries, matrix.Entry{
				Row:   row,
				Col:   col,
				Value: float64(1 + r.zipfLocked(maxCount, 1.0)),
			})
		}
	}
	return entries
}

// ObservationIDs generates n observation identifiers ("O1", "O2", ...).
func ObservationIDs(n int) []string {
	return sequentialIDs("O", n)
}

// SampleIDs generates n sample identifiers ("S1", "S2", ...).
func SampleIDs(n int) []string {
	return sequentialIDs("S", n)
}

func sequentialIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return ids
}

// SampleMetadata generates one metadata mapping per sample, cycling through
// the given environment labels under the "environment" key.
func (r *RNG) SampleMetadata(n int, environments []string) []biom.Metadata {
	md := make([]biom.Metadata, n)
	for i := range md {
		md[i] = biom.Metadata{"environment": environments[i%len(environments)]}
	}
	return md
}

// RandomTable builds a table over the given backing with Zipfian counts at
// the given density. Identifiers are sequential and the kind is set so the
// table round-trips through the interchange format.
func (r *RNG) RandomTable(typ matrix.Type, observations, samples int, density float64) (*biom.Table, error) {
	entries := r.SparseCounts(observations, samples, density, 100)
	data, err := matrix.FromTriples(typ, observations, samples, entries, matrix.ElementInt)
	if err != nil {
		return nil, err
	}
	return biom.New(data, SampleIDs(samples), ObservationIDs(observations), biom.WithKind(biom.KindOTU))
}
