package biom

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordConstruct is called after each table construction.
	RecordConstruct(duration time.Duration, err error)

	// RecordFilter is called after each filter operation. kept is the number
	// of axis entries that survived.
	RecordFilter(axis Axis, kept int, duration time.Duration, err error)

	// RecordTransform is called after each transform operation.
	RecordTransform(axis Axis, duration time.Duration, err error)

	// RecordMerge is called after each merge operation.
	RecordMerge(duration time.Duration, err error)

	// RecordEncode is called after each interchange encode.
	RecordEncode(duration time.Duration, err error)

	// RecordDecode is called after each interchange decode.
	RecordDecode(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConstruct(time.Duration, error)         {}
func (NoopMetricsCollector) RecordFilter(Axis, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTransform(Axis, time.Duration, error)   {}
func (NoopMetricsCollector) RecordMerge(time.Duration, error)             {}
func (NoopMetricsCollector) RecordEncode(time.Duration, error)            {}
func (NoopMetricsCollector) RecordDecode(time.Duration, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConstructCount      atomic.Int64
	ConstructErrors     atomic.Int64
	ConstructTotalNanos atomic.Int64
	FilterCount         atomic.Int64
	FilterErrors        atomic.Int64
	FilterKept          atomic.Int64
	TransformCount      atomic.Int64
	TransformErrors     atomic.Int64
	MergeCount          atomic.Int64
	MergeErrors         atomic.Int64
	MergeTotalNanos     atomic.Int64
	EncodeCount         atomic.Int64
	EncodeErrors        atomic.Int64
	DecodeCount         atomic.Int64
	DecodeErrors        atomic.Int64
}

// RecordConstruct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConstruct(duration time.Duration, err error) {
	b.ConstructCount.Add(1)
	b.ConstructTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ConstructErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(_ Axis, kept int, _ time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterKept.Add(int64(kept))
	if err != nil {
		b.FilterErrors.Add(1)
	}
}

// RecordTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransform(_ Axis, _ time.Duration, err error) {
	b.TransformCount.Add(1)
	if err != nil {
		b.TransformErrors.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(duration time.Duration, err error) {
	b.MergeCount.Add(1)
	b.MergeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(_ time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(_ time.Duration, err error) {
	b.DecodeCount.Add(1)
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConstructCount:  b.ConstructCount.Load(),
		ConstructErrors: b.ConstructErrors.Load(),
		FilterCount:     b.FilterCount.Load(),
		FilterErrors:    b.FilterErrors.Load(),
		FilterKept:      b.FilterKept.Load(),
		TransformCount:  b.TransformCount.Load(),
		TransformErrors: b.TransformErrors.Load(),
		MergeCount:      b.MergeCount.Load(),
		MergeErrors:     b.MergeErrors.Load(),
		MergeAvgNanos:   b.getAvgMergeNanos(),
		EncodeCount:     b.EncodeCount.Load(),
		EncodeErrors:    b.EncodeErrors.Load(),
		DecodeCount:     b.DecodeCount.Load(),
		DecodeErrors:    b.DecodeErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgMergeNanos() int64 {
	count := b.MergeCount.Load()
	if count == 0 {
		return 0
	}
	return b.MergeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConstructCount  int64
	ConstructErrors int64
	FilterCount     int64
	FilterErrors    int64
	FilterKept      int64
	TransformCount  int64
	TransformErrors int64
	MergeCount      int64
	MergeErrors     int64
	MergeAvgNanos   int64
	EncodeCount     int64
	EncodeErrors    int64
	DecodeCount     int64
	DecodeErrors    int64
}
