package biom

import "log/slog"

type options struct {
	sampleMetadata      []Metadata
	observationMetadata []Metadata
	tableID             string
	kind                Kind
	logger              *Logger
	metrics             MetricsCollector
}

// Option configures table construction.
//
// Options exist to avoid exploding the constructor surface: metadata, table
// id and kind are all optional, and logging/metrics default to no-ops.
type Option func(*options)

// WithSampleMetadata attaches one metadata mapping per sample position.
// The sequence length must equal the number of sample ids; individual
// entries may be nil. A sequence consisting entirely of nil entries is
// normalized to "no sample metadata".
func WithSampleMetadata(md []Metadata) Option {
	return func(o *options) {
		o.sampleMetadata = md
	}
}

// WithObservationMetadata attaches one metadata mapping per observation
// position, with the same shape rules as WithSampleMetadata.
func WithObservationMetadata(md []Metadata) Option {
	return func(o *options) {
		o.observationMetadata = md
	}
}

// WithTableID sets the optional free-text table identifier.
func WithTableID(id string) Option {
	return func(o *options) {
		o.tableID = id
	}
}

// WithKind sets the table kind tag ("OTU table", "Abundance table").
// Encoding to the interchange format requires a kind.
func WithKind(kind Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
