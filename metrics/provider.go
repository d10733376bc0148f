// Package metrics defines the instruments a pipeline records and ships an in-memory
// and a no-op implementation. See metrics/prometheus for a Prometheus adapter.
package metrics

// Pipeline instrument names.
const (
	LinesRead           = "lines_read_total"
	LinesWritten        = "lines_written_total"
	ItemsFailed         = "items_failed_total"
	WorkersBusy         = "workers_busy"
	QueueDepth          = "queue_depth"
	ItemDurationSeconds = "item_duration_seconds"
)

// Provider constructs instruments used to record metrics.
// Implementations must be safe for concurrent use and return the same instrument
// for repeated calls with the same name.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move up or down, such as busy workers.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of measurements, such as durations in seconds.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets the instrument description (Prometheus help text).
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets the instrument unit, e.g. "1" or "seconds".
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

// ApplyOptions builds an InstrumentConfig from opts, skipping nil options.
func ApplyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
