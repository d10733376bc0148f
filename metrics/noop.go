package metrics

// NoopProvider discards every measurement. It is the pipeline default.
type NoopProvider struct{}

func (NoopProvider) Counter(string, ...InstrumentOption) Counter { return noop{} }

func (NoopProvider) UpDownCounter(string, ...InstrumentOption) UpDownCounter { return noop{} }

func (NoopProvider) Histogram(string, ...InstrumentOption) Histogram { return noop{} }

type noop struct{}

func (noop) Add(int64) {}

func (noop) Record(float64) {}
