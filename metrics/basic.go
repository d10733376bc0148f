package metrics

import (
	"sync"
	"sync/atomic"
)

// BasicProvider is an in-memory Provider, handy for tests and for printing a run summary.
// Counters and up/down counters share one namespace; histograms have their own.
type BasicProvider struct {
	mu         sync.Mutex
	values     map[string]*atomicValue
	histograms map[string]*BasicHistogram
	meta       map[string]InstrumentConfig
}

// NewBasicProvider constructs an empty BasicProvider.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{
		values:     make(map[string]*atomicValue),
		histograms: make(map[string]*BasicHistogram),
		meta:       make(map[string]InstrumentConfig),
	}
}

func (p *BasicProvider) value(name string, opts []InstrumentOption) *atomicValue {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.values[name]
	if !ok {
		v = &atomicValue{}
		p.values[name] = v
		p.meta[name] = ApplyOptions(opts)
	}
	return v
}

// Counter returns the counter registered under name, creating it on first use.
func (p *BasicProvider) Counter(name string, opts ...InstrumentOption) Counter {
	return p.value(name, opts)
}

// UpDownCounter returns the up/down counter registered under name, creating it on first use.
func (p *BasicProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	return p.value(name, opts)
}

// Histogram returns the histogram registered under name, creating it on first use.
func (p *BasicProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.histograms[name]
	if !ok {
		h = &BasicHistogram{}
		p.histograms[name] = h
		p.meta[name] = ApplyOptions(opts)
	}
	return h
}

// Value returns the current value of a counter or up/down counter, zero if unknown.
func (p *BasicProvider) Value(name string) int64 {
	p.mu.Lock()
	v, ok := p.values[name]
	p.mu.Unlock()
	if !ok {
		return 0
	}
	return v.Load()
}

// Snapshot returns the current value of every counter and up/down counter.
func (p *BasicProvider) Snapshot() map[string]int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]int64, len(p.values))
	for name, v := range p.values {
		out[name] = v.Load()
	}
	return out
}

// HistogramSnapshot returns the state of the named histogram and whether it exists.
func (p *BasicProvider) HistogramSnapshot(name string) (HistSnapshot, bool) {
	p.mu.Lock()
	h, ok := p.histograms[name]
	p.mu.Unlock()
	if !ok {
		return HistSnapshot{}, false
	}
	return h.Snapshot(), true
}

// Config returns the metadata the named instrument was created with.
func (p *BasicProvider) Config(name string) (InstrumentConfig, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.meta[name]
	return c, ok
}

type atomicValue struct{ atomic.Int64 }

func (v *atomicValue) Add(n int64) { v.Int64.Add(n) }

// BasicHistogram tracks count, sum, min and max of recorded values.
type BasicHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Record adds a measurement.
func (h *BasicHistogram) Record(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.count == 0 || v < h.min {
		h.min = v
	}
	if h.count == 0 || v > h.max {
		h.max = v
	}
	h.count++
	h.sum += v
}

// HistSnapshot is an immutable copy of a BasicHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Snapshot returns a copy of the histogram state.
func (h *BasicHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	s := HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
	h.mu.Unlock()

	if s.Count > 0 {
		s.Mean = s.Sum / float64(s.Count)
	}
	return s
}
