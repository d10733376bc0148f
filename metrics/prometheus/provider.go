// Package prometheus adapts metrics.Provider to Prometheus collectors.
package prometheus

import (
	"errors"
	"strings"
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ygrebnov/sortpipe/metrics"
)

const defaultNamespace = "sortpipe"

// Options controls collector configuration.
type Options struct {
	// Namespace prefixes every metric name. Default: "sortpipe".
	Namespace string
	// DurationBuckets are the histogram buckets. Default: prom.DefBuckets.
	DurationBuckets []float64
}

// Provider creates Prometheus collectors on demand and registers them on a Registerer.
// Registration failures other than AlreadyRegistered are kept and reported by Err;
// the instrument still records into an unregistered collector.
type Provider struct {
	reg  prom.Registerer
	opts Options

	mu         sync.Mutex
	counters   map[string]prom.Counter
	gauges     map[string]prom.Gauge
	histograms map[string]prom.Histogram
	errs       []error
}

var _ metrics.Provider = (*Provider)(nil)

// NewProvider returns a Provider registering on reg, or on prom.DefaultRegisterer when reg is nil.
func NewProvider(reg prom.Registerer, opts Options) *Provider {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if opts.Namespace == "" {
		opts.Namespace = defaultNamespace
	}
	if len(opts.DurationBuckets) == 0 {
		opts.DurationBuckets = prom.DefBuckets
	}
	return &Provider{
		reg:        reg,
		opts:       opts,
		counters:   make(map[string]prom.Counter),
		gauges:     make(map[string]prom.Gauge),
		histograms: make(map[string]prom.Histogram),
	}
}

// Counter returns a Prometheus counter. Negative increments are ignored.
func (p *Provider) Counter(name string, opts ...metrics.InstrumentOption) metrics.Counter {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.counters[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		c = register(p, prom.NewCounter(prom.CounterOpts{
			Namespace: p.opts.Namespace,
			Name:      name,
			Help:      help(name, cfg),
		}))
		p.counters[name] = c
	}
	return counter{c}
}

// UpDownCounter returns a Prometheus gauge.
func (p *Provider) UpDownCounter(name string, opts ...metrics.InstrumentOption) metrics.UpDownCounter {
	p.mu.Lock()
	defer p.mu.Unlock()

	g, ok := p.gauges[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		g = register(p, prom.NewGauge(prom.GaugeOpts{
			Namespace: p.opts.Namespace,
			Name:      name,
			Help:      help(name, cfg),
		}))
		p.gauges[name] = g
	}
	return gauge{g}
}

// Histogram returns a Prometheus histogram using the configured buckets.
func (p *Provider) Histogram(name string, opts ...metrics.InstrumentOption) metrics.Histogram {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.histograms[name]
	if !ok {
		cfg := metrics.ApplyOptions(opts)
		h = register(p, prom.NewHistogram(prom.HistogramOpts{
			Namespace: p.opts.Namespace,
			Name:      name,
			Help:      help(name, cfg),
			Buckets:   p.opts.DurationBuckets,
		}))
		p.histograms[name] = h
	}
	return histogram{h}
}

// Err returns the joined registration errors, if any.
func (p *Provider) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

// register must be called with p.mu held.
func register[T prom.Collector](p *Provider, c T) T {
	err := p.reg.Register(c)
	if err == nil {
		return c
	}
	var are prom.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	p.errs = append(p.errs, err)
	return c
}

func help(name string, cfg metrics.InstrumentConfig) string {
	if cfg.Description != "" {
		return cfg.Description
	}
	return strings.ReplaceAll(name, "_", " ")
}

type counter struct{ c prom.Counter }

func (c counter) Add(n int64) {
	if n > 0 {
		c.c.Add(float64(n))
	}
}

type gauge struct{ g prom.Gauge }

func (g gauge) Add(n int64) { g.g.Add(float64(n)) }

type histogram struct{ h prom.Histogram }

func (h histogram) Record(v float64) { h.h.Observe(v) }

// WriteTextfile writes every metric gathered by g to path in the text exposition
// format used by the node exporter textfile collector.
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
