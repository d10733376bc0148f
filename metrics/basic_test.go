package metrics

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicProvider_CounterReusedAndAccumulates(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter(LinesRead, WithDescription("lines read"), WithUnit("1"))
	c2 := p.Counter(LinesRead)
	require.Same(t, c1, c2)

	c1.Add(3)
	c2.Add(2)
	require.EqualValues(t, 5, p.Value(LinesRead))

	p.Counter("other").Add(1)
	require.Equal(t, map[string]int64{LinesRead: 5, "other": 1}, p.Snapshot())

	cfg, ok := p.Config(LinesRead)
	require.True(t, ok)
	require.Equal(t, InstrumentConfig{Description: "lines read", Unit: "1"}, cfg)
}

func TestBasicProvider_UpDownCounter(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter(WorkersBusy)
	u.Add(+3)
	u.Add(-1)
	u.Add(+10)
	require.EqualValues(t, 12, p.Value(WorkersBusy))
	require.Zero(t, p.Value("missing"))
}

func TestBasicProvider_HistogramRecordsStats(t *testing.T) {
	p := NewBasicProvider()
	h := p.Histogram(ItemDurationSeconds)
	require.Same(t, h, p.Histogram(ItemDurationSeconds))

	h.Record(0.1)
	h.Record(0.3)
	h.Record(0.2)

	s, ok := p.HistogramSnapshot(ItemDurationSeconds)
	require.True(t, ok)
	require.EqualValues(t, 3, s.Count)
	require.Equal(t, 0.1, s.Min)
	require.Equal(t, 0.3, s.Max)
	require.InDelta(t, 0.6, s.Sum, 1e-9)
	require.InDelta(t, 0.2, s.Mean, 1e-9)

	_, ok = p.HistogramSnapshot("missing")
	require.False(t, ok)
}

func TestBasicHistogram_NegativeFirstValue(t *testing.T) {
	var h BasicHistogram
	h.Record(-5)
	h.Record(-1)
	s := h.Snapshot()
	require.Equal(t, -5.0, s.Min)
	require.Equal(t, -1.0, s.Max)
}

func TestBasicProvider_ConcurrentAdds(t *testing.T) {
	p := NewBasicProvider()

	workers := runtime.NumCPU() * 2
	iters := 1000
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range iters {
				p.Counter(LinesWritten).Add(1)
				p.UpDownCounter(WorkersBusy).Add(1)
				p.UpDownCounter(WorkersBusy).Add(-1)
				p.Histogram(ItemDurationSeconds).Record(0.01)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, workers*iters, p.Value(LinesWritten))
	require.Zero(t, p.Value(WorkersBusy))
	s, _ := p.HistogramSnapshot(ItemDurationSeconds)
	require.EqualValues(t, workers*iters, s.Count)
}

func TestNoopProvider(t *testing.T) {
	var p Provider = NoopProvider{}
	p.Counter("a").Add(1)
	p.UpDownCounter("b").Add(-1)
	p.Histogram("c").Record(1)
}
