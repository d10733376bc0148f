package sortpipe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/sortpipe/metrics"
	"github.com/ygrebnov/sortpipe/queue"
)

func newTestDispatcher(src io.Reader) (*dispatcher, *queue.Queue, *metrics.BasicProvider) {
	q := queue.New()
	mp := metrics.NewBasicProvider()
	return &dispatcher{
		src:    src,
		queue:  q,
		inst:   newInstruments(mp),
		logger: slog.New(slog.DiscardHandler),
	}, q, mp
}

func drain(q *queue.Queue) []string {
	var items []string
	for {
		item, ok := q.Get()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

func TestDispatcher_QueuesEveryLineThenFinishes(t *testing.T) {
	d, q, mp := newTestDispatcher(strings.NewReader("5 3 1\n2 2\n\n9"))

	n, err := d.run(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []string{"5 3 1", "2 2", "", "9"}, drain(q))
	require.True(t, q.IsFinished())
	require.Equal(t, int64(4), mp.Value(metrics.LinesRead))
	require.Equal(t, int64(4), mp.Value(metrics.QueueDepth))
}

func TestDispatcher_StripsCarriageReturns(t *testing.T) {
	d, q, _ := newTestDispatcher(strings.NewReader("1 2\r\n3\r\n"))

	_, err := d.run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1 2", "3"}, drain(q))
}

func TestDispatcher_ReadErrorStillFinishes(t *testing.T) {
	errBoom := errors.New("boom")
	src := io.MultiReader(strings.NewReader("1 2\n3\n"), iotest.ErrReader(errBoom))
	d, q, _ := newTestDispatcher(src)

	n, err := d.run(context.Background())
	require.ErrorIs(t, err, ErrReadInput)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, int64(2), n)
	require.Equal(t, []string{"1 2", "3"}, drain(q))
}

func TestDispatcher_StopsOnCanceledContext(t *testing.T) {
	d, q, _ := newTestDispatcher(strings.NewReader("1\n2\n3\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := d.run(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.True(t, q.IsFinished())
}
