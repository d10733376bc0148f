package sortpipe

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemError_TagsWorkerAndPreview(t *testing.T) {
	base := errors.New("bad line")
	err := newItemError(base, 3, "1 2 3")

	require.ErrorIs(t, err, base)
	require.Equal(t, "bad line", err.Error())

	w, ok := ExtractWorker(err)
	require.True(t, ok)
	require.Equal(t, 3, w)

	p, ok := ExtractPreview(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	require.Equal(t, "1 2 3", p)

	require.Equal(t, `item(worker=3,line="1 2 3"): bad line`, fmt.Sprintf("%+v", err))
	require.Equal(t, "bad line", fmt.Sprintf("%v", err))
}

func TestItemError_TruncatesLongLines(t *testing.T) {
	err := newItemError(errors.New("x"), 1, strings.Repeat("9", 100))

	p, ok := ExtractPreview(err)
	require.True(t, ok)
	require.Equal(t, strings.Repeat("9", previewLen)+"...", p)
}

func TestItemError_NilAndPlainErrors(t *testing.T) {
	require.NoError(t, newItemError(nil, 1, "x"))

	_, ok := ExtractWorker(errors.New("plain"))
	require.False(t, ok)
	_, ok = ExtractPreview(nil)
	require.False(t, ok)
}
