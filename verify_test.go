package sortpipe

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		output     string
		opts       []VerifyOption
		ok         bool
		unexpected []int
		unsorted   []int
		missing    int
	}{
		{
			name:   "exact in any order",
			input:  "5 3 1\n2 2\n\n9\n",
			output: "9\n\n2,2\n1,3,5\n",
			ok:     true,
		},
		{
			name:       "tampered line",
			input:      "5 3 1\n2 2\n",
			output:     "1,3,6\n2,2\n",
			unexpected: []int{1},
			missing:    1,
		},
		{
			name:    "missing line",
			input:   "1 2\n3 4\n",
			output:  "1,2\n",
			missing: 1,
		},
		{
			name:       "duplicate input needs duplicate output",
			input:      "2 1\n1 2\n",
			output:     "1,2\n1,2\n1,2\n",
			unexpected: []int{3},
		},
		{
			name:    "duplicate input matched once",
			input:   "2 1\n1 2\n",
			output:  "1,2\n",
			missing: 1,
		},
		{
			name:       "unsorted line",
			input:      "1 2\n",
			output:     "2,1\n",
			unexpected: []int{1},
			unsorted:   []int{1},
			missing:    1,
		},
		{
			name:   "descending",
			input:  "1 3 2\n",
			output: "3,2,1\n",
			opts:   []VerifyOption{VerifyDescending()},
			ok:     true,
		},
		{
			name:   "custom delimiter",
			input:  "3,1\n",
			output: "1,3\n",
			opts:   []VerifyOption{VerifyDelimiter(',')},
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeInput(t, tt.input)
			out := writeInput(t, tt.output)

			report, err := Verify(context.Background(), in, out, tt.opts...)
			require.NoError(t, err)
			require.Equal(t, tt.ok, report.OK(), report.String())
			require.Equal(t, tt.unexpected, report.Unexpected)
			require.Equal(t, tt.unsorted, report.Unsorted)
			require.Equal(t, tt.missing, report.Missing)
		})
	}
}

func TestVerify_Counts(t *testing.T) {
	report, err := Verify(context.Background(), writeInput(t, "1\n2\n3\n"), writeInput(t, "1\n2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, report.InputLines)
	require.Equal(t, 2, report.OutputLines)
	require.Equal(t, "mismatch: 3 input lines, 2 output lines, 0 unexpected, 0 unsorted, 1 missing", report.String())
}

func TestVerify_Errors(t *testing.T) {
	in := writeInput(t, "1\n")

	_, err := Verify(context.Background(), in, filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, ErrOpenInput)

	_, err = Verify(context.Background(), in, in, VerifyDelimiter('\n'))
	require.ErrorIs(t, err, ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Verify(ctx, in, in)
	require.ErrorIs(t, err, context.Canceled)
}
