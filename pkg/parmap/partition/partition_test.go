package partition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_ParallelismBased(t *testing.T) {
	t.Parallel()

	chunks, err := Plan(10, ParallelismBased, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, []Chunk{
		{Index: 0, Start: 0, End: 3},
		{Index: 1, Start: 3, End: 6},
		{Index: 2, Start: 6, End: 9},
		{Index: 3, Start: 9, End: 10},
	}, chunks)
}

func TestPlan_ParallelismBased_MoreWorkersThanElements(t *testing.T) {
	t.Parallel()

	chunks, err := Plan(4, ParallelismBased, 2, 16)
	require.NoError(t, err)

	require.Len(t, chunks, 4)
	for i, c := range chunks {
		assert.Equal(t, 1, c.Len(), "chunk %d", i)
	}
}

func TestPlan_FixedSize(t *testing.T) {
	t.Parallel()

	chunks, err := Plan(6, FixedSize, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []Chunk{
		{Index: 0, Start: 0, End: 2},
		{Index: 1, Start: 2, End: 4},
		{Index: 2, Start: 4, End: 6},
	}, chunks)
}

func TestPlan_FixedSize_ShortLastChunk(t *testing.T) {
	t.Parallel()

	chunks, err := Plan(7, FixedSize, 3, 0)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, Chunk{Index: 2, Start: 6, End: 7}, chunks[2])
}

func TestPlan_FixedSize_ZeroThresholdUsesSingleElementChunks(t *testing.T) {
	t.Parallel()

	chunks, err := Plan(3, FixedSize, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, []Chunk{
		{Index: 0, Start: 0, End: 1},
		{Index: 1, Start: 1, End: 2},
		{Index: 2, Start: 2, End: 3},
	}, chunks)
}

func TestPlan_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{ParallelismBased, FixedSize, Strategy(7)} {
		for _, workers := range []int{-1, 0, 4} {
			for _, threshold := range []int{0, 5} {
				chunks, err := Plan(0, s, threshold, workers)
				require.NoError(t, err, "s=%s w=%d t=%d", s, workers, threshold)
				assert.Empty(t, chunks, "s=%s w=%d t=%d", s, workers, threshold)
			}
		}
	}
}

func TestPlan_InvalidWorkers(t *testing.T) {
	t.Parallel()

	for _, w := range []int{0, -3} {
		_, err := Plan(10, ParallelismBased, 2, w)
		assert.ErrorIs(t, err, ErrParallelismUnavailable)
	}
}

func TestPlan_UnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := Plan(10, Strategy(7), 2, 4)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.False(t, Strategy(7).Valid())
}

func TestPlan_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := Plan(1001, ParallelismBased, 0, 7)
	require.NoError(t, err)
	b, err := Plan(1001, ParallelismBased, 0, 7)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// Concatenating all chunks must reproduce the input with no gaps or overlaps.
func TestSplit_CoversInputExactly(t *testing.T) {
	t.Parallel()

	for _, s := range []Strategy{ParallelismBased, FixedSize} {
		for n := 0; n <= 67; n++ {
			for _, param := range []int{0, 1, 2, 3, 8, 64, 100} {
				input := make([]int, n)
				for i := range input {
					input[i] = i
				}

				workers := max(param, 1)
				chunks, err := Plan(n, s, param, workers)
				require.NoError(t, err)

				if n > 0 {
					require.NotEmpty(t, chunks)
				}

				var joined []int
				next := 0
				for i, part := range Split(input, chunks) {
					assert.Equal(t, i, chunks[i].Index)
					assert.Equal(t, next, chunks[i].Start, "gap or overlap: n=%d s=%s p=%d", n, s, param)
					assert.Equal(t, chunks[i].Len(), len(part))
					next = chunks[i].End
					joined = append(joined, part...)
				}
				assert.Equal(t, n, next)
				if n == 0 {
					assert.Empty(t, joined)
				} else {
					assert.Equal(t, input, joined, "n=%d s=%s p=%d", n, s, param)
				}
			}
		}
	}
}

func TestSplit_ViewsCannotGrowIntoNeighbour(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4}
	chunks, err := Plan(len(input), FixedSize, 2, 0)
	require.NoError(t, err)

	parts := Split(input, chunks)
	_ = append(parts[0], 99)

	assert.Equal(t, []int{1, 2, 3, 4}, input)
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	n, err := Workers(func() (int, error) { return 6, nil })
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = Workers(nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}

func TestWorkers_FallsBackToOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Parallelism
	}{
		{"query error", func() (int, error) { return 0, errors.New("no cgroup info") }},
		{"zero", func() (int, error) { return 0, nil }},
		{"negative", func() (int, error) { return -2, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := Workers(tt.p)
			assert.Equal(t, 1, n)
			assert.ErrorIs(t, err, ErrParallelismUnavailable)
		})
	}
}
