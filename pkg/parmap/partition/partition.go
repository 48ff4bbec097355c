package partition

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for a Strategy outside the defined values.
var ErrUnknownStrategy = errors.New("partition: unknown strategy")

// Strategy selects how chunk sizes are computed.
type Strategy int

const (
	ParallelismBased Strategy = iota
	FixedSize
)

func (s Strategy) String() string {
	switch s {
	case ParallelismBased:
		return "parallelism"
	case FixedSize:
		return "fixed"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

func (s Strategy) Valid() bool {
	return s == ParallelismBased || s == FixedSize
}

// Chunk is the half-open range [Start, End) of the input handled by one
// worker. Index is the chunk's position in the plan.
type Chunk struct {
	Index int
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start
}

// ChunkSize returns the number of elements per chunk for an input of
// length n. The last chunk of a plan may be shorter.
func ChunkSize(n int, s Strategy, threshold, workers int) (int, error) {
	switch s {
	case ParallelismBased:
		if workers < 1 {
			return 0, fmt.Errorf("%w: %d workers", ErrParallelismUnavailable, workers)
		}
		return max((n+workers-1)/workers, 1), nil
	case FixedSize:
		// a zero threshold would mean zero-sized chunks
		return max(threshold, 1), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// Plan computes the chunks covering [0, n) exactly once, in order.
// An empty input yields no chunks whatever the other arguments are.
func Plan(n int, s Strategy, threshold, workers int) ([]Chunk, error) {
	if n <= 0 {
		return nil, nil
	}
	size, err := ChunkSize(n, s, threshold, workers)
	if err != nil {
		return nil, err
	}

	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: start,
			End:   min(start+size, n),
		})
	}
	return chunks, nil
}

// Split returns the views of input described by chunks. Each view has its
// capacity clipped to the chunk so appending to it cannot reach a neighbour.
func Split[T any](input []T, chunks []Chunk) [][]T {
	parts := make([][]T, len(chunks))
	for i, c := range chunks {
		parts[i] = input[c.Start:c.End:c.End]
	}
	return parts
}
