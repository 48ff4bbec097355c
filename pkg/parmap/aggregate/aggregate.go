package aggregate

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/parmap/pkg/parmap"
	"github.com/ib-77/parmap/pkg/parmap/partition"
)

var (
	// ErrNotCompleted marks a chunk whose worker never stored a result.
	ErrNotCompleted = errors.New("aggregate: chunk did not complete")
	// ErrLengthMismatch marks a chunk result whose length differs from the chunk.
	ErrLengthMismatch = errors.New("aggregate: chunk result length mismatch")
)

// Concat concatenates results in chunk order. results[i] must be the
// outcome of chunks[i] and total the input length.
//
// If any chunk failed, Concat discards every partial result and returns a
// *parmap.WorkerFailure describing the lowest-index failed chunk. Its Err
// joins the causes of all failed chunks in chunk order.
func Concat[R any](callID uuid.UUID, chunks []partition.Chunk,
	results []parmap.Result[[]R], total int) ([]R, error) {

	if len(results) != len(chunks) {
		return nil, &parmap.WorkerFailure{
			CallID: callID,
			Chunk:  min(len(results), len(chunks)),
			Start:  -1,
			End:    -1,
			Failed: max(len(chunks)-len(results), 1),
			Err:    fmt.Errorf("%w: %d results for %d chunks", ErrNotCompleted, len(results), len(chunks)),
		}
	}

	var (
		first *parmap.WorkerFailure
		errs  []error
	)
	for i, c := range chunks {
		if err := check(c, results[i]); err != nil {
			errs = append(errs, err)
			if first == nil {
				first = &parmap.WorkerFailure{
					CallID: callID,
					Chunk:  c.Index,
					Start:  c.Start,
					End:    c.End,
				}
			}
		}
	}
	if first != nil {
		first.Failed = len(errs)
		first.Err = errors.Join(errs...)
		return nil, first
	}

	out := make([]R, 0, total)
	for _, r := range results {
		out = append(out, r.Result()...)
	}
	if len(out) != total {
		return nil, &parmap.WorkerFailure{
			CallID: callID,
			Chunk:  len(chunks) - 1,
			Start:  -1,
			End:    -1,
			Failed: 1,
			Err:    fmt.Errorf("%w: got %d elements, want %d", ErrLengthMismatch, len(out), total),
		}
	}
	return out, nil
}

func check[R any](c partition.Chunk, r parmap.Result[[]R]) error {
	switch {
	case r.IsFailure():
		return r.Err()
	case r.IsEmpty():
		return ErrNotCompleted
	case len(r.Result()) != c.Len():
		return fmt.Errorf("%w: got %d elements, want %d", ErrLengthMismatch, len(r.Result()), c.Len())
	}
	return nil
}
