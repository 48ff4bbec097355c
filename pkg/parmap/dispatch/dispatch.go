package dispatch

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/parmap/pkg/parmap"
	"github.com/ib-77/parmap/pkg/parmap/partition"
	"github.com/ib-77/parmap/pkg/parmap/solo"
)

// ChunkInfo identifies a worker to the observability hooks.
type ChunkInfo struct {
	CallID uuid.UUID
	Chunk  partition.Chunk
}

// Config controls a single Dispatch.
type Config struct {
	// Limit caps how many chunks run at the same time. Zero means every
	// chunk starts immediately.
	Limit int

	// OnStart runs inside the worker before the first element.
	OnStart func(ChunkInfo)
	// OnDone runs inside the worker after the last element, with the
	// chunk's error (nil on success) and wall-clock duration.
	OnDone func(ChunkInfo, error, time.Duration)
}

// Dispatch starts one goroutine per chunk. Each goroutine owns the view
// input[chunk.Start:chunk.End] and applies f to it sequentially. Dispatch
// blocks until every goroutine has returned; results[i] is the outcome of
// chunks[i] regardless of completion order.
//
// A failing chunk does not stop the others.
func Dispatch[T, R any](callID uuid.UUID, input []T, chunks []partition.Chunk,
	f parmap.TryFunc[T, R], cfg Config) []parmap.Result[[]R] {

	results := make([]parmap.Result[[]R], len(chunks))
	if len(chunks) == 0 {
		return results
	}

	var g errgroup.Group
	if cfg.Limit > 0 {
		g.SetLimit(cfg.Limit)
	}

	for i, part := range partition.Split(input, chunks) {
		info := ChunkInfo{CallID: callID, Chunk: chunks[i]}
		g.Go(func() error {
			results[i] = work(info, part, f, cfg)
			// failures stay in results; Wait is only the barrier
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func work[T, R any](info ChunkInfo, part []T, f parmap.TryFunc[T, R], cfg Config) (res parmap.Result[[]R]) {
	defer func() {
		if r := recover(); r != nil {
			res = parmap.Fail[[]R](fmt.Errorf("chunk %d: %w", info.Chunk.Index, parmap.NewPanicError(r)))
		}
	}()

	start := time.Now()
	if cfg.OnStart != nil {
		cfg.OnStart(info)
	}

	res = solo.MapSlice(info.Chunk.Start, part, f)

	if cfg.OnDone != nil {
		cfg.OnDone(info, res.Err(), time.Since(start))
	}
	return res
}
