package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/parmap/pkg/parmap"
	"github.com/ib-77/parmap/pkg/parmap/aggregate"
	"github.com/ib-77/parmap/pkg/parmap/dispatch"
	"github.com/ib-77/parmap/pkg/parmap/gate"
	"github.com/ib-77/parmap/pkg/parmap/partition"
	"github.com/ib-77/parmap/pkg/parmap/solo"
)

// ErrInvalidThreshold is returned for a negative threshold on non-empty input.
var ErrInvalidThreshold = errors.New("engine: threshold must be non-negative")

// Engine holds a configuration. It owns no goroutines between calls and
// is safe for concurrent use.
type Engine struct {
	cfg config
}

// New creates an Engine from opts.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// Report describes how a call was executed.
type Report struct {
	CallID   uuid.UUID
	Mode     gate.Mode
	Strategy partition.Strategy
	// Chunks is the number of chunks planned; zero on the sequential path.
	Chunks int
	// Workers is the number of goroutines spawned by the call.
	Workers int
	// Degraded is set when the parallelism query failed and the call fell
	// back to a single worker.
	Degraded bool
	Elapsed  time.Duration
}

// ParallelMap maps f over input with a one-off Engine built from opts.
func ParallelMap[T, R any](input []T, threshold int, f parmap.Func[T, R], opts ...Option) ([]R, error) {
	return Map(New(opts...), input, threshold, f)
}

// Map returns [f(x) for x in input]. Inputs no longer than threshold are
// mapped on the calling goroutine; longer ones are chunked and mapped by
// one goroutine per chunk. The output is index-aligned with the input on
// both paths.
//
// A panic in f fails the call with a *parmap.WorkerFailure; no partial
// output is returned.
func Map[T, R any](e *Engine, input []T, threshold int, f parmap.Func[T, R]) ([]R, error) {
	out, _, err := Execute(e, input, threshold, parmap.Lift(f))
	return out, err
}

// TryMap is Map for a transform that can fail. The first error of any
// chunk fails the whole call.
func TryMap[T, R any](e *Engine, input []T, threshold int, f parmap.TryFunc[T, R]) ([]R, error) {
	out, _, err := Execute(e, input, threshold, f)
	return out, err
}

// Execute is TryMap that also reports the execution path taken.
func Execute[T, R any](e *Engine, input []T, threshold int, f parmap.TryFunc[T, R]) ([]R, Report, error) {
	started := time.Now()
	rep := Report{
		CallID:   uuid.New(),
		Strategy: e.cfg.strategy,
	}
	log := e.cfg.logger.With(slog.String("call_id", rep.CallID.String()))

	// empty input maps to empty output for any threshold
	if threshold < 0 && len(input) > 0 {
		return nil, rep, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}

	rep.Mode = gate.Decide(len(input), threshold)
	log.Debug("parmap: gate",
		slog.String("mode", rep.Mode.String()),
		slog.Int("len", len(input)),
		slog.Int("threshold", threshold))

	var (
		out []R
		err error
	)
	switch rep.Mode {
	case gate.Sequential:
		out, err = sequential(rep.CallID, input, f)
	default:
		out, err = parallel(e, &rep, log, input, threshold, f)
	}

	rep.Elapsed = time.Since(started)
	if err != nil {
		if wf, ok := parmap.FailureOf(err); ok {
			log.Debug("parmap: call failed",
				slog.Int("chunk", wf.Chunk),
				slog.Int("failed", wf.Failed),
				slog.Any("causes", wf.Causes()))
		} else {
			log.Debug("parmap: call failed", slog.Any("error", err))
		}
		return nil, rep, err
	}
	return out, rep, nil
}

func sequential[T, R any](callID uuid.UUID, input []T, f parmap.TryFunc[T, R]) ([]R, error) {
	res := solo.MapSlice(0, input, f)
	if res.IsFailure() {
		return nil, &parmap.WorkerFailure{
			CallID: callID,
			Chunk:  0,
			Start:  0,
			End:    len(input),
			Failed: 1,
			Err:    res.Err(),
		}
	}
	return res.Result(), nil
}

func parallel[T, R any](e *Engine, rep *Report, log *slog.Logger,
	input []T, threshold int, f parmap.TryFunc[T, R]) ([]R, error) {

	workers := 0
	if e.cfg.strategy == partition.ParallelismBased {
		n, err := partition.Workers(e.cfg.parallelism)
		if err != nil {
			if e.cfg.strict {
				return nil, err
			}
			log.Warn("parmap: falling back to a single worker", slog.Any("error", err))
			rep.Degraded = true
		}
		workers = n
	}

	chunks, err := partition.Plan(len(input), e.cfg.strategy, threshold, workers)
	if err != nil {
		return nil, err
	}
	rep.Chunks = len(chunks)
	rep.Workers = len(chunks)

	log.Debug("parmap: dispatch",
		slog.String("strategy", e.cfg.strategy.String()),
		slog.Int("chunks", len(chunks)),
		slog.Int("chunk_size", chunks[0].Len()))

	results := dispatch.Dispatch(rep.CallID, input, chunks, f, dispatch.Config{
		Limit:   e.cfg.maxWorkers,
		OnStart: e.cfg.onStart,
		OnDone:  e.cfg.onDone,
	})

	return aggregate.Concat(rep.CallID, chunks, results, len(input))
}
