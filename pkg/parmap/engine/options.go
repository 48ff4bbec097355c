package engine

import (
	"log/slog"
	"time"

	"github.com/ib-77/parmap/pkg/parmap/dispatch"
	"github.com/ib-77/parmap/pkg/parmap/partition"
)

type config struct {
	strategy    partition.Strategy
	parallelism partition.Parallelism
	strict      bool
	maxWorkers  int
	logger      *slog.Logger
	onStart     func(dispatch.ChunkInfo)
	onDone      func(dispatch.ChunkInfo, error, time.Duration)
}

// Option configures an [Engine].
type Option func(*config)

func defaultConfig() config {
	return config{
		strategy:    partition.ParallelismBased,
		parallelism: partition.HostParallelism,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithStrategy selects the chunking strategy. It panics if s is not a
// known Strategy value.
func WithStrategy(s partition.Strategy) Option {
	return func(c *config) {
		if !s.Valid() {
			panic("engine: invalid strategy")
		}
		c.strategy = s
	}
}

// WithParallelism replaces the hardware parallelism query used by the
// ParallelismBased strategy.
func WithParallelism(p partition.Parallelism) Option {
	return func(c *config) {
		if p == nil {
			p = partition.HostParallelism
		}
		c.parallelism = p
	}
}

// WithStrictParallelism makes a failed parallelism query fail the call
// with partition.ErrParallelismUnavailable instead of falling back to a
// single worker.
func WithStrictParallelism() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithMaxWorkers caps how many chunks of one call run at the same time.
// Zero (the default) starts every chunk at once.
// WithMaxWorkers panics if n is negative.
func WithMaxWorkers(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic("engine: max workers must be non-negative")
		}
		c.maxWorkers = n
	}
}

// WithLogger sets the logger for path decisions and failures. A nil
// logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}

// WithOnChunkStart registers a hook invoked inside each worker before it
// processes its chunk. It is never called on the sequential path.
func WithOnChunkStart(fn func(dispatch.ChunkInfo)) Option {
	return func(c *config) {
		c.onStart = fn
	}
}

// WithOnChunkDone registers a hook invoked inside each worker after its
// chunk, with the chunk error (nil on success) and duration.
func WithOnChunkDone(fn func(dispatch.ChunkInfo, error, time.Duration)) Option {
	return func(c *config) {
		c.onDone = fn
	}
}
