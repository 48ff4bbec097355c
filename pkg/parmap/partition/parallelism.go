package partition

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrParallelismUnavailable is returned when no valid worker count can be determined.
var ErrParallelismUnavailable = errors.New("partition: hardware parallelism unavailable")

// Parallelism reports how many workers the ParallelismBased strategy
// should plan for.
type Parallelism func() (int, error)

// HostParallelism reports runtime.GOMAXPROCS(0).
func HostParallelism() (int, error) {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 0, fmt.Errorf("%w: GOMAXPROCS reported %d", ErrParallelismUnavailable, n)
	}
	return n, nil
}

// Workers queries p (HostParallelism when nil). When the query fails or
// reports fewer than one worker, Workers returns 1 together with an error
// wrapping ErrParallelismUnavailable; callers decide whether to use the
// fallback or surface the error.
func Workers(p Parallelism) (int, error) {
	if p == nil {
		p = HostParallelism
	}

	n, err := p()
	if err != nil {
		if !errors.Is(err, ErrParallelismUnavailable) {
			err = fmt.Errorf("%w: %w", ErrParallelismUnavailable, err)
		}
		return 1, err
	}
	if n < 1 {
		return 1, fmt.Errorf("%w: reported %d workers", ErrParallelismUnavailable, n)
	}
	return n, nil
}
