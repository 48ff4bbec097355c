package parmap

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
)

// ErrWorkerFailure matches every *WorkerFailure via errors.Is.
var ErrWorkerFailure = errors.New("parmap: worker failure")

// WorkerFailure reports that a call failed because at least one chunk did
// not complete. Chunk, Start and End describe the lowest-index failed chunk;
// Failed is the number of chunks that failed in the call and Err joins
// their causes in chunk order.
//
// A failure on the sequential path is reported as chunk 0 spanning the
// whole input.
type WorkerFailure struct {
	CallID uuid.UUID
	Chunk  int
	Start  int
	End    int
	Failed int
	Err    error
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("parmap: chunk %d [%d:%d) failed (%d of call %s): %v",
		e.Chunk, e.Start, e.End, e.Failed, e.CallID, e.Err)
}

func (e *WorkerFailure) Unwrap() error {
	return e.Err
}

func (e *WorkerFailure) Is(target error) bool {
	return target == ErrWorkerFailure
}

// Causes returns the cause of every failed chunk, lowest index first.
func (e *WorkerFailure) Causes() []error {
	return GetErrors(e.Err)
}

// IsWorkerFailure reports whether err (or any error in its chain) is a [*WorkerFailure].
func IsWorkerFailure(err error) bool {
	if err == nil {
		return false
	}
	var wf *WorkerFailure
	return errors.As(err, &wf)
}

// FailureOf extracts the first [*WorkerFailure] in err's chain.
func FailureOf(err error) (*WorkerFailure, bool) {
	if err == nil {
		return nil, false
	}

	var wf *WorkerFailure
	if errors.As(err, &wf) {
		return wf, true
	}
	return nil, false
}

// CauseOf unwraps the first [*WorkerFailure] in err's chain and returns its
// underlying cause. If err is not a WorkerFailure, it is returned as-is.
func CauseOf(err error) error {
	if wf, ok := FailureOf(err); ok {
		return wf.Err
	}
	return err
}

// PanicError wraps a value recovered from a panicking transform together
// with the goroutine stack at the point of the panic.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// NewPanicError captures the current goroutine stack. Call it from the
// deferred function that recovered v.
func NewPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
