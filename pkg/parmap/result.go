package parmap

// Result is the outcome of one unit of work: either a value or an error.
type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err: err,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// IsEmpty reports whether r is the zero Result, i.e. nothing was ever
// stored in it.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}
