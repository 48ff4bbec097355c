package solo

import (
	"fmt"

	"github.com/ib-77/parmap/pkg/parmap"
)

func Succeed[T any](input T) parmap.Result[T] {
	return parmap.Success(input)
}

func Fail[T any](err error) parmap.Result[T] {
	return parmap.Fail[T](err)
}

// Try applies onTryExecute to a single value. A panic is returned as a
// failed result holding a *parmap.PanicError.
func Try[In any, Out any](input In, onTryExecute parmap.TryFunc[In, Out]) (res parmap.Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = parmap.Fail[Out](parmap.NewPanicError(r))
		}
	}()

	out, err := onTryExecute(input)
	if err != nil {
		return parmap.Fail[Out](err)
	}

	return parmap.Success(out)
}

// MapSlice applies onSuccess to every element of input in order and stops
// at the first failure. offset is the position of input[0] in the caller's
// sequence and only affects error messages.
func MapSlice[In any, Out any](offset int, input []In,
	onSuccess parmap.TryFunc[In, Out]) parmap.Result[[]Out] {

	out := make([]Out, len(input))
	for i, v := range input {
		res := Try(v, onSuccess)
		if res.IsFailure() {
			return Fail[[]Out](fmt.Errorf("element %d: %w", offset+i, res.Err()))
		}
		out[i] = res.Result()
	}

	return Succeed(out)
}
