package parmap

// Func is a pure element transform. It is invoked concurrently from
// several goroutines and must not touch shared mutable state.
type Func[T, R any] func(T) R

// TryFunc is a pure element transform that may fail.
type TryFunc[T, R any] func(T) (R, error)

// Lift adapts an infallible transform to a TryFunc.
func Lift[T, R any](f Func[T, R]) TryFunc[T, R] {
	return func(in T) (R, error) {
		return f(in), nil
	}
}
