// Package collatz provides a bounded Collatz reducer, a transform whose
// per-element cost varies with the input.
package collatz

// DefaultCap is the iteration cap of the reference reducer.
const DefaultCap = 8

// Reduce runs at most k Collatz steps from n: halve when even, 3n+1 when
// odd. If 1 is reached within the cap it returns the number of steps taken,
// otherwise the value after the k-th step.
func Reduce(n, k uint64) uint64 {
	value := n
	var iterations uint64

	for value != 1 && iterations < k {
		if value%2 == 0 {
			value /= 2
		} else {
			value = value*3 + 1
		}
		iterations++
	}

	if iterations >= k {
		return value
	}
	return iterations
}

// Reducer returns Reduce with the cap fixed to k.
func Reducer(k uint64) func(uint64) uint64 {
	return func(n uint64) uint64 {
		return Reduce(n, k)
	}
}
