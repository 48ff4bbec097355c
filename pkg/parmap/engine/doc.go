// Package engine is the adaptive parallel map.
//
// A call first asks the gate whether the input is small enough to map on
// the calling goroutine. Larger inputs are cut into contiguous chunks by
// the partitioner, each chunk is mapped by its own goroutine, and the
// aggregator joins the chunk outputs back in input order.
//
// Usage:
//
//	out, err := engine.ParallelMap(values, 500, collatz.Reducer(8))
//
// or, to reuse a configuration:
//
//	e := engine.New(engine.WithStrategy(partition.FixedSize), engine.WithLogger(logger))
//	out, err := engine.Map(e, values, 500, transform)
//
// Goroutines never outlive a call, and there is no cancellation: a call
// returns after every worker has finished. Any worker failure fails the
// whole call with a *parmap.WorkerFailure and no partial output.
package engine
