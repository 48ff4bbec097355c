// Package solo provides the synchronous primitives of the engine: wrapping
// values into parmap.Result and applying a transform over a slice on the
// calling goroutine.
//
// MapSlice is both the sequential path of the engine and the body of every
// parallel worker, so both paths share the same element loop, error
// annotation and panic recovery.
package solo
