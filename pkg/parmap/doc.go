// Package parmap holds the types shared by the parallel-map engine: the
// per-chunk Result, the transform function types and the failure values
// reported to callers.
//
// The engine itself lives in package engine; gate, partition, solo,
// dispatch and aggregate are its building blocks and can be used on their
// own.
package parmap
