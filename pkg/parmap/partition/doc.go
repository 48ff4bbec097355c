// Package partition splits an input of length n into ordered, contiguous,
// non-overlapping chunks.
//
// Two strategies are supported:
//   - ParallelismBased: one chunk per worker, size ceil(n / workers)
//   - FixedSize: chunks of exactly threshold elements (at least 1)
//
// Chunk boundaries depend only on (n, strategy, threshold, workers).
package partition
