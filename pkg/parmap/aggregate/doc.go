// Package aggregate turns the per-chunk outcomes of a dispatch back into a
// single ordered output, or into a single failure.
package aggregate
