// Package gate picks the execution path for a call from its input size.
package gate
