// Package dispatch runs one goroutine per chunk and collects every chunk's
// outcome by chunk position.
package dispatch
