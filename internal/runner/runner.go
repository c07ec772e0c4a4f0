// Package runner executes one external-tool call per worker goroutine and
// reports its single outcome through a one-shot channel. The UI polls the
// handle between busy-indicator frames instead of ever blocking on the
// worker, so the render loop stays responsive while a privileged command
// runs.
package runner

import (
	"errors"

	"github.com/tassiovirginio/envy-tui/internal/logging"
)

// ErrDisconnected reports a worker that exited without producing a result.
var ErrDisconnected = errors.New("command failed unexpectedly")

// Result is a worker's terminal outcome.
type Result[T any] struct {
	Value T
	Err   error
}

// Handle receives the single result of a spawned worker.
type Handle[T any] struct {
	ch        chan Result[T]
	delivered bool
}

// Spawn runs work in its own goroutine and returns a handle for polling.
// The worker owns its input snapshot and communicates only through the
// handle; a panic inside work is contained and surfaces as
// ErrDisconnected on the next poll.
func Spawn[T any](work func() (T, error)) *Handle[T] {
	h := &Handle[T]{ch: make(chan Result[T], 1)}
	go func() {
		defer close(h.ch)
		defer func() {
			if r := recover(); r != nil {
				logging.Logger.Error("command worker panicked", "recover", r)
			}
		}()
		v, err := work()
		h.ch <- Result[T]{Value: v, Err: err}
	}()
	return h
}

// Poll performs a non-blocking check for the worker's outcome. The first
// call that observes completion returns it with true; every later call
// returns false. A worker that exited without sending (severed channel)
// yields ErrDisconnected.
func (h *Handle[T]) Poll() (Result[T], bool) {
	if h.delivered {
		return Result[T]{}, false
	}
	select {
	case res, ok := <-h.ch:
		h.delivered = true
		if !ok {
			res.Err = ErrDisconnected
		}
		return res, true
	default:
		return Result[T]{}, false
	}
}
