package views

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSuperseded is returned by a load whose result was discarded because
	// a newer load of the same view started after it.
	ErrSuperseded = errors.New("view: superseded by a newer request")
	ErrClosed     = errors.New("view: closed")
)

// latest lets only the newest of several overlapping loads update a view.
// Starting a load cancels the one before it.
type latest struct {
	mu     sync.Mutex
	base   context.Context
	stop   context.CancelFunc
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

func newLatest(parent context.Context) *latest {
	base, stop := context.WithCancel(parent)
	return &latest{base: base, stop: stop}
}

func (l *latest) begin() (context.Context, uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, 0, ErrClosed
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	ctx, cancel := context.WithCancel(l.base)
	l.cancel = cancel
	return ctx, l.gen, nil
}

// finish runs apply if gen is still the newest load and reports whether it
// did. apply runs under the lock.
func (l *latest) finish(gen uint64, apply func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if gen != l.gen {
		return ErrSuperseded
	}
	l.cancel()
	l.cancel = nil
	apply()
	return nil
}

// read runs fn under the lock.
func (l *latest) read(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

func (l *latest) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.stop()
}
