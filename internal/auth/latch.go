package auth

import (
	"context"
	"sync"
)

// Latch is a one-shot signal carrying a result. The platform callback calls
// Release exactly once; the caller blocks in Wait until then.
type Latch struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewLatch creates an unreleased latch.
func NewLatch() *Latch {
	return &Latch{done: make(chan struct{})}
}

// Release stores err and wakes every waiter. Only the first call has effect.
func (l *Latch) Release(err error) {
	l.once.Do(func() {
		l.err = err
		close(l.done)
	})
}

// Released reports whether Release has been called.
func (l *Latch) Released() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the latch is released and returns the released error,
// or returns ctx.Err() if the context ends first.
func (l *Latch) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return l.err
	default:
	}
	select {
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
