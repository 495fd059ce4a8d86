// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uiloop provides the single-threaded UI execution context that
// dialogs and their host windows share.
//
// Any goroutine may Post work; only the goroutine currently pumping the loop
// (Run or RunUntil) executes it. Pumps nest: a task may call RunUntil to wait
// for a condition while the loop keeps dispatching other tasks underneath it.
package uiloop

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when pumping a loop that has been closed.
var ErrClosed = errors.New("ui loop closed")

// Loop is a FIFO task queue drained by whichever goroutine pumps it.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	closed  chan struct{}
	once    sync.Once

	// depth is only touched by the pumping goroutine.
	depth int
}

// New creates an empty loop.
func New() *Loop {
	return &Loop{
		wake:   make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// Post enqueues fn. It reports false if the loop is closed or fn is nil.
func (l *Loop) Post(fn func()) bool {
	if l == nil || fn == nil {
		return false
	}
	select {
	case <-l.closed:
		return false
	default:
	}
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Close stops the loop. Pending tasks are dropped and active pumps return
// ErrClosed.
func (l *Loop) Close() {
	l.once.Do(func() {
		close(l.closed)
		l.mu.Lock()
		l.pending = nil
		l.mu.Unlock()
	})
}

// Closed reports whether Close has been called.
func (l *Loop) Closed() bool {
	select {
	case <-l.closed:
		return true
	default:
		return false
	}
}

// Done is closed when the loop is closed.
func (l *Loop) Done() <-chan struct{} {
	return l.closed
}

// Depth reports how many pumps are active on the loop goroutine.
func (l *Loop) Depth() int {
	return l.depth
}

// Pending reports the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// RunUntil dispatches tasks on the calling goroutine until done reports true.
// done is checked before waiting and after every task, so a nested pump
// returns as soon as its own condition holds.
func (l *Loop) RunUntil(done func() bool) error {
	return l.pump(nil, done)
}

// Run dispatches tasks until ctx is done or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	err := l.pump(ctx.Done(), func() bool { return false })
	if errors.Is(err, errStopped) {
		return ctx.Err()
	}
	return err
}

var errStopped = errors.New("stopped")

func (l *Loop) pump(stop <-chan struct{}, done func() bool) error {
	l.depth++
	defer func() { l.depth-- }()
	for {
		if done() {
			return nil
		}
		if fn, ok := l.next(); ok {
			fn()
			continue
		}
		select {
		case <-l.closed:
			return ErrClosed
		case <-stop:
			return errStopped
		case <-l.wake:
		}
	}
}

func (l *Loop) next() (func(), bool) {
	select {
	case <-l.closed:
		return nil, false
	default:
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil, false
	}
	fn := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return fn, true
}
