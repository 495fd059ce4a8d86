// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uiloop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunUntilDispatchesInOrder(t *testing.T) {
	l := New()
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	if err := l.RunUntil(func() bool { return len(got) == 3 }); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected FIFO order, got %v", got)
		}
	}
}

func TestRunUntilReturnsImmediatelyWhenDone(t *testing.T) {
	l := New()
	ran := false
	l.Post(func() { ran = true })
	if err := l.RunUntil(func() bool { return true }); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}
	if ran {
		t.Fatalf("expected task to stay queued")
	}
	if l.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", l.Pending())
	}
}

func TestNestedPumpLeavesRemainingWorkToOuter(t *testing.T) {
	l := New()
	innerDone := false
	outerDone := false
	var order []string
	l.Post(func() {
		order = append(order, "outer-start")
		l.Post(func() {
			order = append(order, "release-inner")
			innerDone = true
		})
		l.Post(func() {
			order = append(order, "after-inner")
			outerDone = true
		})
		if l.Depth() != 1 {
			t.Errorf("expected depth 1 before nesting, got %d", l.Depth())
		}
		if err := l.RunUntil(func() bool { return innerDone }); err != nil {
			t.Errorf("inner RunUntil: %v", err)
		}
		order = append(order, "inner-returned")
	})
	if err := l.RunUntil(func() bool { return outerDone }); err != nil {
		t.Fatalf("outer RunUntil: %v", err)
	}
	want := []string{"outer-start", "release-inner", "inner-returned", "after-inner"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if l.Depth() != 0 {
		t.Fatalf("expected depth 0 after pumps, got %d", l.Depth())
	}
}

func TestPostFromOtherGoroutineWakesPump(t *testing.T) {
	l := New()
	done := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Post(func() { done = true })
	}()
	if err := l.RunUntil(func() bool { return done }); err != nil {
		t.Fatalf("RunUntil: %v", err)
	}
}

func TestCloseStopsPump(t *testing.T) {
	l := New()
	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Close()
	}()
	err := l.RunUntil(func() bool { return false })
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if l.Post(func() {}) {
		t.Fatalf("expected Post to fail on closed loop")
	}
	if !l.Closed() {
		t.Fatalf("expected Closed to report true")
	}
}

func TestRunReturnsContextError(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	l.Post(cancel)
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPostRejectsNil(t *testing.T) {
	l := New()
	if l.Post(nil) {
		t.Fatalf("expected nil task to be rejected")
	}
	var nilLoop *Loop
	if nilLoop.Post(func() {}) {
		t.Fatalf("expected nil loop to reject tasks")
	}
}

func TestDoneClosesWithLoop(t *testing.T) {
	l := New()
	select {
	case <-l.Done():
		t.Fatalf("expected open loop")
	default:
	}
	l.Close()
	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatalf("expected Done to be closed")
	}
}
