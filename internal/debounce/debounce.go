// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

// Package debounce provides a cancellable timer that runs only the most
// recently scheduled function after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Stopper is the part of *time.Timer the debouncer needs.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f to run after d. time.AfterFunc satisfies it once
// wrapped; tests substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Timer debounces calls. Every Schedule supersedes the previous one; a
// superseded function never runs, even if its timer already expired and is
// racing for the lock.
type Timer struct {
	mu        sync.Mutex
	delay     time.Duration
	afterFunc AfterFunc
	pending   Stopper
	gen       uint64
}

// Option configures a Timer.
type Option func(*Timer)

// WithAfterFunc replaces the clock used to schedule calls.
func WithAfterFunc(af AfterFunc) Option {
	return func(t *Timer) {
		t.afterFunc = af
	}
}

// New creates a Timer with the given quiet period.
func New(delay time.Duration, opts ...Option) *Timer {
	t := &Timer{delay: delay, afterFunc: realAfterFunc}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Delay returns the quiet period.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Schedule cancels any pending call and schedules fn after the quiet period.
// It reports whether a pending call was superseded.
func (t *Timer) Schedule(fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	superseded := t.stopLocked()
	t.gen++
	gen := t.gen
	t.pending = t.afterFunc(t.delay, func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()
		fn()
	})
	return superseded
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	return t.stopLocked()
}

// Pending reports whether a call is scheduled and has not fired yet.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Timer) stopLocked() bool {
	if t.pending == nil {
		return false
	}
	t.pending.Stop()
	t.pending = nil
	return true
}
