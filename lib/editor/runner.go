// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"context"
	"sync"
)

// Runner enforces the one-background-task rule. It is a slot, not a
// queue: a second task arriving while one runs is rejected with
// ErrBusy rather than waited on, so the shell can tell the user the
// editor is busy instead of silently stacking work.
type Runner struct {
	mu     sync.Mutex
	busy   bool
	cancel context.CancelFunc
}

// NewRunner returns an idle runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Busy reports whether a background task is currently running.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Go starts task on a new goroutine with a cancellable context. If a
// task is already running it returns ErrBusy without starting
// anything. The task owns the slot until it returns; done, when
// non-nil, runs after the slot is released.
func (r *Runner) Go(parent context.Context, task func(context.Context), done func()) error {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return ErrBusy
	}
	ctx, cancel := context.WithCancel(parent)
	r.busy = true
	r.cancel = cancel
	r.mu.Unlock()

	go func() {
		defer func() {
			cancel()
			r.mu.Lock()
			r.busy = false
			r.cancel = nil
			r.mu.Unlock()
			if done != nil {
				done()
			}
		}()
		task(ctx)
	}()
	return nil
}

// Cancel asks the running task, if any, to stop. The slot stays busy
// until the task actually returns.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}
