package internal

import (
	"sync"
	"sync/atomic"
)

const noOwner int64 = -1

// Scheduler serializes the renders of one root. Updates scheduled by the
// goroutine currently rendering are queued and flushed once the running
// render has committed; updates from other goroutines wait for it.
type Scheduler struct {
	mu sync.Mutex

	// goroutine running renders, noOwner when idle
	owner atomic.Int64

	// set when an update is waiting for a render, guarded by mu
	scheduled bool

	maxPasses int
}

func NewScheduler(maxPasses int) *Scheduler {
	s := &Scheduler{maxPasses: maxPasses}
	s.owner.Store(noOwner)
	return s
}

// Schedule runs enqueue while holding the root, then flushes until no update
// is pending. enqueue reports whether it queued anything; if not, nothing is
// flushed. Called from within a flush on the same goroutine, it only
// enqueues.
func (s *Scheduler) Schedule(enqueue func() bool, flush func() error) error {
	if s.owner.Load() == goroutineID() {
		if enqueue() {
			s.scheduled = true
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner.Store(goroutineID())
	defer s.owner.Store(noOwner)

	if !enqueue() {
		return nil
	}
	s.scheduled = true

	return s.run(flush)
}

// Running reports whether the calling goroutine is inside a flush.
func (s *Scheduler) Running() bool {
	return s.owner.Load() == goroutineID()
}

func (s *Scheduler) run(flush func() error) error {
	defer func() { s.scheduled = false }()

	for passes := 0; s.scheduled; passes++ {
		if passes == s.maxPasses {
			return ErrTooManyRerenders
		}

		s.scheduled = false

		if err := flush(); err != nil {
			return err
		}
	}

	return nil
}
