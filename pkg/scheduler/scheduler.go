package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler delivers payloads after a delay. Every scheduled payload fires
// independently of the others; nothing but Close cancels it.
type Scheduler[T any] struct {
	clock   Clock
	deliver func(T)

	mu      sync.Mutex
	pending map[uint64]Timer
	nextID  uint64
	closed  bool
	idle    chan struct{}
}

// New creates a scheduler that hands fired payloads to deliver
func New[T any](clock Clock, deliver func(T)) *Scheduler[T] {
	if clock == nil {
		clock = RealClock{}
	}
	idle := make(chan struct{})
	close(idle)
	return &Scheduler[T]{
		clock:   clock,
		deliver: deliver,
		pending: make(map[uint64]Timer),
		idle:    idle,
	}
}

// Schedule arranges for payload to be delivered after delay.
// It reports false once the scheduler is closed.
func (s *Scheduler[T]) Schedule(delay time.Duration, payload T) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	if len(s.pending) == 0 {
		s.idle = make(chan struct{})
	}
	s.nextID++
	id := s.nextID
	// the timer may fire before AfterFunc returns
	s.pending[id] = nil
	s.mu.Unlock()

	timer := s.clock.AfterFunc(delay, func() { s.fire(id, payload) })

	s.mu.Lock()
	if _, ok := s.pending[id]; ok {
		s.pending[id] = timer
	}
	s.mu.Unlock()
	return true
}

func (s *Scheduler[T]) fire(id uint64, payload T) {
	s.mu.Lock()
	if _, ok := s.pending[id]; !ok {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.deliver(payload)

	s.mu.Lock()
	delete(s.pending, id)
	s.signalIdleLocked()
	s.mu.Unlock()
}

// Pending reports scheduled payloads that have not been delivered
func (s *Scheduler[T]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Wait blocks until nothing is pending or ctx is done
func (s *Scheduler[T]) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return nil
		}
		idle := s.idle
		s.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close drops everything still pending and refuses new work
func (s *Scheduler[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, timer := range s.pending {
		if timer != nil {
			timer.Stop()
		}
		delete(s.pending, id)
	}
	s.signalIdleLocked()
}

func (s *Scheduler[T]) signalIdleLocked() {
	if len(s.pending) != 0 {
		return
	}
	select {
	case <-s.idle:
	default:
		close(s.idle)
	}
}
