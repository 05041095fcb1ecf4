package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/logging"
)

var ErrSessionNotFound = errors.New("session not found")

// Factory builds a session for a freshly allocated id
type Factory func(id string) (*Session, error)

// Manager holds live sessions keyed by id
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	factory   Factory
	publisher events.Publisher
	now       func() time.Time
	onRemove  func(id string)
	logger    logging.Logger
}

type ManagerOption func(*Manager)

// WithRemoveHook runs fn after a session is closed and dropped
func WithRemoveHook(fn func(id string)) ManagerOption {
	return func(m *Manager) {
		m.onRemove = fn
	}
}

// WithNow overrides the time source used for idle sweeps
func WithNow(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(factory Factory, publisher events.Publisher, opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		factory:   factory,
		publisher: publisher,
		now:       time.Now,
		logger:    logging.NewComponentLogger("session-manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Create() (*Session, error) {
	id := uuid.NewString()
	s, err := m.factory(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	events.PublishEvent(m.publisher, events.SessionCreatedEvent{SessionID: id})
	m.logger.Debug("session created", "session", id)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	return m.remove(id, "deleted")
}

// IDs lists live session ids in sorted order
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than idle and returns how many went
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	var expired []string
	m.mu.RLock()
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	removed := 0
	for _, id := range expired {
		if m.expire(id, cutoff) == nil {
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("expired idle sessions", "count", removed)
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, idle, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(idle)
		}
	}
}

// CloseAll closes and drops every session
func (m *Manager) CloseAll() {
	for _, id := range m.IDs() {
		_ = m.remove(id, "shutdown")
	}
}

func (m *Manager) remove(id, reason string) error {
	return m.removeIf(id, reason, nil)
}

// expire drops id only if it is still idle at cutoff. A session touched
// after the sweep listed it stays.
func (m *Manager) expire(id string, cutoff time.Time) error {
	return m.removeIf(id, "idle", func(s *Session) bool {
		return s.LastActive().Before(cutoff)
	})
}

var errSessionActive = errors.New("session active")

func (m *Manager) removeIf(id, reason string, cond func(*Session) bool) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok && cond != nil && !cond(s) {
		m.mu.Unlock()
		return errSessionActive
	}
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	if m.onRemove != nil {
		m.onRemove(id)
	}
	events.PublishEvent(m.publisher, events.SessionClosedEvent{SessionID: id, Reason: reason})
	m.logger.Debug("session removed", "session", id, "reason", reason)
	return nil
}
