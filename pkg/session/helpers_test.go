package session

import (
	"sync"
	"testing"
	"time"

	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/scheduler"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type published struct {
	topic string
	event interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(topic string, event interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{topic: topic, event: event})
}

func (p *recordingPublisher) byTopic(topic string) []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []interface{}
	for _, e := range p.events {
		if e.topic == topic {
			out = append(out, e.event)
		}
	}
	return out
}

type fixture struct {
	session   *Session
	clock     *scheduler.ManualClock
	store     *preferences.MemoryStore
	publisher *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:     scheduler.NewManualClock(testStart),
		store:     preferences.NewMemoryStore(),
		publisher: &recordingPublisher{},
	}
	f.session = New(Options{
		ID:        "test-session",
		Catalog:   catalog.Default(),
		Store:     f.store,
		Clock:     f.clock,
		Publisher: f.publisher,
		Logger:    logging.NewDisabledLogger(),
	})
	t.Cleanup(f.session.Close)
	return f
}
