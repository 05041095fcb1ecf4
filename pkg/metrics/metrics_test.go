package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kcaldas/termfolio/pkg/events"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountBusEvents(t *testing.T) {
	bus := events.NewEventBusWithBuffer(16)
	m := New()
	m.Subscribe(bus)

	events.PublishEvent(bus, events.SessionCreatedEvent{SessionID: "a"})
	events.PublishEvent(bus, events.SessionCreatedEvent{SessionID: "b"})
	events.PublishEvent(bus, events.CommandExecutedEvent{SessionID: "a", Command: "ls", Known: true})
	events.PublishEvent(bus, events.CommandExecutedEvent{SessionID: "a", Command: "ls", Known: true})
	events.PublishEvent(bus, events.CommandExecutedEvent{SessionID: "b", Command: "unknown"})
	events.PublishEvent(bus, events.ThemeChangedEvent{SessionID: "a", Theme: "light"})
	events.PublishEvent(bus, events.OutputAppendedEvent{SessionID: "a", Seq: 0})
	events.PublishEvent(bus, events.OutputClearedEvent{SessionID: "a", Through: 0})
	events.PublishEvent(bus, events.SessionClosedEvent{SessionID: "b", Reason: "idle"})

	bus.Shutdown()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.commands.WithLabelValues("ls")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.commands.WithLabelValues("unknown")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.themes.WithLabelValues("light")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessions))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.closed.WithLabelValues("idle")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.outputs))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.outputClears))
}

func TestMetricsHTTPHandler(t *testing.T) {
	m := New()
	m.commands.WithLabelValues("help").Inc()

	srv := httptest.NewServer(m.HTTPHandler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `termfolio_commands_total{command="help"} 1`)
}
