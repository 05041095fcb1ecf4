package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/metrics"
	"github.com/kcaldas/termfolio/pkg/server/api"
	"github.com/kcaldas/termfolio/pkg/server/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (Server, *events.InMemoryBus) {
	bus := events.NewEventBusWithBuffer(64)
	t.Cleanup(bus.Shutdown)
	m := metrics.New()
	m.Subscribe(bus)

	manager := mock.DummyManager(nil, bus)
	t.Cleanup(manager.CloseAll)

	s, err := NewServer(Config{
		Logger:   logging.NewDisabledLogger(),
		Sessions: manager,
		Metrics:  m,
		Clock:    clock.Fixed(time.Date(2024, 1, 1, 23, 59, 1, 0, time.UTC)),
	})
	require.NoError(t, err)

	return s, bus
}

func serve(t *testing.T, s Server, status int, method, path string, body interface{}) *mock.Response {
	router := s.(*server).router
	if body == nil {
		return mock.Request(t, status, router, method, path, nil)
	}
	return mock.Request(t, status, router, method, path, mock.JSON(t, body))
}

func TestServerRoutes(t *testing.T) {
	s, _ := newTestServer(t)

	response := serve(t, s, http.StatusOK, "GET", "/ping", nil)
	assert.Equal(t, "pong", string(response.Raw))

	var now api.Time
	serve(t, s, http.StatusOK, "GET", "/api/v1/time", nil).Decode(t, &now)
	assert.Equal(t, "23:59:01", now.Time)

	var sess api.Session
	serve(t, s, http.StatusCreated, "POST", "/api/v1/sessions", nil).Decode(t, &sess)

	var result api.CommandResult
	serve(t, s, http.StatusOK, "POST", "/api/v1/sessions/"+sess.ID+"/commands", api.Command{Line: "help"}).Decode(t, &result)
	assert.Len(t, result.Events, 2)

	serve(t, s, http.StatusOK, "GET", "/api/v1/sessions/"+sess.ID+"/", nil)
	serve(t, s, http.StatusNotFound, "GET", "/api/v1/unknown", nil)
}

func TestServerMetricsFollowSessions(t *testing.T) {
	s, _ := newTestServer(t)

	var sess api.Session
	serve(t, s, http.StatusCreated, "POST", "/api/v1/sessions", nil).Decode(t, &sess)
	serve(t, s, http.StatusOK, "POST", "/api/v1/sessions/"+sess.ID+"/commands", api.Command{Line: "neofetch"})
	serve(t, s, http.StatusOK, "POST", "/api/v1/sessions/"+sess.ID+"/commands", api.Command{Line: "nope"})

	assert.Eventually(t, func() bool {
		body := string(serve(t, s, http.StatusOK, "GET", "/metrics", nil).Raw)
		return strings.Contains(body, `termfolio_commands_total{command="neofetch"} 1`) &&
			strings.Contains(body, `termfolio_commands_total{command="unknown"} 1`) &&
			strings.Contains(body, "termfolio_sessions 1")
	}, time.Second, 10*time.Millisecond)

	serve(t, s, http.StatusNoContent, "DELETE", "/api/v1/sessions/"+sess.ID, nil)

	assert.Eventually(t, func() bool {
		body := string(serve(t, s, http.StatusOK, "GET", "/metrics", nil).Raw)
		return strings.Contains(body, `termfolio_sessions_closed_total{reason="deleted"} 1`) &&
			strings.Contains(body, "termfolio_sessions 0")
	}, time.Second, 10*time.Millisecond)
}
