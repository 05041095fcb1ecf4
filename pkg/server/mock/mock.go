package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/scheduler"
	"github.com/kcaldas/termfolio/pkg/server/api"
	"github.com/kcaldas/termfolio/pkg/server/errorhandler"
	"github.com/kcaldas/termfolio/pkg/server/validator"
	"github.com/kcaldas/termfolio/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// DummyManager returns a session manager over the embedded catalog. Sessions
// share the given clock and keep their theme in memory.
func DummyManager(clock scheduler.Clock, publisher events.Publisher) *session.Manager {
	factory := func(id string) (*session.Session, error) {
		return session.New(session.Options{
			ID:        id,
			Catalog:   catalog.Default(),
			Store:     preferences.NewMemoryStore(),
			Clock:     clock,
			Publisher: publisher,
			Logger:    logging.NewDisabledLogger(),
		}), nil
	}

	var opts []session.ManagerOption
	if clock != nil {
		opts = append(opts, session.WithNow(clock.Now))
	}

	return session.NewManager(factory, publisher, opts...)
}

func DummyClock() *scheduler.ManualClock {
	return scheduler.NewManualClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func DummyEcho() *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
	router.Logger.SetOutput(io.Discard)
	router.Validator = validator.New()

	return router
}

type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Raw     []byte
	Data    interface{}
}

// Decode unmarshals the raw response body into v
func (r *Response) Decode(t require.TestingT, v interface{}) {
	require.NoError(t, json.Unmarshal(r.Raw, v), string(r.Raw))
}

func Request(t require.TestingT, httpstatus int, router *echo.Echo, method, path string, data io.Reader) *Response {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, data)
	if data != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	response := CheckResponse(t, w.Result())

	require.Equal(t, httpstatus, w.Code, string(response.Raw))

	return response
}

func CheckResponse(t require.TestingT, res *http.Response) *Response {
	response := &Response{
		Code: res.StatusCode,
	}

	body, err := io.ReadAll(res.Body)
	require.Equal(t, nil, err)
	res.Body.Close()

	response.Raw = body

	if strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		err := json.Unmarshal(body, &response.Data)
		require.Equal(t, nil, err)
	} else {
		response.Data = body
	}

	if response.Code >= http.StatusBadRequest {
		var apierr api.Error
		if json.Unmarshal(body, &apierr) == nil {
			response.Message = apierr.Message
		}
	}

	return response
}

// JSON encodes v as a request body
func JSON(t require.TestingT, v interface{}) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)

	return strings.NewReader(string(data))
}
