package handler

import (
	"net/http"

	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/server/api"

	"github.com/labstack/echo/v4"
)

// TimeHandler serves the status bar clock
type TimeHandler struct {
	clock clock.Clock
}

func NewTime(c clock.Clock) *TimeHandler {
	return &TimeHandler{clock: c}
}

// Now returns the current time as H:M:S
func (h *TimeHandler) Now(c echo.Context) error {
	return c.JSON(http.StatusOK, api.Time{Time: clock.Status(h.clock)})
}
