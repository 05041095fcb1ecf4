// Package log implements a logging middleware
package log

import (
	"net/http"
	"time"

	"github.com/kcaldas/termfolio/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper
	Logger  logging.Logger
}

var DefaultConfig = Config{
	Skipper: middleware.DefaultSkipper,
}

func New() echo.MiddlewareFunc {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns a middleware for logging HTTP requests
func NewWithConfig(config Config) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultConfig.Skipper
	}

	if config.Logger == nil {
		config.Logger = logging.NewComponentLogger("http")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			start := time.Now()

			req := c.Request()
			res := c.Response()

			path := req.URL.Path
			raw := req.URL.RawQuery

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			if raw != "" {
				path = path + "?" + raw
			}

			args := []any{
				"client", c.RealIP(),
				"method", req.Method,
				"path", path,
				"status", res.Status,
				"status_text", http.StatusText(res.Status),
				"size_bytes", res.Size,
				"latency_ms", latency.Milliseconds(),
			}

			if res.Status >= 400 {
				config.Logger.Warn("request failed", args...)
				return nil
			}

			config.Logger.Debug("request", args...)

			return nil
		}
	}
}
