// Package server exposes terminal sessions over HTTP
package server

import (
	"net/http"

	"github.com/kcaldas/termfolio/pkg/clock"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/metrics"
	"github.com/kcaldas/termfolio/pkg/server/errorhandler"
	"github.com/kcaldas/termfolio/pkg/server/handler"
	"github.com/kcaldas/termfolio/pkg/server/validator"
	"github.com/kcaldas/termfolio/pkg/session"

	mwlog "github.com/kcaldas/termfolio/pkg/server/middleware/log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Config struct {
	Logger   logging.Logger
	Sessions *session.Manager
	Metrics  metrics.Reader
	Clock    clock.Clock
}

type Server interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type server struct {
	logger logging.Logger

	handler struct {
		session    *handler.SessionHandler
		time       *handler.TimeHandler
		ping       *handler.PingHandler
		prometheus *handler.PrometheusHandler
	}

	router *echo.Echo
}

func NewServer(config Config) (Server, error) {
	s := &server{
		logger: config.Logger,
	}

	if s.logger == nil {
		s.logger = logging.NewComponentLogger("http")
	}

	if config.Clock == nil {
		config.Clock = clock.SystemClock{}
	}

	s.handler.session = handler.NewSession(config.Sessions)
	s.handler.time = handler.NewTime(config.Clock)
	s.handler.ping = handler.NewPing()

	if config.Metrics != nil {
		s.handler.prometheus = handler.NewPrometheus(config.Metrics.HTTPHandler())
	}

	s.router = echo.New()
	s.router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
	s.router.Validator = validator.New()
	s.router.HideBanner = true
	s.router.HidePort = true

	s.router.Use(mwlog.NewWithConfig(mwlog.Config{
		Logger: s.logger,
	}))
	s.router.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			s.logger.Error("handler panicked", "error", err, "path", c.Request().URL.Path)
			return err
		},
	}))
	s.router.Pre(middleware.RemoveTrailingSlash())

	s.setRoutes()

	return s, nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) setRoutes() {
	s.router.GET("/ping", s.handler.ping.Ping)

	if s.handler.prometheus != nil {
		s.router.GET("/metrics", s.handler.prometheus.Metrics)
	}

	v1 := s.router.Group("/api/v1")

	v1.GET("/time", s.handler.time.Now)

	v1.POST("/sessions", s.handler.session.Create)
	v1.GET("/sessions/:id", s.handler.session.Get)
	v1.DELETE("/sessions/:id", s.handler.session.Delete)
	v1.POST("/sessions/:id/commands", s.handler.session.Command)
	v1.POST("/sessions/:id/history/previous", s.handler.session.Previous)
	v1.POST("/sessions/:id/history/next", s.handler.session.Next)
	v1.POST("/sessions/:id/autocomplete", s.handler.session.Autocomplete)
	v1.GET("/sessions/:id/output", s.handler.session.Output)
	v1.GET("/sessions/:id/projects/:project", s.handler.session.Project)
	v1.POST("/sessions/:id/theme/toggle", s.handler.session.ToggleTheme)
}
