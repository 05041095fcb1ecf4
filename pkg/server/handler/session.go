package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kcaldas/termfolio/pkg/server/api"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"

	"github.com/labstack/echo/v4"
)

// The SessionHandler type provides handlers that drive terminal sessions
type SessionHandler struct {
	manager *session.Manager
}

// NewSession returns a new Session type. You have to provide a session manager.
func NewSession(manager *session.Manager) *SessionHandler {
	return &SessionHandler{
		manager: manager,
	}
}

func (h *SessionHandler) lookup(c echo.Context) (*session.Session, error) {
	id := c.Param("id")
	s, err := h.manager.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, api.Err(http.StatusNotFound, "", "session %s not found", id)
		}
		return nil, api.Err(http.StatusInternalServerError, "", "%s", err)
	}
	return s, nil
}

// Create starts a new session
func (h *SessionHandler) Create(c echo.Context) error {
	s, err := h.manager.Create()
	if err != nil {
		return api.Err(http.StatusInternalServerError, "Failed to create session", "%s", err)
	}

	var resp api.Session
	resp.Unmarshal(s)
	return c.JSON(http.StatusCreated, resp)
}

// Get returns the session state
func (h *SessionHandler) Get(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	var resp api.Session
	resp.Unmarshal(s)
	return c.JSON(http.StatusOK, resp)
}

// Delete closes a session and drops it
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.manager.Delete(c.Param("id")); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return api.Err(http.StatusNotFound, "", "session %s not found", c.Param("id"))
		}
		return api.Err(http.StatusInternalServerError, "", "%s", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Command submits one command line
func (h *SessionHandler) Command(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	var cmd api.Command
	if err := c.Bind(&cmd); err != nil {
		return api.Err(http.StatusBadRequest, "Invalid JSON", "%s", err)
	}
	if err := c.Validate(cmd); err != nil {
		return api.Err(http.StatusBadRequest, "Invalid command", "%s", err)
	}

	out := s.SubmitCommand(cmd.Line)
	if out == nil {
		out = []terminal.Event{}
	}

	return c.JSON(http.StatusOK, api.CommandResult{
		Events:  out,
		Pending: s.PendingOutput(),
		Next:    s.Log().NextSeq(),
	})
}

// Previous recalls the previous history entry
func (h *SessionHandler) Previous(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	draft := s.RecallPrevious()
	return c.JSON(http.StatusOK, api.Draft{Draft: draft, Cursor: s.State().Cursor})
}

// Next recalls the next history entry
func (h *SessionHandler) Next(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	draft := s.RecallNext()
	return c.JSON(http.StatusOK, api.Draft{Draft: draft, Cursor: s.State().Cursor})
}

// Autocomplete completes the given draft
func (h *SessionHandler) Autocomplete(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	var req api.Draft
	if err := c.Bind(&req); err != nil {
		return api.Err(http.StatusBadRequest, "Invalid JSON", "%s", err)
	}
	if err := c.Validate(req); err != nil {
		return api.Err(http.StatusBadRequest, "Invalid draft", "%s", err)
	}

	draft := s.Complete(req.Draft)
	return c.JSON(http.StatusOK, api.Draft{Draft: draft, Cursor: s.State().Cursor})
}

// Output returns log entries with a sequence of at least ?since
func (h *SessionHandler) Output(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	var since uint64
	if v := c.QueryParam("since"); v != "" {
		since, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return api.Err(http.StatusBadRequest, "Invalid query", "since must be a non-negative integer: %s", v)
		}
	}

	entries, cleared := s.Log().Since(since)
	if entries == nil {
		entries = []session.Entry{}
	}

	return c.JSON(http.StatusOK, api.Output{
		Entries:        entries,
		ClearedThrough: cleared,
		Next:           s.Log().NextSeq(),
	})
}

// Project returns the detail record of a project
func (h *SessionHandler) Project(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	id := c.Param("project")
	p, ok := s.ProjectDetail(id)
	if !ok {
		return api.Err(http.StatusNotFound, "", "project %s not found", id)
	}

	return c.JSON(http.StatusOK, api.Project{Project: p, Markdown: p.Markdown()})
}

// ToggleTheme flips the session theme
func (h *SessionHandler) ToggleTheme(c echo.Context) error {
	s, err := h.lookup(c)
	if err != nil {
		return err
	}

	event := s.ToggleTheme()
	return c.JSON(http.StatusOK, api.Theme{Theme: s.Theme().String(), Event: event})
}
