package session

import (
	"context"
	"sync"
	"time"

	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/history"
	"github.com/kcaldas/termfolio/pkg/logging"
	"github.com/kcaldas/termfolio/pkg/preferences"
	"github.com/kcaldas/termfolio/pkg/scheduler"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// Options wires a session to its collaborators. Catalog and Store are required.
type Options struct {
	ID        string
	Catalog   *catalog.Catalog
	Store     preferences.Store
	Clock     scheduler.Clock
	Publisher events.Publisher
	Logger    logging.Logger
}

// State is a snapshot of the input side of a session
type State struct {
	ID      string            `json:"id"`
	Theme   preferences.Theme `json:"theme"`
	Draft   string            `json:"draft"`
	Cursor  int               `json:"cursor"`
	History []string          `json:"history"`
}

// Session ties the history controller, the interpreter, the output log and
// the timed-output scheduler together. All methods are safe for concurrent use.
type Session struct {
	id        string
	publisher events.Publisher
	logger    logging.Logger
	clock     scheduler.Clock

	mu          sync.Mutex
	controller  *history.Controller
	interpreter *terminal.Interpreter
	lastActive  time.Time
	closed      bool

	log       *OutputLog
	scheduler *scheduler.Scheduler[terminal.Event]
}

func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = scheduler.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewComponentLogger("session")
	}
	logger := opts.Logger.With("session", opts.ID)

	interpreter := terminal.NewInterpreter(opts.Catalog, opts.Store, terminal.WithLogger(logger))
	log := NewOutputLog(opts.ID, opts.Publisher, opts.Clock.Now)

	s := &Session{
		id:          opts.ID,
		publisher:   opts.Publisher,
		logger:      logger,
		clock:       opts.Clock,
		controller:  history.NewController(history.DefaultSeed, interpreter.Registry().Completions()),
		interpreter: interpreter,
		lastActive:  opts.Clock.Now(),
		log:         log,
	}
	s.scheduler = scheduler.New(opts.Clock, func(e terminal.Event) {
		log.Append(e)
	})
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Log is the session's output log
func (s *Session) Log() *OutputLog {
	return s.log
}

// SubmitCommand replaces the draft with raw and submits it. It returns the
// echo and the immediate events; blank input returns nothing. Timed output
// lands in the log later.
func (s *Session) SubmitCommand(raw string) []terminal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	s.controller.SetDraft(raw)
	return s.submitLocked()
}

// Submit submits the current draft
func (s *Session) Submit() []terminal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	return s.submitLocked()
}

func (s *Session) submitLocked() []terminal.Event {
	line, ok := s.controller.Submit()
	if !ok {
		return nil
	}

	themeBefore := s.interpreter.Theme()
	res, err := s.interpreter.Interpret(line)
	if err != nil {
		return nil
	}

	out := res.All()
	for _, e := range out {
		if e.Kind == terminal.EventClearAll {
			s.log.Clear()
			continue
		}
		s.log.Append(e)
	}

	for _, te := range res.Timed {
		if !s.scheduler.Schedule(te.Delay, te.Event) {
			s.logger.Debug("session closed, timed output dropped")
		}
	}

	events.PublishEvent(s.publisher, events.CommandExecutedEvent{
		SessionID: s.id,
		Command:   res.Command.String(),
		Known:     res.Command != terminal.KindUnknown,
	})
	s.publishThemeIfChangedLocked(themeBefore)
	return out
}

func (s *Session) RecallPrevious() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.controller.RecallPrevious()
}

func (s *Session) RecallNext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.controller.RecallNext()
}

// Autocomplete completes the current draft
func (s *Session) Autocomplete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.controller.Autocomplete()
}

// Complete sets the draft and completes it in one step
func (s *Session) Complete(draft string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.controller.SetDraft(draft)
	return s.controller.Autocomplete()
}

func (s *Session) SetDraft(draft string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.controller.SetDraft(draft)
}

func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Draft()
}

func (s *Session) Theme() preferences.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interpreter.Theme()
}

// ToggleTheme flips the theme like "theme --toggle" but without touching
// history or echoing a command line
func (s *Session) ToggleTheme() terminal.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	before := s.interpreter.Theme()
	event := s.interpreter.ToggleTheme()
	s.log.Append(event)
	s.publishThemeIfChangedLocked(before)
	return event
}

// ProjectDetail looks up a project by id, independently of any prior tree output
func (s *Session) ProjectDetail(id string) (catalog.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.interpreter.ProjectDetail(id)
}

// Prompt is the shell prompt shown before each command line
func (s *Session) Prompt() string {
	return s.interpreter.Catalog().Identity.Prompt()
}

// Banner is the identity line shown when a surface starts
func (s *Session) Banner() string {
	return s.interpreter.Catalog().Identity.Banner
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:      s.id,
		Theme:   s.interpreter.Theme(),
		Draft:   s.controller.Draft(),
		Cursor:  s.controller.Cursor(),
		History: s.controller.Entries(),
	}
}

// PendingOutput is the number of timed events not yet delivered
func (s *Session) PendingOutput() int {
	return s.scheduler.Pending()
}

// Wait blocks until all timed output has been delivered
func (s *Session) Wait(ctx context.Context) error {
	return s.scheduler.Wait(ctx)
}

func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close drops undelivered timed output. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.scheduler.Close()
	s.logger.Debug("session closed")
}

func (s *Session) touchLocked() {
	s.lastActive = s.clock.Now()
}

func (s *Session) publishThemeIfChangedLocked(before preferences.Theme) {
	after := s.interpreter.Theme()
	if after == before {
		return
	}
	events.PublishEvent(s.publisher, events.ThemeChangedEvent{SessionID: s.id, Theme: after.String()})
}
