package api

import (
	"github.com/kcaldas/termfolio/pkg/catalog"
	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// Session is the input-side state of a terminal session
type Session struct {
	ID      string   `json:"id"`
	Theme   string   `json:"theme"`
	Prompt  string   `json:"prompt"`
	Draft   string   `json:"draft"`
	Cursor  int      `json:"cursor"`
	History []string `json:"history"`
	Pending int      `json:"pending"`
}

// Unmarshal fills the response from a session
func (s *Session) Unmarshal(sess *session.Session) {
	state := sess.State()
	s.ID = state.ID
	s.Theme = state.Theme.String()
	s.Prompt = sess.Prompt()
	s.Draft = state.Draft
	s.Cursor = state.Cursor
	s.History = state.History
	s.Pending = sess.PendingOutput()
}

// Command is a command line to submit
type Command struct {
	Line string `json:"line" validate:"required,max=256"`
}

// CommandResult lists the events produced right away. Next is the sequence
// the following log entry will get, so timed output of this command is read
// with GET output?since=Next.
type CommandResult struct {
	Events  []terminal.Event `json:"events"`
	Pending int              `json:"pending"`
	Next    uint64           `json:"next"`
}

// Draft is the live input line
type Draft struct {
	Draft  string `json:"draft" validate:"max=256"`
	Cursor int    `json:"cursor"`
}

// Output is a page of the session output log
type Output struct {
	Entries        []session.Entry `json:"entries"`
	ClearedThrough uint64          `json:"cleared_through"`
	Next           uint64          `json:"next"`
}

// Project is the detail record of a project
type Project struct {
	catalog.Project
	Markdown string `json:"markdown"`
}

// Theme is the result of a theme toggle
type Theme struct {
	Theme string         `json:"theme"`
	Event terminal.Event `json:"event"`
}

// Time is the status bar clock
type Time struct {
	Time string `json:"time"`
}
