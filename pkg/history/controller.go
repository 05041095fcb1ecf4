package history

import "strings"

// DefaultSeed is the history every new session starts with
var DefaultSeed = []string{"whoami", "help", "ls -la"}

// Controller owns the command history, the browsing cursor and the live
// draft. The buffer is append-only. The cursor ranges over [0, Len()];
// Len() means the draft is free text. Not safe for concurrent use.
type Controller struct {
	entries     []string
	cursor      int
	draft       string
	completions []string
}

// NewController seeds the history and sets the Tab completion candidates,
// which are tried in the order given
func NewController(seed, completions []string) *Controller {
	entries := append([]string(nil), seed...)
	return &Controller{
		entries:     entries,
		cursor:      len(entries),
		completions: append([]string(nil), completions...),
	}
}

// Submit commits the draft. Blank drafts are ignored and reported as false.
// The line is stored exactly as typed.
func (c *Controller) Submit() (string, bool) {
	if strings.TrimSpace(c.draft) == "" {
		return "", false
	}
	line := c.draft
	c.entries = append(c.entries, line)
	c.cursor = len(c.entries)
	c.draft = ""
	return line, true
}

// RecallPrevious steps back through history. It stops at the oldest entry.
func (c *Controller) RecallPrevious() string {
	if len(c.entries) > 0 && c.cursor > 0 {
		c.cursor--
		c.draft = c.entries[c.cursor]
	}
	return c.draft
}

// RecallNext steps forward; moving past the newest entry leaves an empty draft
func (c *Controller) RecallNext() string {
	if c.cursor < len(c.entries) {
		c.cursor++
		if c.cursor == len(c.entries) {
			c.draft = ""
		} else {
			c.draft = c.entries[c.cursor]
		}
	}
	return c.draft
}

// Autocomplete replaces the draft with the first candidate it prefixes.
// Matching is case-sensitive; without a match the draft is kept.
func (c *Controller) Autocomplete() string {
	for _, name := range c.completions {
		if strings.HasPrefix(name, c.draft) {
			c.draft = name
			break
		}
	}
	return c.draft
}

func (c *Controller) SetDraft(s string) {
	c.draft = s
}

func (c *Controller) Draft() string {
	return c.draft
}

func (c *Controller) Cursor() int {
	return c.cursor
}

func (c *Controller) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the history buffer
func (c *Controller) Entries() []string {
	return append([]string(nil), c.entries...)
}
