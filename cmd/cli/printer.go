package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// Printer writes display events as plain text lines
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	prompt string
}

func NewPrinter(out io.Writer, prompt string) *Printer {
	return &Printer{out: out, prompt: prompt}
}

// Attach prints everything the session log receives from now on
func (p *Printer) Attach(s *session.Session) func() {
	return s.Log().Watch(func(c session.Change) {
		if c.Kind != session.ChangeAppended {
			return
		}
		for _, e := range c.Entries {
			p.Print(e.Event)
		}
	})
}

func (p *Printer) Print(e terminal.Event) {
	text, ok := p.format(e)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, strings.TrimRight(text, "\n"))
}

// A plain text stream cannot drop lines already written, so clears print nothing.
func (p *Printer) format(e terminal.Event) (string, bool) {
	switch e.Kind {
	case terminal.EventEcho:
		return p.prompt + " " + e.Text, true
	case terminal.EventError:
		return "Error: " + e.Text, true
	case terminal.EventLine, terminal.EventBlock:
		return e.Text, true
	default:
		return "", false
	}
}
