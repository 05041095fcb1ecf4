package terminal

import (
	"fmt"
	"time"
)

// EventKind tags a display event
type EventKind int

const (
	// EventEcho repeats the submitted line after the prompt
	EventEcho EventKind = iota
	EventLine
	EventBlock
	EventError
	// EventClearAll asks the surface to drop everything already shown
	EventClearAll
)

var eventKindNames = map[EventKind]string{
	EventEcho:     "echo",
	EventLine:     "line",
	EventBlock:    "block",
	EventError:    "error",
	EventClearAll: "clear",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

func (k EventKind) MarshalText() ([]byte, error) {
	name, ok := eventKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is one unit of output. Refs lists the project ids embedded in a
// structured block.
type Event struct {
	Kind       EventKind `json:"kind"`
	Text       string    `json:"text,omitempty"`
	Structured bool      `json:"structured,omitempty"`
	Refs       []string  `json:"refs,omitempty"`
}

func Echo(line string) Event {
	return Event{Kind: EventEcho, Text: line}
}

func Line(text string) Event {
	return Event{Kind: EventLine, Text: text}
}

func Block(content string) Event {
	return Event{Kind: EventBlock, Text: content}
}

func StructuredBlock(content string, refs ...string) Event {
	return Event{Kind: EventBlock, Text: content, Structured: true, Refs: refs}
}

func Error(text string) Event {
	return Event{Kind: EventError, Text: text}
}

func ClearAll() Event {
	return Event{Kind: EventClearAll}
}

// TimedEvent is emitted Delay after the submission that produced it
type TimedEvent struct {
	Delay time.Duration
	Event Event
}

// Result is everything one submitted line produces
type Result struct {
	// Command is the resolved command kind, KindUnknown for unrecognised input
	Command Kind
	Echo    Event
	Events  []Event
	Timed   []TimedEvent
}

// All returns the echo followed by the immediate events
func (r Result) All() []Event {
	out := make([]Event, 0, len(r.Events)+1)
	out = append(out, r.Echo)
	return append(out, r.Events...)
}
