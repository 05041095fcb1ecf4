package session

import (
	"sync"
	"time"

	"github.com/kcaldas/termfolio/pkg/events"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// Entry is one display event in the output log. Seq starts at 1 and never repeats.
type Entry struct {
	Seq   uint64         `json:"seq"`
	Event terminal.Event `json:"event"`
	At    time.Time      `json:"at"`
}

type ChangeKind int

const (
	ChangeAppended ChangeKind = iota
	ChangeCleared
)

// Change is handed to watchers. Through is the last sequence removed by a clear.
type Change struct {
	Kind    ChangeKind
	Entries []Entry
	Through uint64
}

// Watcher receives changes synchronously and in order. It must not call back
// into the log.
type Watcher func(Change)

// OutputLog is the append-only record of what a session has displayed.
// Clear is the only other mutation.
type OutputLog struct {
	mu             sync.Mutex
	entries        []Entry
	nextSeq        uint64
	clearedThrough uint64
	watchers       map[int]Watcher
	nextWatcher    int

	sessionID string
	publisher events.Publisher
	now       func() time.Time
}

func NewOutputLog(sessionID string, publisher events.Publisher, now func() time.Time) *OutputLog {
	if now == nil {
		now = time.Now
	}
	return &OutputLog{
		nextSeq:   1,
		watchers:  make(map[int]Watcher),
		sessionID: sessionID,
		publisher: publisher,
		now:       now,
	}
}

// Append records events and returns the new entries
func (l *OutputLog) Append(evs ...terminal.Event) []Entry {
	if len(evs) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	at := l.now()
	added := make([]Entry, 0, len(evs))
	for _, e := range evs {
		entry := Entry{Seq: l.nextSeq, Event: e, At: at}
		l.nextSeq++
		l.entries = append(l.entries, entry)
		added = append(added, entry)
	}

	l.notifyLocked(Change{Kind: ChangeAppended, Entries: added})
	events.PublishEvent(l.publisher, events.OutputAppendedEvent{SessionID: l.sessionID, Seq: added[len(added)-1].Seq})
	return added
}

// Clear removes every entry
func (l *OutputLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearedThrough = l.nextSeq - 1
	l.entries = nil

	l.notifyLocked(Change{Kind: ChangeCleared, Through: l.clearedThrough})
	events.PublishEvent(l.publisher, events.OutputClearedEvent{SessionID: l.sessionID, Through: l.clearedThrough})
}

// Entries returns a copy of the current log
func (l *OutputLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Since returns entries with Seq >= seq and the last sequence removed by a clear
func (l *OutputLog) Since(seq uint64) ([]Entry, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Entry
	for _, e := range l.entries {
		if e.Seq >= seq {
			out = append(out, e)
		}
	}
	return out, l.clearedThrough
}

// NextSeq is the sequence the next appended entry will get
func (l *OutputLog) NextSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.nextSeq
}

func (l *OutputLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Watch registers w and returns a function that removes it
func (l *OutputLog) Watch(w Watcher) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextWatcher
	l.nextWatcher++
	l.watchers[id] = w

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.watchers, id)
	}
}

func (l *OutputLog) notifyLocked(c Change) {
	for id := 0; id < l.nextWatcher; id++ {
		if w, ok := l.watchers[id]; ok {
			w(c)
		}
	}
}
