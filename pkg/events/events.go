package events

// Topics published by termfolio sessions
const (
	TopicOutputAppended  = "output.appended"
	TopicOutputCleared   = "output.cleared"
	TopicThemeChanged    = "theme.changed"
	TopicCommandExecuted = "command.executed"
	TopicSessionCreated  = "session.created"
	TopicSessionClosed   = "session.closed"
)

// OutputAppendedEvent is published after an entry lands in a session's output log
type OutputAppendedEvent struct {
	SessionID string
	Seq       uint64
}

func (e OutputAppendedEvent) Topic() string {
	return TopicOutputAppended
}

// OutputClearedEvent is published after a bulk clear. Through is the last sequence removed.
type OutputClearedEvent struct {
	SessionID string
	Through   uint64
}

func (e OutputClearedEvent) Topic() string {
	return TopicOutputCleared
}

// ThemeChangedEvent carries the new theme name ("light" or "dark")
type ThemeChangedEvent struct {
	SessionID string
	Theme     string
}

func (e ThemeChangedEvent) Topic() string {
	return TopicThemeChanged
}

// CommandExecutedEvent is published once per submitted line.
// Command is the resolved command name, or "unknown".
type CommandExecutedEvent struct {
	SessionID string
	Command   string
	Known     bool
}

func (e CommandExecutedEvent) Topic() string {
	return TopicCommandExecuted
}

type SessionCreatedEvent struct {
	SessionID string
}

func (e SessionCreatedEvent) Topic() string {
	return TopicSessionCreated
}

type SessionClosedEvent struct {
	SessionID string
	Reason    string
}

func (e SessionClosedEvent) Topic() string {
	return TopicSessionClosed
}
