package coord

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/storage"
)

// EventSink stores command events. *storage.Store satisfies it.
type EventSink interface {
	LogEvent(e storage.CommandEvent) error
}

// EventLogger writes every invoker event to the logger and, best effort,
// to an EventSink.
type EventLogger struct {
	logger   *log.Logger
	sink     EventSink
	session  string
	inv      *command.Invoker
	sub      command.Subscription
	failures int
}

// NewEventLogger creates a logger for session. sink may be nil.
func NewEventLogger(logger *log.Logger, sink EventSink, session string) *EventLogger {
	return &EventLogger{
		logger:  logging.OrDiscard(logger),
		sink:    sink,
		session: session,
	}
}

// Attach subscribes to inv, detaching from any previous invoker.
func (l *EventLogger) Attach(inv *command.Invoker) {
	l.Detach()
	l.inv = inv
	l.sub = inv.Subscribe(l.Log)
}

// Detach stops listening.
func (l *EventLogger) Detach() {
	if l.inv != nil {
		l.inv.Unsubscribe(l.sub)
		l.inv = nil
	}
}

// Failures returns how many events the sink rejected.
func (l *EventLogger) Failures() int { return l.failures }

// Log records e.
func (l *EventLogger) Log(e command.Event) {
	errText := ""
	if e.Err != nil {
		errText = e.Err.Error()
		l.logger.Warn("command event", "kind", e.Kind, "command", e.Name, "cursor", e.Index, "error", e.Err)
	} else {
		l.logger.Info("command event", "kind", e.Kind, "command", e.Name, "cursor", e.Index, "len", e.Len)
	}

	if l.sink == nil {
		return
	}
	err := l.sink.LogEvent(storage.CommandEvent{
		Session: l.session,
		Kind:    e.Kind.String(),
		Command: e.Name,
		Cursor:  e.Index,
		Error:   errText,
	})
	if err != nil {
		l.failures++
		// Only the first failure is a warning.
		if l.failures == 1 {
			l.logger.Warn("cannot store command event", "error", err)
		} else {
			l.logger.Debug("cannot store command event", "error", err)
		}
	}
}
