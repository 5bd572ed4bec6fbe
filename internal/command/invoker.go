package command

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/logging"
)

// DefaultHistoryLimit is the history cap used when none is given.
const DefaultHistoryLimit = 50

// EventKind tells listeners what the invoker did.
type EventKind int

const (
	EventExecuted EventKind = iota // ran, not recorded
	EventRecorded                  // ran and appended to history
	EventUndone
	EventRedone
	EventFailed
	EventCleared
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventExecuted:
		return "executed"
	case EventRecorded:
		return "recorded"
	case EventUndone:
		return "undone"
	case EventRedone:
		return "redone"
	case EventFailed:
		return "failed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event describes one invoker operation. Index is the history cursor after
// the operation.
type Event struct {
	Kind  EventKind
	Name  string
	Index int
	Len   int
	Err   error
}

// Listener observes invoker events.
type Listener func(Event)

// Subscription is the token returned by Subscribe.
type Subscription uint64

type listenerEntry struct {
	sub Subscription
	fn  Listener
}

// Invoker executes commands and keeps a bounded linear undo history.
//
// index points at the most recently applied command; -1 means nothing
// to undo. Entries after index form the redo list and are dropped when a
// new undoable command is recorded. It is not safe for concurrent use.
type Invoker struct {
	history   []Command
	index     int
	limit     int
	listeners []listenerEntry
	nextSub   Subscription
	logger    *log.Logger
}

// NewInvoker creates an invoker keeping at most limit commands.
// A limit below one uses DefaultHistoryLimit.
func NewInvoker(limit int, logger *log.Logger) *Invoker {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &Invoker{
		index:  -1,
		limit:  limit,
		logger: logging.OrDiscard(logger).WithPrefix("command"),
	}
}

// Execute runs cmd and records it when it can be undone afterwards.
//
// A command whose Execute fails is not recorded and the error is returned
// wrapped; history stays as it was.
func (inv *Invoker) Execute(cmd Command) error {
	if isNil(cmd) {
		inv.logger.Error("refusing to execute nil command")
		inv.notify(Event{Kind: EventFailed, Index: inv.index, Len: len(inv.history), Err: ErrNilCommand})
		return ErrNilCommand
	}

	name := cmd.Name()
	if err := cmd.Execute(); err != nil {
		inv.logger.Warn("command failed", "command", name, "error", err)
		inv.notify(Event{Kind: EventFailed, Name: name, Index: inv.index, Len: len(inv.history), Err: err})
		return fmt.Errorf("command: execute %s: %w", name, err)
	}

	if !cmd.CanUndo() {
		inv.logger.Debug("executed", "command", name)
		inv.notify(Event{Kind: EventExecuted, Name: name, Index: inv.index, Len: len(inv.history)})
		return nil
	}

	inv.truncateRedo()
	inv.history = append(inv.history, cmd)
	inv.index = len(inv.history) - 1
	inv.evict()

	inv.logger.Debug("recorded", "command", name, "index", inv.index, "len", len(inv.history))
	inv.notify(Event{Kind: EventRecorded, Name: name, Index: inv.index, Len: len(inv.history)})
	return nil
}

// isNil reports whether cmd is nil or wraps a nil pointer.
func isNil(cmd Command) bool {
	if cmd == nil {
		return true
	}
	v := reflect.ValueOf(cmd)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func (inv *Invoker) truncateRedo() {
	for i := inv.index + 1; i < len(inv.history); i++ {
		inv.history[i] = nil
	}
	inv.history = inv.history[:inv.index+1]
}

// evict drops the oldest entries beyond the limit and shifts the cursor.
func (inv *Invoker) evict() {
	over := len(inv.history) - inv.limit
	if over <= 0 {
		return
	}
	kept := make([]Command, inv.limit, inv.limit+1)
	copy(kept, inv.history[over:])
	inv.history = kept
	inv.index = max(inv.index-over, -1)
	inv.logger.Debug("evicted oldest commands", "count", over)
}

// Undo reverts the command at the cursor and moves the cursor back.
// It returns false when there is nothing to undo or the undo failed.
func (inv *Invoker) Undo() bool {
	ok, _ := inv.TryUndo()
	return ok
}

// TryUndo is Undo that also returns the command's error. On error the
// cursor does not move.
func (inv *Invoker) TryUndo() (bool, error) {
	if inv.index < 0 {
		return false, nil
	}
	cmd := inv.history[inv.index]
	if err := cmd.Undo(); err != nil {
		inv.logger.Warn("undo failed", "command", cmd.Name(), "error", err)
		inv.notify(Event{Kind: EventFailed, Name: cmd.Name(), Index: inv.index, Len: len(inv.history), Err: err})
		return false, fmt.Errorf("command: undo %s: %w", cmd.Name(), err)
	}
	inv.index--
	inv.logger.Debug("undone", "command", cmd.Name(), "index", inv.index)
	inv.notify(Event{Kind: EventUndone, Name: cmd.Name(), Index: inv.index, Len: len(inv.history)})
	return true, nil
}

// Redo re-executes the command after the cursor and advances the cursor.
// It returns false when there is nothing to redo or the command failed.
func (inv *Invoker) Redo() bool {
	ok, _ := inv.TryRedo()
	return ok
}

// TryRedo is Redo that also returns the command's error. On error the
// cursor does not move.
func (inv *Invoker) TryRedo() (bool, error) {
	if inv.index+1 >= len(inv.history) {
		return false, nil
	}
	cmd := inv.history[inv.index+1]
	if err := cmd.Execute(); err != nil {
		inv.logger.Warn("redo failed", "command", cmd.Name(), "error", err)
		inv.notify(Event{Kind: EventFailed, Name: cmd.Name(), Index: inv.index, Len: len(inv.history), Err: err})
		return false, fmt.Errorf("command: redo %s: %w", cmd.Name(), err)
	}
	inv.index++
	inv.logger.Debug("redone", "command", cmd.Name(), "index", inv.index)
	inv.notify(Event{Kind: EventRedone, Name: cmd.Name(), Index: inv.index, Len: len(inv.history)})
	return true, nil
}

// CanUndo reports whether Undo has a command to revert.
func (inv *Invoker) CanUndo() bool { return inv.index >= 0 }

// CanRedo reports whether Redo has a command to re-execute.
func (inv *Invoker) CanRedo() bool { return inv.index+1 < len(inv.history) }

// ClearHistory forgets every recorded command. Applied effects stay.
func (inv *Invoker) ClearHistory() {
	clear(inv.history)
	inv.history = inv.history[:0]
	inv.index = -1
	inv.notify(Event{Kind: EventCleared, Index: -1})
}

// Len returns the number of recorded commands.
func (inv *Invoker) Len() int { return len(inv.history) }

// Index returns the history cursor, -1 when nothing can be undone.
func (inv *Invoker) Index() int { return inv.index }

// Limit returns the history cap.
func (inv *Invoker) Limit() int { return inv.limit }

// Names returns the recorded command names, oldest first.
func (inv *Invoker) Names() []string {
	names := make([]string, len(inv.history))
	for i, cmd := range inv.history {
		names[i] = cmd.Name()
	}
	return names
}

// PrintHistory writes the history with a marker at the cursor.
func (inv *Invoker) PrintHistory(w io.Writer) error {
	_, err := io.WriteString(w, inv.HistoryString())
	return err
}

// HistoryString formats the history the way PrintHistory writes it.
func (inv *Invoker) HistoryString() string {
	var b strings.Builder
	if len(inv.history) == 0 {
		b.WriteString("History: empty\n")
		return b.String()
	}
	fmt.Fprintf(&b, "History (%d/%d):\n", len(inv.history), inv.limit)
	for i, cmd := range inv.history {
		marker := "   "
		if i == inv.index {
			marker = "-> "
		}
		fmt.Fprintf(&b, "%s%2d. %s\n", marker, i+1, cmd.Name())
	}
	return b.String()
}

// Subscribe registers a listener and returns its token.
func (inv *Invoker) Subscribe(fn Listener) Subscription {
	inv.nextSub++
	inv.listeners = append(inv.listeners, listenerEntry{sub: inv.nextSub, fn: fn})
	return inv.nextSub
}

// Unsubscribe removes the listener registered under sub.
func (inv *Invoker) Unsubscribe(sub Subscription) bool {
	for i, l := range inv.listeners {
		if l.sub == sub {
			inv.listeners = append(inv.listeners[:i], inv.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (inv *Invoker) notify(e Event) {
	for _, l := range inv.listeners {
		l.fn(e)
	}
}
