package command

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/screen"
)

type blankScreen struct{ screen.Base }

func (blankScreen) HandleInput(core.InputFrame) error { return nil }
func (blankScreen) Update(float64) error              { return nil }
func (blankScreen) Render(*core.Canvas)               {}

func newManager(ids ...screen.ID) *screen.Manager {
	m := screen.NewManager(nil)
	for _, id := range ids {
		m.Register(id, func() screen.Screen { return blankScreen{} })
	}
	return m
}

func current(t *testing.T, m *screen.Manager) screen.ID {
	t.Helper()
	id, ok := m.Current()
	if !ok {
		t.Fatal("manager has no current screen")
	}
	return id
}

func checkBounds(t *testing.T, inv *Invoker) {
	t.Helper()
	if inv.Index() < -1 || inv.Index() >= inv.Len() {
		t.Fatalf("cursor %d out of bounds for history of %d", inv.Index(), inv.Len())
	}
}

func TestInvokerNavigateUndo(t *testing.T) {
	m := newManager(screen.Menu, screen.Settings)
	_ = m.Change(screen.Menu)
	inv := NewInvoker(0, nil)

	if err := inv.Execute(NewNavigate(m, screen.Settings, screen.Menu)); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if current(t, m) != screen.Settings {
		t.Errorf("current = %v, expected settings", current(t, m))
	}
	if !inv.CanUndo() {
		t.Error("CanUndo() should be true after navigation")
	}

	if !inv.Undo() {
		t.Fatal("Undo() returned false")
	}
	if current(t, m) != screen.Menu {
		t.Errorf("current = %v after undo, expected menu", current(t, m))
	}
	if inv.CanUndo() || !inv.CanRedo() {
		t.Errorf("CanUndo=%v CanRedo=%v, expected false/true", inv.CanUndo(), inv.CanRedo())
	}

	if !inv.Redo() {
		t.Fatal("Redo() returned false")
	}
	if current(t, m) != screen.Settings {
		t.Errorf("current = %v after redo, expected settings", current(t, m))
	}
}

func TestInvokerEscapeUndo(t *testing.T) {
	m := newManager(screen.Menu, screen.Settings)
	_ = m.Change(screen.Settings)
	inv := NewInvoker(0, nil)

	esc := NewEscape(m, screen.Settings)
	if err := inv.Execute(esc); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if current(t, m) != screen.Menu {
		t.Errorf("current = %v, expected menu", current(t, m))
	}
	if !esc.CanUndo() {
		t.Error("Executed escape should report CanUndo")
	}

	inv.Undo()
	if current(t, m) != screen.Settings {
		t.Errorf("current = %v after undo, expected settings", current(t, m))
	}
}

func TestInvokerCapEviction(t *testing.T) {
	m := newManager(screen.Menu, screen.Settings)
	_ = m.Change(screen.Menu)
	inv := NewInvoker(50, nil)

	from, to := screen.Menu, screen.Settings
	for i := 0; i < 60; i++ {
		if err := inv.Execute(NewNavigate(m, to, from)); err != nil {
			t.Fatalf("Execute() #%d failed: %v", i, err)
		}
		checkBounds(t, inv)
		from, to = to, from
	}

	if inv.Len() != 50 {
		t.Errorf("Len() = %d, expected 50", inv.Len())
	}
	if inv.Index() != 49 {
		t.Errorf("Index() = %d, expected 49", inv.Index())
	}
	// The oldest surviving command is the 11th executed: menu -> settings.
	if got := inv.Names()[0]; got != "Navigate(menu -> settings)" {
		t.Errorf("oldest = %q", got)
	}

	for i := 0; i < 50; i++ {
		if !inv.Undo() {
			t.Fatalf("Undo() #%d failed", i+1)
		}
		checkBounds(t, inv)
	}
	if inv.CanUndo() {
		t.Error("CanUndo() should be false after undoing every retained command")
	}
	if inv.Undo() {
		t.Error("Undo() past the evicted range should fail")
	}
}

func TestInvokerRedoTruncation(t *testing.T) {
	inv := NewInvoker(0, nil)
	n := 0
	step := func() Command {
		return NewFunc("step", func() error { n++; return nil }, func() error { n--; return nil })
	}

	_ = inv.Execute(step())
	_ = inv.Execute(step())
	_ = inv.Execute(step())
	inv.Undo()
	inv.Undo()

	if !inv.CanRedo() {
		t.Fatal("CanRedo() should be true after undo")
	}

	_ = inv.Execute(step())
	if inv.CanRedo() {
		t.Error("New command should drop the redo list")
	}
	if inv.Len() != 2 || inv.Index() != 1 {
		t.Errorf("Len=%d Index=%d, expected 2/1", inv.Len(), inv.Index())
	}
	if n != 2 {
		t.Errorf("n = %d, expected 2", n)
	}
}

func TestInvokerNoopCases(t *testing.T) {
	inv := NewInvoker(0, nil)

	if inv.Undo() {
		t.Error("Undo() on empty history should return false")
	}
	if inv.Redo() {
		t.Error("Redo() on empty history should return false")
	}
	if inv.Index() != -1 || inv.Len() != 0 {
		t.Error("No-op calls must not change state")
	}

	_ = inv.Execute(NewFunc("x", func() error { return nil }, func() error { return nil }))
	if inv.Redo() {
		t.Error("Redo() at the last index should return false")
	}
	if inv.Index() != 0 {
		t.Errorf("Index() = %d, expected 0", inv.Index())
	}
}

func TestInvokerNilCommand(t *testing.T) {
	var buf bytes.Buffer
	inv := NewInvoker(0, newTestLogger(&buf))

	if err := inv.Execute(nil); !errors.Is(err, ErrNilCommand) {
		t.Errorf("Execute(nil) = %v, expected ErrNilCommand", err)
	}
	if inv.Len() != 0 || inv.Index() != -1 {
		t.Error("History should be unchanged")
	}
	if !strings.Contains(buf.String(), "nil command") {
		t.Errorf("expected an error log, got %q", buf.String())
	}

	var failed int
	inv.Subscribe(func(e Event) {
		if e.Kind == EventFailed && errors.Is(e.Err, ErrNilCommand) {
			failed++
		}
	})
	var nav *Navigate
	var fn *Func
	for _, cmd := range []Command{nav, fn} {
		if err := inv.Execute(cmd); !errors.Is(err, ErrNilCommand) {
			t.Errorf("Execute(%T nil) = %v, expected ErrNilCommand", cmd, err)
		}
	}
	if inv.Len() != 0 || inv.Index() != -1 {
		t.Error("History should be unchanged after typed nil commands")
	}
	if failed != 2 {
		t.Errorf("failed events = %d, expected 2", failed)
	}
}

func TestInvokerSkipsNonUndoable(t *testing.T) {
	inv := NewInvoker(0, nil)
	ran := false

	if err := inv.Execute(NewExit(func() error { ran = true; return nil })); err != nil {
		t.Fatalf("Execute(Exit) failed: %v", err)
	}
	if !ran {
		t.Error("Exit terminator not called")
	}
	if inv.Len() != 0 {
		t.Error("Exit must not be recorded")
	}
}

func TestInvokerFailedExecuteNotRecorded(t *testing.T) {
	m := newManager(screen.Menu)
	_ = m.Change(screen.Menu)
	inv := NewInvoker(0, nil)

	err := inv.Execute(NewNavigate(m, screen.Winning, screen.Menu))
	if !errors.Is(err, screen.ErrNotRegistered) {
		t.Errorf("Execute() = %v, expected ErrNotRegistered", err)
	}
	if inv.Len() != 0 {
		t.Error("Failed command must not be recorded")
	}
	if current(t, m) != screen.Menu {
		t.Error("Failed navigation should keep the menu active")
	}
}

func TestInvokerUndoFailureKeepsCursor(t *testing.T) {
	inv := NewInvoker(0, nil)
	boom := errors.New("boom")
	_ = inv.Execute(NewFunc("bad", func() error { return nil }, func() error { return boom }))

	ok, err := inv.TryUndo()
	if ok || !errors.Is(err, boom) {
		t.Errorf("TryUndo() = %v, %v", ok, err)
	}
	if inv.Index() != 0 {
		t.Errorf("Index() = %d, expected cursor to stay at 0", inv.Index())
	}
}

func TestInvokerClearHistory(t *testing.T) {
	inv := NewInvoker(0, nil)
	n := 0
	_ = inv.Execute(NewFunc("inc", func() error { n++; return nil }, func() error { n--; return nil }))

	inv.ClearHistory()

	if inv.CanUndo() || inv.CanRedo() || inv.Len() != 0 {
		t.Error("ClearHistory should forget everything")
	}
	if n != 1 {
		t.Error("ClearHistory must not undo applied effects")
	}
}

func TestInvokerPrintHistory(t *testing.T) {
	inv := NewInvoker(5, nil)

	var buf bytes.Buffer
	_ = inv.PrintHistory(&buf)
	if buf.String() != "History: empty\n" {
		t.Errorf("empty history printed %q", buf.String())
	}

	noop := func() error { return nil }
	_ = inv.Execute(NewFunc("first", noop, noop))
	_ = inv.Execute(NewFunc("second", noop, noop))
	inv.Undo()

	want := "History (2/5):\n->  1. first\n    2. second\n"
	if got := inv.HistoryString(); got != want {
		t.Errorf("HistoryString() = %q, expected %q", got, want)
	}
}

func TestInvokerSubscribe(t *testing.T) {
	inv := NewInvoker(0, nil)
	var kinds []EventKind
	sub := inv.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	noop := func() error { return nil }
	_ = inv.Execute(NewFunc("a", noop, noop))
	_ = inv.Execute(NewFunc("b", noop, nil))
	inv.Undo()
	inv.Redo()
	_ = inv.Execute(nil)
	inv.ClearHistory()

	want := []EventKind{EventRecorded, EventExecuted, EventUndone, EventRedone, EventFailed, EventCleared}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, expected %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, kinds[i], want[i])
		}
	}

	inv.Unsubscribe(sub)
	_ = inv.Execute(NewFunc("c", noop, noop))
	if len(kinds) != len(want) {
		t.Error("Listener called after Unsubscribe")
	}
}

func newTestLogger(w *bytes.Buffer) *log.Logger {
	return logging.New(w, "debug", "test")
}
