package command

import (
	"errors"
	"testing"

	"github.com/vovakirdan/starfall/internal/screen"
)

// fakeNav records Change calls and fails for ids in reject.
type fakeNav struct {
	current screen.ID
	calls   []screen.ID
	reject  map[screen.ID]bool
}

func (n *fakeNav) Change(id screen.ID) error {
	n.calls = append(n.calls, id)
	if n.reject[id] {
		return screen.ErrNotRegistered
	}
	n.current = id
	return nil
}

func TestNavigateRoundTrip(t *testing.T) {
	nav := &fakeNav{current: screen.Menu}
	cmd := NewNavigate(nav, screen.Settings, screen.Menu)

	if !cmd.CanUndo() {
		t.Error("Navigate between different screens should be undoable")
	}
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if nav.current != screen.Settings {
		t.Errorf("current = %v after Execute, expected settings", nav.current)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if nav.current != screen.Menu {
		t.Errorf("current = %v after Undo, expected menu", nav.current)
	}
	if cmd.Name() != "Navigate(menu -> settings)" {
		t.Errorf("Name() = %q", cmd.Name())
	}
}

func TestNavigateSameScreenNotUndoable(t *testing.T) {
	cmd := NewNavigate(&fakeNav{}, screen.Menu, screen.Menu)
	if cmd.CanUndo() {
		t.Error("Navigate to the same screen should not be undoable")
	}
}

func TestNavigateWrapsFailure(t *testing.T) {
	nav := &fakeNav{current: screen.Menu, reject: map[screen.ID]bool{screen.Winning: true}}
	err := NewNavigate(nav, screen.Winning, screen.Menu).Execute()
	if !errors.Is(err, screen.ErrNotRegistered) {
		t.Errorf("Execute() = %v, expected ErrNotRegistered in chain", err)
	}
	if nav.current != screen.Menu {
		t.Error("Failed navigation should leave the current screen")
	}
}

func TestEscape(t *testing.T) {
	nav := &fakeNav{current: screen.Settings}
	cmd := NewEscape(nav, screen.Settings)

	if cmd.CanUndo() {
		t.Error("Escape should not be undoable before it runs")
	}
	if err := cmd.Undo(); err != nil || len(nav.calls) != 0 {
		t.Error("Undo before Execute should do nothing")
	}

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if nav.current != screen.Menu {
		t.Errorf("Escape should fall back to menu, got %v", nav.current)
	}
	if !cmd.CanUndo() {
		t.Error("Executed escape should be undoable")
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if nav.current != screen.Settings {
		t.Errorf("Undo should restore settings, got %v", nav.current)
	}
}

func TestEscapeToSelfNotUndoable(t *testing.T) {
	cmd := NewEscapeTo(&fakeNav{}, screen.Menu, screen.Menu)
	_ = cmd.Execute()
	if cmd.CanUndo() {
		t.Error("Escape from the fallback to itself should not be undoable")
	}
}

func TestExit(t *testing.T) {
	called := 0
	stop := errors.New("stop")
	cmd := NewExit(func() error {
		called++
		return stop
	})

	if err := cmd.Execute(); !errors.Is(err, stop) {
		t.Errorf("Execute() = %v, expected terminator error", err)
	}
	if called != 1 || !cmd.Executed() {
		t.Error("Exit should run the terminator once and mark itself executed")
	}
	if cmd.CanUndo() {
		t.Error("Exit must never be undoable")
	}
}

func TestSetValue(t *testing.T) {
	volume := 80
	cmd := NewSetValue("master_volume", func() int { return volume }, func(v int) { volume = v }, 40)

	_ = cmd.Execute()
	if volume != 40 || !cmd.CanUndo() {
		t.Fatalf("volume = %d, CanUndo = %v", volume, cmd.CanUndo())
	}
	_ = cmd.Undo()
	if volume != 80 {
		t.Errorf("volume = %d after Undo, expected 80", volume)
	}

	same := NewSetValue("master_volume", func() int { return volume }, func(v int) { volume = v }, 80)
	_ = same.Execute()
	if same.CanUndo() {
		t.Error("Setting the current value should not be undoable")
	}
}

func TestFunc(t *testing.T) {
	n := 0
	inc := NewFunc("inc", func() error { n++; return nil }, func() error { n--; return nil })
	once := NewFunc("once", func() error { n += 10; return nil }, nil)

	_ = inc.Execute()
	_ = once.Execute()
	_ = inc.Undo()

	if n != 10 {
		t.Errorf("n = %d, expected 10", n)
	}
	if !inc.CanUndo() || once.CanUndo() {
		t.Error("CanUndo should follow the presence of an undo func")
	}
}
