// Package command implements reversible user actions and the bounded
// linear history that executes, undoes and redoes them.
package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/starfall/internal/screen"
)

// Command is one user-triggered action.
//
// Execute is never called twice in a row without an Undo in between; the
// Invoker only calls it again through Redo. CanUndo may change after
// Execute, e.g. an Escape that has not run yet cannot be undone.
type Command interface {
	Execute() error
	Undo() error
	CanUndo() bool
	Name() string
}

// ErrNilCommand is returned by Invoker.Execute for a nil command.
var ErrNilCommand = errors.New("command: nil command")

// Navigator performs screen replacements. *screen.Manager satisfies it.
type Navigator interface {
	Change(id screen.ID) error
}

// Navigate moves from one screen to another and back on undo.
type Navigate struct {
	nav      Navigator
	target   screen.ID
	previous screen.ID
}

// NewNavigate creates a command that changes to target and restores
// previous on undo.
func NewNavigate(nav Navigator, target, previous screen.ID) *Navigate {
	return &Navigate{nav: nav, target: target, previous: previous}
}

// Execute changes to the target screen.
func (c *Navigate) Execute() error {
	if err := c.nav.Change(c.target); err != nil {
		return fmt.Errorf("command: navigate to %s: %w", c.target, err)
	}
	return nil
}

// Undo changes back to the previous screen.
func (c *Navigate) Undo() error {
	if err := c.nav.Change(c.previous); err != nil {
		return fmt.Errorf("command: navigate back to %s: %w", c.previous, err)
	}
	return nil
}

// CanUndo is false when the navigation does not go anywhere.
func (c *Navigate) CanUndo() bool { return c.previous != c.target }

// Name implements Command.
func (c *Navigate) Name() string {
	return fmt.Sprintf("Navigate(%s -> %s)", c.previous, c.target)
}

// Target returns the destination screen.
func (c *Navigate) Target() screen.ID { return c.target }

// Previous returns the screen restored on undo.
func (c *Navigate) Previous() screen.ID { return c.previous }

// Escape leaves the current screen for a fallback, Menu unless told
// otherwise. It can only be undone after it ran.
type Escape struct {
	nav      Navigator
	current  screen.ID
	fallback screen.ID
	executed bool
}

// NewEscape creates an Escape from current back to the menu.
func NewEscape(nav Navigator, current screen.ID) *Escape {
	return NewEscapeTo(nav, current, screen.Menu)
}

// NewEscapeTo creates an Escape from current to fallback.
func NewEscapeTo(nav Navigator, current, fallback screen.ID) *Escape {
	return &Escape{nav: nav, current: current, fallback: fallback}
}

// Execute changes to the fallback screen.
func (c *Escape) Execute() error {
	if err := c.nav.Change(c.fallback); err != nil {
		return fmt.Errorf("command: escape to %s: %w", c.fallback, err)
	}
	c.executed = true
	return nil
}

// Undo returns to the screen the escape started from. It does nothing if
// the escape has not run.
func (c *Escape) Undo() error {
	if !c.executed {
		return nil
	}
	if err := c.nav.Change(c.current); err != nil {
		return fmt.Errorf("command: escape back to %s: %w", c.current, err)
	}
	c.executed = false
	return nil
}

// CanUndo implements Command.
func (c *Escape) CanUndo() bool { return c.executed && c.current != c.fallback }

// Executed reports whether the escape is currently applied.
func (c *Escape) Executed() bool { return c.executed }

// Name implements Command.
func (c *Escape) Name() string {
	return fmt.Sprintf("Escape(%s -> %s)", c.current, c.fallback)
}

// Terminator ends the application. The returned error, if any, is handed
// back by Exit.Execute so a frame driver can stop its loop.
type Terminator func() error

// ProcessTerminator runs cleanup and exits the process with status 0.
func ProcessTerminator(cleanup func()) Terminator {
	return func() error {
		if cleanup != nil {
			cleanup()
		}
		os.Exit(0)
		return nil
	}
}

// Exit leaves the application. It can never be undone.
type Exit struct {
	terminate Terminator
	executed  bool
}

// NewExit creates an Exit command. A nil terminator exits the process
// without cleanup.
func NewExit(terminate Terminator) *Exit {
	if terminate == nil {
		terminate = ProcessTerminator(nil)
	}
	return &Exit{terminate: terminate}
}

// Execute marks the command as executed and runs the terminator.
func (c *Exit) Execute() error {
	c.executed = true
	return c.terminate()
}

// Undo is a no-op.
func (c *Exit) Undo() error { return nil }

// CanUndo is always false.
func (c *Exit) CanUndo() bool { return false }

// Executed reports whether Execute was called.
func (c *Exit) Executed() bool { return c.executed }

// Name implements Command.
func (c *Exit) Name() string { return "Exit" }

// SetValue assigns a value through a setter and restores the previous
// value on undo. Settings sliders and toggles use it.
type SetValue[T comparable] struct {
	name     string
	get      func() T
	set      func(T)
	value    T
	previous T
	executed bool
}

// NewSetValue creates a command that sets value. The previous value is
// captured from get when the command executes.
func NewSetValue[T comparable](name string, get func() T, set func(T), value T) *SetValue[T] {
	return &SetValue[T]{name: name, get: get, set: set, value: value}
}

// Execute implements Command.
func (c *SetValue[T]) Execute() error {
	c.previous = c.get()
	c.set(c.value)
	c.executed = true
	return nil
}

// Undo implements Command.
func (c *SetValue[T]) Undo() error {
	if !c.executed {
		return nil
	}
	c.set(c.previous)
	c.executed = false
	return nil
}

// CanUndo is false when the value did not change.
func (c *SetValue[T]) CanUndo() bool { return c.executed && c.previous != c.value }

// Name implements Command.
func (c *SetValue[T]) Name() string {
	return fmt.Sprintf("Set(%s = %v)", c.name, c.value)
}

// Func adapts a pair of functions to Command. A nil undo makes the
// command one-shot.
type Func struct {
	name string
	do   func() error
	undo func() error
}

// NewFunc creates a function-backed command.
func NewFunc(name string, do, undo func() error) *Func {
	return &Func{name: name, do: do, undo: undo}
}

// Execute implements Command.
func (c *Func) Execute() error {
	if c.do == nil {
		return nil
	}
	return c.do()
}

// Undo implements Command.
func (c *Func) Undo() error {
	if c.undo == nil {
		return nil
	}
	return c.undo()
}

// CanUndo implements Command.
func (c *Func) CanUndo() bool { return c.undo != nil }

// Name implements Command.
func (c *Func) Name() string { return c.name }
