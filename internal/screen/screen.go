// Package screen owns the exclusive application states (loading, menu,
// settings, gameplay, pause...) and the transitions between them.
//
// A Manager keeps a stack of screens. Only the top screen receives input,
// updates and render calls. Screens are built by factories registered per
// ID, so the manager never needs to know concrete screen types.
package screen

import "github.com/vovakirdan/starfall/internal/core"

// Screen is one exclusive application state.
//
// HandleInput, Update and Render are called once per frame, in that order,
// on the top screen only. dt is in seconds and may be zero. A screen must
// not manage another screen's lifetime; it asks the Manager for transitions.
type Screen interface {
	HandleInput(in core.InputFrame) error
	Update(dt float64) error
	Render(dst *core.Canvas)

	// OnEnter runs right after the screen becomes the top of the stack.
	OnEnter()
	// OnExit runs right before the screen is replaced or popped.
	OnExit()
	// OnPause runs when another screen is pushed over this one.
	OnPause()
	// OnResume runs when the screen above this one is popped.
	OnResume()
}

// Factory builds a fresh screen instance.
type Factory func() Screen

// Base provides no-op lifecycle hooks. Embed it in screens that do not
// care about some of them.
type Base struct{}

// OnEnter implements Screen.
func (Base) OnEnter() {}

// OnExit implements Screen.
func (Base) OnExit() {}

// OnPause implements Screen.
func (Base) OnPause() {}

// OnResume implements Screen.
func (Base) OnResume() {}
