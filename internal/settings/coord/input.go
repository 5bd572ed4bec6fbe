// Package coord wires the settings screen workflow: input is translated
// to named actions, actions become commands on the shared invoker,
// changes are autosaved and every invoker event is logged.
package coord

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
)

// Action names a settings workflow step.
type Action string

const (
	ActionEscape      Action = "escape"
	ActionUndo        Action = "undo"
	ActionRedo        Action = "redo"
	ActionShowHistory Action = "show_history"
	ActionCopyHistory Action = "copy_history"
)

// Callback handles a named action.
type Callback func() error

// inputOrder fixes the dispatch order inside one frame.
var inputOrder = []core.Action{
	core.ActionUndo,
	core.ActionRedo,
	core.ActionHistory,
	core.ActionCopy,
	core.ActionBack,
}

// InputHandler translates input frames into named actions and runs the
// callbacks registered for them.
type InputHandler struct {
	bindings  map[core.Action]Action
	callbacks map[Action][]Callback
	stop      func() bool
	logger    *log.Logger
}

// NewInputHandler creates a handler with the default bindings.
func NewInputHandler(logger *log.Logger) *InputHandler {
	return &InputHandler{
		bindings: map[core.Action]Action{
			core.ActionBack:    ActionEscape,
			core.ActionUndo:    ActionUndo,
			core.ActionRedo:    ActionRedo,
			core.ActionHistory: ActionShowHistory,
			core.ActionCopy:    ActionCopyHistory,
		},
		callbacks: make(map[Action][]Callback),
		logger:    logging.OrDiscard(logger),
	}
}

// Bind maps an input action to a named action, replacing any binding.
func (h *InputHandler) Bind(in core.Action, a Action) {
	h.bindings[in] = a
}

// On registers fn for a. Callbacks run in registration order.
func (h *InputHandler) On(a Action, fn Callback) {
	h.callbacks[a] = append(h.callbacks[a], fn)
}

// StopWhen makes Handle drop the rest of a frame once fn reports true,
// e.g. after a callback has left the owning screen.
func (h *InputHandler) StopWhen(fn func() bool) {
	h.stop = fn
}

// Handle runs the callbacks of every bound action present in the frame.
// It reports whether any action was handled and stops at the first
// callback error or once the StopWhen condition holds.
func (h *InputHandler) Handle(in core.InputFrame) (bool, error) {
	handled := false
	for _, key := range inputOrder {
		if !in.Has(key) {
			continue
		}
		if handled && h.stop != nil && h.stop() {
			h.logger.Debug("screen left, dropping remaining input")
			return true, nil
		}
		a, ok := h.bindings[key]
		if !ok {
			continue
		}
		cbs := h.callbacks[a]
		if len(cbs) == 0 {
			continue
		}
		h.logger.Debug("input action", "action", a)
		handled = true
		for _, cb := range cbs {
			if err := cb(); err != nil {
				return true, err
			}
		}
	}
	return handled, nil
}
