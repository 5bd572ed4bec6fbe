package coord

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/screen"
)

// CommandExecutor submits the settings workflow to the shared invoker.
type CommandExecutor struct {
	inv      *command.Invoker
	nav      command.Navigator
	current  screen.ID
	autosave *AutoSaveManager
	clip     func(string) error
	logger   *log.Logger
}

// NewCommandExecutor creates an executor for the screen current.
// autosave may be nil.
func NewCommandExecutor(inv *command.Invoker, nav command.Navigator, current screen.ID, autosave *AutoSaveManager, logger *log.Logger) *CommandExecutor {
	return &CommandExecutor{
		inv:      inv,
		nav:      nav,
		current:  current,
		autosave: autosave,
		logger:   logging.OrDiscard(logger),
	}
}

// SetClipboard sets the function used by CopyHistory.
func (e *CommandExecutor) SetClipboard(fn func(string) error) {
	e.clip = fn
}

// Execute runs cmd through the invoker and marks the settings dirty when
// it succeeds.
func (e *CommandExecutor) Execute(cmd command.Command) error {
	if err := e.inv.Execute(cmd); err != nil {
		return err
	}
	e.markDirty()
	return nil
}

// Escape saves pending changes, then leaves the screen with an Escape
// command.
func (e *CommandExecutor) Escape() error {
	if e.autosave != nil {
		e.autosave.SaveNow()
	}
	return e.inv.Execute(command.NewEscape(e.nav, e.current))
}

// Undo reverts the last command.
func (e *CommandExecutor) Undo() error {
	ok, err := e.inv.TryUndo()
	if ok {
		e.markDirty()
	}
	return err
}

// Redo re-applies the next command.
func (e *CommandExecutor) Redo() error {
	ok, err := e.inv.TryRedo()
	if ok {
		e.markDirty()
	}
	return err
}

// ShowHistory logs the command history and returns it.
func (e *CommandExecutor) ShowHistory() string {
	h := e.inv.HistoryString()
	e.logger.Info("command history\n" + h)
	return h
}

// CopyHistory puts the command history on the clipboard. Failures are
// logged only.
func (e *CommandExecutor) CopyHistory() {
	if e.clip == nil {
		return
	}
	if err := e.clip(e.inv.HistoryString()); err != nil {
		e.logger.Warn("cannot copy history", "error", err)
	}
}

// screenTracker reports the active screen. *screen.Manager satisfies it.
type screenTracker interface {
	Current() (screen.ID, bool)
}

// Bind registers the executor's actions on h. When the navigator tracks
// the active screen, h stops dispatching once the executor's screen is no
// longer on top.
func (e *CommandExecutor) Bind(h *InputHandler) {
	if tr, ok := e.nav.(screenTracker); ok {
		h.StopWhen(func() bool {
			id, ok := tr.Current()
			return !ok || id != e.current
		})
	}
	h.On(ActionEscape, e.Escape)
	h.On(ActionUndo, e.Undo)
	h.On(ActionRedo, e.Redo)
	h.On(ActionShowHistory, func() error {
		e.ShowHistory()
		return nil
	})
	h.On(ActionCopyHistory, func() error {
		e.CopyHistory()
		return nil
	})
}

func (e *CommandExecutor) markDirty() {
	if e.autosave != nil {
		e.autosave.MarkDirty()
	}
}
