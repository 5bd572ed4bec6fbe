package coord

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/logging"
)

// AutoSaveManager saves pending changes before transitions and after
// they stayed unsaved for a while. Saving is best effort.
type AutoSaveManager struct {
	save     func() bool
	interval time.Duration
	logger   *log.Logger

	dirty    bool
	dirtyFor time.Duration
	saves    int
	failures int
}

// NewAutoSaveManager creates a manager calling save. A non-positive
// interval disables periodic saves.
func NewAutoSaveManager(save func() bool, interval time.Duration, logger *log.Logger) *AutoSaveManager {
	return &AutoSaveManager{
		save:     save,
		interval: interval,
		logger:   logging.OrDiscard(logger),
	}
}

// MarkDirty records an unsaved change.
func (a *AutoSaveManager) MarkDirty() {
	if !a.dirty {
		a.dirtyFor = 0
	}
	a.dirty = true
}

// Dirty reports whether changes are waiting to be saved.
func (a *AutoSaveManager) Dirty() bool { return a.dirty }

// Saves returns how many saves succeeded.
func (a *AutoSaveManager) Saves() int { return a.saves }

// Update advances the dirty timer by dt seconds and saves once the
// interval elapsed.
func (a *AutoSaveManager) Update(dt float64) {
	if !a.dirty || a.interval <= 0 {
		return
	}
	a.dirtyFor += time.Duration(dt * float64(time.Second))
	if a.dirtyFor >= a.interval {
		a.SaveNow()
	}
}

// SaveNow saves pending changes. It returns true when nothing was
// pending or the save succeeded. A failed save stays dirty and waits a
// full interval before the next periodic attempt.
func (a *AutoSaveManager) SaveNow() bool {
	if !a.dirty {
		return true
	}
	if !a.save() {
		a.failures++
		a.dirtyFor = 0
		a.logger.Warn("autosave failed", "failures", a.failures)
		return false
	}
	a.dirty = false
	a.dirtyFor = 0
	a.saves++
	a.logger.Debug("autosaved", "saves", a.saves)
	return true
}
