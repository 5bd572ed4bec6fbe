// Package tui runs the game in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to input frames, drives the frame loop and draws
// the app canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
)

// TickMsg is sent to trigger one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the configured rate.
func tickCmd(rt core.RuntimeConfig) tea.Cmd {
	return tea.Tick(rt.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
