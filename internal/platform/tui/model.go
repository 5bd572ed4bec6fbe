package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/keymap"
	"github.com/vovakirdan/starfall/internal/logging"
)

// maxFrameDelta caps dt after a stall so a round does not jump ahead.
const maxFrameDelta = 0.1

var (
	screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot"))
	helpKey       = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one App.
type Model struct {
	app        *app.App
	keys       keymap.KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	runtime    core.RuntimeConfig
	lastTick   time.Time
	shotDir    string
	err        error
	quitting   bool
}

// NewModel creates a model driving a. The bottom terminal row holds the
// key help, so the canvas gets one row less than the terminal. A non-zero
// rt.ScreenW and rt.ScreenH give the initial terminal size.
func NewModel(a *app.App, rt core.RuntimeConfig, logger *log.Logger) Model {
	home, _ := os.UserHomeDir()
	a.Resize(rt.ScreenW, rt.ScreenH-1)
	return Model{
		app:        a,
		keys:       keymap.Default(),
		help:       help.New(),
		logger:     logging.OrDiscard(logger),
		inputFrame: core.NewInputFrame(),
		runtime:    rt,
		shotDir:    filepath.Join(home, ".starfall", "screenshots"),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.app.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey adds the key's action to the pending frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, screenshotKey):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, helpKey):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.keys.Apply(msg, &m.inputFrame)
	return m, nil
}

// handleTick runs one frame with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.runtime.FrameDelta()
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick).Seconds(), maxFrameDelta)
	}
	m.lastTick = now

	err := m.app.Frame(m.inputFrame, dt)
	m.inputFrame.Clear()
	if err != nil {
		m.logger.Error("frame failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.app.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime)
}

// saveScreenshot writes the current canvas as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	screenID, _ := m.app.Manager().Current()
	filename := fmt.Sprintf("%s_%s.txt", screenID, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.app.Render().String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the app canvas with the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderCanvas(m.app.Render()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the error that stopped the frame loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run runs a in the current terminal until it exits. The caller still
// owns a and must shut it down.
func Run(a *app.App, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(a, rt, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
