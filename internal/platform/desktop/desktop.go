// Package desktop runs the game in an Ebitengine window. The app canvas is
// drawn with the debug font, one layer per color.
package desktop

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
)

// Debug font cell size in pixels.
const (
	CellWidth  = 6
	CellHeight = 16
)

var background = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}

// KeyBindings maps keys to actions. A key triggers once per press.
var KeyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeySpace:      core.ActionConfirm,
	ebiten.KeyEscape:     core.ActionBack,
	ebiten.KeyBackspace:  core.ActionBack,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyU:          core.ActionUndo,
	ebiten.KeyR:          core.ActionRedo,
	ebiten.KeyF2:         core.ActionHistory,
	ebiten.KeyQ:          core.ActionQuit,
}

// Game adapts an App to ebiten.Game.
type Game struct {
	app    *app.App
	logger *log.Logger
	frame  core.InputFrame
	dt     float64
	layers map[core.Color]*ebiten.Image
	err    error
}

// New wraps a. rt.TickRate must match ebiten's TPS.
func New(a *app.App, rt core.RuntimeConfig, logger *log.Logger) *Game {
	return &Game{
		app:    a,
		logger: logging.OrDiscard(logger),
		frame:  core.NewInputFrame(),
		dt:     rt.FrameDelta(),
		layers: make(map[core.Color]*ebiten.Image),
	}
}

// Update runs one frame. It returns ebiten.Termination once the app
// asked to exit.
func (g *Game) Update() error {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		g.frame.Set(KeyBindings[k])
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.frame.Set(core.ActionUndo)
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.frame.Set(core.ActionCopy)
	}

	err := g.app.Frame(g.frame, g.dt)
	g.frame.Clear()
	if err != nil {
		g.logger.Error("frame failed", "error", err)
		g.err = err
		return err
	}
	if g.app.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the app canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	c := g.app.Render()
	for col, text := range Layers(c) {
		layer := g.layer(col, screen.Bounds().Dx(), screen.Bounds().Dy())
		ebitenutil.DebugPrintAt(layer, text, 0, 0)

		op := &ebiten.DrawImageOptions{}
		r, gr, b := col.RGB()
		op.ColorScale.ScaleWithColor(color.RGBA{R: r, G: gr, B: b, A: 0xff})
		screen.DrawImage(layer, op)
	}
}

// layer returns a cleared offscreen image for col.
func (g *Game) layer(col core.Color, w, h int) *ebiten.Image {
	img, ok := g.layers[col]
	if !ok || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		if ok {
			img.Deallocate()
		}
		img = ebiten.NewImage(w, h)
		g.layers[col] = img
	}
	img.Clear()
	return img
}

// Layout maps the canvas to pixels at the debug font size.
func (g *Game) Layout(_, _ int) (int, int) {
	c := g.app.Canvas()
	return c.Width() * CellWidth, c.Height() * CellHeight
}

// Err returns the error that stopped the loop, if any.
func (g *Game) Err() error { return g.err }

// Layers splits the canvas into one text block per color. Cells of other
// colors become spaces so every block keeps the canvas layout.
func Layers(c *core.Canvas) map[core.Color]string {
	builders := make(map[core.Color]*strings.Builder)
	for y := range c.Height() {
		for x := range c.Width() {
			cell := c.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			if _, ok := builders[cell.Color]; !ok {
				builders[cell.Color] = &strings.Builder{}
			}
		}
	}

	out := make(map[core.Color]string, len(builders))
	for col, sb := range builders {
		for y := range c.Height() {
			if y > 0 {
				sb.WriteByte('\n')
			}
			for x := range c.Width() {
				cell := c.GetCell(x, y)
				if cell.Color == col {
					sb.WriteRune(cell.Rune)
				} else {
					sb.WriteByte(' ')
				}
			}
		}
		out[col] = strings.TrimRight(sb.String(), " \n")
	}
	return out
}

// Run opens a window sized for rt's canvas and blocks until the app exits
// or the window closes. The caller still owns a.
func Run(a *app.App, title string, scale int, rt core.RuntimeConfig, logger *log.Logger) error {
	a.Resize(rt.ScreenW, rt.ScreenH)
	scale = max(scale, 1)
	c := a.Canvas()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(c.Width()*CellWidth*scale, c.Height()*CellHeight*scale)
	ebiten.SetTPS(max(rt.TickRate, 1))

	g := New(a, rt, logger)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}
