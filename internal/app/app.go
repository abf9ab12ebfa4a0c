//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel right of the grid view.
const HUDWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	width  int
	height int
	frame  time.Duration
}

// New constructs a Game drawing a width×height grid view.
func New(session *Session, cfg *Config) *Game {
	return &Game{
		session: session,
		painter: render.NewGridPainter(color.White, color.Black),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(session, "Life Controls", HUDWidth),
		width:   cfg.Width,
		height:  cfg.Height,
		frame:   time.Second / time.Duration(cfg.TPS),
	}
}

// Update handles per-frame input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handlePointer()
	g.hud.Update(g.width)

	g.session.Update(g.frame)
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.Load()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleGridLines()
	}

	cs := float64(s.View().CellSize())
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.Pan(cs, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.Pan(-cs, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.Pan(0, cs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.Pan(0, -cs)
	}

	cx, cy := float64(g.width)/2, float64(g.height)/2
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		s.ZoomAt(cx, cy, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		s.ZoomAt(cx, cy, -1)
	}
}

func (g *Game) handlePointer() {
	s := g.session
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	inView := mx >= 0 && my >= 0 && mx < g.width && my < g.height

	if _, wy := ebiten.Wheel(); wy != 0 && inView {
		dir := 1
		if wy < 0 {
			dir = -1
		}
		s.ZoomAt(x, y, dir)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView {
		s.PointerDown(x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.PointerUp()
	}
}

// Draw renders the visible cells, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	view := screen.SubImage(image.Rect(0, 0, g.width, g.height)).(*ebiten.Image)

	s := g.session
	g.painter.Draw(view, s.Sim(), s.View())
	if s.ShowGrid() {
		g.overlay.DrawGrid(view, s.View())
	}
	g.overlay.DrawText(view, s.Status(), s.Paused())
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
