// Package term runs a Session in a terminal. Each grid cell is drawn two
// columns wide and one row tall at the smallest zoom, so one "pixel" of the
// camera is half a column horizontally and one row vertically.
package term

import (
	"context"
	"flag"
	"time"

	"life-ca/internal/app"
	"life-ca/internal/core"
	"life-ca/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	colsPerUnit = 2
	footerRows  = 2
	helpLine    = "spc run  c clear  r rand  f step  s save  l load  g grid  +/- zoom  arrows pan  q quit"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	footerStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
)

// Configure adjusts cfg for a cols×rows terminal: one camera unit per cell at
// the smallest zoom, up to four, a one-unit drag dead zone, and a region of
// interest that fills the grid area. Flags set explicitly on fs are kept.
func Configure(cfg *app.Config, fs *flag.FlagSet, cols, rows int) {
	set := make(map[string]bool)
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	defaults := []struct {
		name  string
		apply func()
	}{
		{"cell", func() { cfg.Cell = 1 }},
		{"min-cell", func() { cfg.MinCell = 1 }},
		{"max-cell", func() { cfg.MaxCell = 4 }},
		{"drag", func() { cfg.Drag = 1 }},
		{"width", func() { cfg.Width = max(cols/colsPerUnit, 1) }},
		{"height", func() { cfg.Height = max(rows-footerRows, 1) }},
	}
	for _, d := range defaults {
		if !set[d.name] {
			d.apply()
		}
	}
}

// UI binds a tcell screen to a session.
type UI struct {
	screen  tcell.Screen
	session *app.Session
	raster  *core.ByteGrid

	buttonDown bool
}

// New returns a UI drawing session on screen. The screen must already be
// initialised.
func New(screen tcell.Screen, session *app.Session) *UI {
	screen.EnableMouse()
	return &UI{screen: screen, session: session, raster: core.NewByteGrid(1, 1)}
}

// viewSize returns the grid area in camera units.
func (u *UI) viewSize() (w, h int) {
	cols, rows := u.screen.Size()
	return cols / colsPerUnit, max(rows-footerRows, 0)
}

// Run polls events and advances the session at the given frame interval until
// the user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()
	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !u.HandleEvent(ev) {
				return nil
			}
			u.Draw()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if u.session.Update(dt) > 0 {
				u.Draw()
			}
		}
	}
}

// HandleEvent applies a key, mouse or resize event. It returns false when the
// user asked to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
	return true
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	s := u.session
	cs := float64(s.View().CellSize())
	w, h := u.viewSize()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.Pan(cs, 0)
	case tcell.KeyRight:
		s.Pan(-cs, 0)
	case tcell.KeyUp:
		s.Pan(0, cs)
	case tcell.KeyDown:
		s.Pan(0, -cs)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			s.TogglePause()
		case 'c', 'C':
			s.Clear()
		case 'r', 'R':
			s.Randomize()
		case 'f', 'F':
			s.StepOnce()
		case 's', 'S':
			s.Save()
		case 'l', 'L':
			s.Load()
		case 'g', 'G':
			s.ToggleGridLines()
		case '+', '=':
			s.ZoomAt(float64(w)/2, float64(h)/2, 1)
		case '-', '_':
			s.ZoomAt(float64(w)/2, float64(h)/2, -1)
		}
	}
	return true
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	s := u.session
	col, row := ev.Position()
	x, y := float64(col)/colsPerUnit, float64(row)
	_, h := u.viewSize()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		s.ZoomAt(x, y, 1)
		return
	case btn&tcell.WheelDown != 0:
		s.ZoomAt(x, y, -1)
		return
	}

	down := btn&tcell.Button1 != 0
	switch {
	case down && !u.buttonDown:
		u.buttonDown = true
		if row < h {
			s.PointerDown(x, y)
		}
	case down:
		s.PointerMove(x, y)
	case u.buttonDown:
		u.buttonDown = false
		s.PointerMove(x, y)
		s.PointerUp()
	}
}

// Draw renders the visible cells and the footer.
func (u *UI) Draw() {
	s := u.session
	vp := s.View()
	cols, rows := u.screen.Size()
	w, h := u.viewSize()

	render.Rasterize(u.raster, s.Sim().LiveCells(), vp.VisibleRect(w, h))
	dead := ' '
	if s.ShowGrid() {
		dead = '·'
	}
	for row := 0; row < h; row++ {
		for col := 0; col < cols; col++ {
			// Sample the centre of the character cell.
			px := (float64(col) + 0.5) / colsPerUnit
			py := float64(row) + 0.5
			c := vp.ScreenToWorld(px, py)
			if u.raster.At(c) != 0 {
				u.screen.SetContent(col, row, ' ', nil, aliveStyle)
				continue
			}
			ch := ' '
			// Mark the character holding the cell's top-left corner.
			if x0, y0 := vp.WorldToScreen(c); x0 >= float64(col)/colsPerUnit && y0 >= float64(row) {
				ch = dead
			}
			u.screen.SetContent(col, row, ch, nil, deadStyle)
		}
	}
	if rows > h {
		u.drawLine(h, s.Status())
	}
	if rows > h+1 {
		u.drawLine(h+1, helpLine)
	}
	u.screen.Show()
}

func (u *UI) drawLine(row int, text string) {
	cols, _ := u.screen.Size()
	runes := []rune(text)
	for col := 0; col < cols; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		u.screen.SetContent(col, row, ch, nil, footerStyle)
	}
}
