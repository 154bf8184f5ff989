// Package tui draws the sonar scene into a terminal grid.
package tui

import (
	"math"

	"go-sonar/internal/app"
	"go-sonar/internal/component"
	"go-sonar/internal/types"
	"go-sonar/internal/utils"
)

// CellKind is what a terminal cell shows. Higher kinds win when several
// things land in the same cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellBeam
	CellSeabed
	CellMine
	CellEchoSeabed
	CellEchoMine
	CellDanger
	CellPlatform
)

// View is everything the terminal needs from one tick.
type View struct {
	Width, Height int
	Seabed        []int
	Mines         []types.Point
	DangerZones   []types.Point
	Echoes        []component.Detection
	Active        bool
	OriginX       float64
	OriginY       float64
	Radius        float64
	HalfAngle     float64
	PlatformX     float64
	PlatformY     float64
	PlatformW     float64
	PlatformH     float64
}

// ViewOf reads the view from a session. Call it from the goroutine that
// drives Update.
func ViewOf(s *app.Session) View {
	ox, oy, r := s.Sonar.OriginAndRadius()
	px, py := s.Platform.Position()
	pw, ph := s.Platform.Size()
	return View{
		Width:       s.Scene.Width(),
		Height:      s.Scene.Height(),
		Seabed:      s.Scene.Seabed(),
		Mines:       s.Scene.Mines(),
		DangerZones: s.Memory.All(),
		Echoes:      s.Sonar.PulseEchoes(),
		Active:      s.Sonar.IsActive(),
		OriginX:     ox,
		OriginY:     oy,
		Radius:      r,
		HalfAngle:   s.Sonar.HalfAngle(),
		PlatformX:   px,
		PlatformY:   py,
		PlatformW:   pw,
		PlatformH:   ph,
	}
}

// Frame is a cols x rows grid of cell kinds covering the whole scene.
type Frame struct {
	Cols, Rows int
	cells      []CellKind
	sx, sy     float64
}

func NewFrame(cols, rows int) *Frame {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Frame{Cols: cols, Rows: rows, cells: make([]CellKind, cols*rows)}
}

func (f *Frame) At(col, row int) CellKind {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return CellEmpty
	}
	return f.cells[row*f.Cols+col]
}

// Cell maps a scene point to its cell.
func (f *Frame) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / f.sx)), int(math.Floor(y / f.sy))
}

func (f *Frame) mark(col, row int, k CellKind) {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return
	}
	if i := row*f.Cols + col; k > f.cells[i] {
		f.cells[i] = k
	}
}

func (f *Frame) markPoint(x, y float64, k CellKind) {
	c, r := f.Cell(x, y)
	f.mark(c, r, k)
}

// Compose redraws the frame from v.
func (f *Frame) Compose(v View) {
	clear(f.cells)
	f.sx = float64(v.Width) / float64(f.Cols)
	f.sy = float64(v.Height) / float64(f.Rows)

	if v.Active {
		for row := 0; row < f.Rows; row++ {
			for col := 0; col < f.Cols; col++ {
				dx := (float64(col)+0.5)*f.sx - v.OriginX
				dy := (float64(row)+0.5)*f.sy - v.OriginY
				if utils.Distance(dx, dy) <= v.Radius && math.Abs(utils.Bearing(dx, dy)) < v.HalfAngle {
					f.mark(col, row, CellBeam)
				}
			}
		}
	}

	for col := 0; col < f.Cols; col++ {
		x := int((float64(col) + 0.5) * f.sx)
		if x >= 0 && x < len(v.Seabed) {
			f.markPoint(float64(x), float64(v.Seabed[x]), CellSeabed)
		}
	}
	for _, m := range v.Mines {
		f.markPoint(float64(m.X), float64(m.Y), CellMine)
	}
	for _, e := range v.Echoes {
		k := CellEchoSeabed
		if e.Kind == component.KindMine {
			k = CellEchoMine
		}
		f.markPoint(float64(e.X), float64(e.Y), k)
	}
	for _, z := range v.DangerZones {
		f.markPoint(float64(z.X), float64(z.Y), CellDanger)
	}

	c0, r0 := f.Cell(v.PlatformX, v.PlatformY)
	c1, r1 := f.Cell(v.PlatformX+v.PlatformW, v.PlatformY+v.PlatformH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			f.mark(col, row, CellPlatform)
		}
	}
}
