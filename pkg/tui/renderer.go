package tui

import (
	"github.com/gdamore/tcell/v2"
)

var cellGlyphs = map[CellKind]struct {
	r     rune
	style tcell.Style
}{
	CellBeam:       {'·', tcell.StyleDefault.Foreground(tcell.ColorNavy)},
	CellSeabed:     {'~', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	CellMine:       {'*', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	CellEchoSeabed: {'o', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)},
	CellEchoMine:   {'o', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	CellDanger:     {'X', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	CellPlatform:   {'=', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
}

// Glyph returns the rune and style a cell kind is drawn with.
func Glyph(k CellKind) (rune, tcell.Style) {
	if g, ok := cellGlyphs[k]; ok {
		return g.r, g.style
	}
	return ' ', tcell.StyleDefault
}

// Renderer draws frames and a status bar on a tcell screen. The bottom
// hudRows rows belong to the status bar.
type Renderer struct {
	screen  tcell.Screen
	hudRows int
	frame   *Frame
}

func NewRenderer(screen tcell.Screen, hudRows int) *Renderer {
	r := &Renderer{screen: screen, hudRows: hudRows}
	r.Resize()
	return r
}

// Resize re-fits the frame to the screen.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.frame = NewFrame(w, h-r.hudRows)
}

func (r *Renderer) Frame() *Frame {
	return r.frame
}

func (r *Renderer) Draw(v View, hud []string) {
	r.screen.Clear()
	r.frame.Compose(v)
	for row := 0; row < r.frame.Rows; row++ {
		for col := 0; col < r.frame.Cols; col++ {
			if k := r.frame.At(col, row); k != CellEmpty {
				ch, style := Glyph(k)
				r.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range hud {
		if i >= r.hudRows {
			break
		}
		for x, ch := range []rune(line) {
			r.screen.SetContent(x, r.frame.Rows+i, ch, nil, hudStyle)
		}
	}
	r.screen.Show()
}
