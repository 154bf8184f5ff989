// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-sonar/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD — текстовая панель в левом верхнем углу.
type HUD struct {
	fontFace   font.Face
	x, y       int
	lineHeight int
	color      color.Color
}

func NewHUD(x, y, lineHeight int, clr color.Color) *HUD {
	return &HUD{fontFace: basicfont.Face7x13, x: x, y: y, lineHeight: lineHeight, color: clr}
}

// Lines builds the HUD text for a snapshot.
func Lines(snap *app.Snapshot, autoPingInterval int) []string {
	return []string{
		"SONAR Simulation: Compromised Area Detection",
		fmt.Sprintf("[SPACE] Manual Ping | Auto-ping every %d ticks | [P] Pause [R] Reset", autoPingInterval),
		fmt.Sprintf("Boat Position: %.0f, %.0f", snap.Platform.X, snap.Platform.Y),
		fmt.Sprintf("Sonar: %s r=%.0f | Danger zones: %d | Pulses: %d", snap.Sonar.State, snap.Sonar.Radius, len(snap.DangerZones), snap.Stats.PulsesFired),
		"Green: Seabed | Yellow: Mines | Red: Detected Danger",
	}
}

func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	ascent := h.fontFace.Metrics().Ascent.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, h.fontFace, h.x, h.y+ascent+i*h.lineHeight, h.color)
	}
}

// DrawCentered рисует строку по центру экрана.
func (h *HUD) DrawCentered(screen *ebiten.Image, line string, width, y int) {
	bounds := text.BoundString(h.fontFace, line)
	text.Draw(screen, line, h.fontFace, (width-bounds.Dx())/2, y, h.color)
}
