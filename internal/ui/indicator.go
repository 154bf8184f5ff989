// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PulseIndicator — круглый индикатор состояния гидролокатора. При каждом
// новом импульсе он коротко «вспыхивает».
type PulseIndicator struct {
	X, Y      float32
	Radius    float32
	sinceKick float64
}

func NewPulseIndicator(x, y, radius float32) *PulseIndicator {
	return &PulseIndicator{X: x, Y: y, Radius: radius, sinceKick: math.Inf(1)}
}

// Kick restarts the flash.
func (i *PulseIndicator) Kick() {
	i.sinceKick = 0
}

func (i *PulseIndicator) Update(deltaTime float64) {
	i.sinceKick += deltaTime
}

// Draw отрисовывает индикатор
func (i *PulseIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	scale := 1.0 + 0.3*math.Exp(-i.sinceKick*8)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
