// internal/state/menu_state.go
package state

import (
	"go-sonar/internal/config"
	"go-sonar/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка перед запуском симуляции.
type MenuState struct {
	sm   *StateMachine
	next State
	hud  *ui.HUD
}

func NewMenuState(sm *StateMachine, next State) *MenuState {
	return &MenuState{
		sm:   sm,
		next: next,
		hud:  ui.NewHUD(0, 0, config.HUDLineHeight, config.TextColor),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m.hud.DrawCentered(screen, "SONAR Simulation", w, h/2-config.HUDLineHeight)
	m.hud.DrawCentered(screen, "Press SPACE to start, ESC to quit", w, h/2+config.HUDLineHeight)
}

func (m *MenuState) Exit() {}
