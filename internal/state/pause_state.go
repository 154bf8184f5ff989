// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-sonar/internal/config"
	"go-sonar/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущее состояние рисуется, но не
// обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	hud           *ui.HUD
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		hud:           ui.NewHUD(0, 0, config.HUDLineHeight, config.TextColor),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	s.hud.DrawCentered(screen, "PAUSED", w, h/2)
}

func (s *PauseState) Exit() {}
