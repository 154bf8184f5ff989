// internal/state/sonar_state.go
package state

import (
	"go-sonar/internal/app"
	"go-sonar/internal/config"
	"go-sonar/internal/event"
	"go-sonar/internal/ui"
	"go-sonar/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SonarState — основное состояние: один тик сессии на кадр ebiten.
type SonarState struct {
	sm        *StateMachine
	session   *app.Session
	renderer  *render.SceneRenderer
	hud       *ui.HUD
	indicator *ui.PulseIndicator
}

func NewSonarState(sm *StateMachine, session *app.Session) *SonarState {
	sc := session.Scene
	colors := &render.SceneColors{
		BackgroundColor: config.BackgroundColor,
		SeabedColor:     config.SeabedColor,
		MineColor:       config.MineColor,
		DangerColor:     config.DangerColor,
		BeamColor:       config.BeamColor,
		PlatformColor:   config.PlatformColor,
		HousingColor:    config.HousingColor,
		EchoLineAlpha:   config.EchoLineAlpha,
		StrokeWidth:     config.StrokeWidth,
	}
	renderer := render.NewSceneRenderer(sc.Width(), sc.Height(), colors)
	renderer.RenderSeabedImage(sc.Seabed())

	gs := &SonarState{
		sm:       sm,
		session:  session,
		renderer: renderer,
		hud:      ui.NewHUD(config.HUDMargin, config.HUDMargin, config.HUDLineHeight, config.TextColor),
		indicator: ui.NewPulseIndicator(
			float32(sc.Width()-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			config.IndicatorRadius,
		),
	}
	session.EventDispatcher.Subscribe(event.PulseTriggered, event.ListenerFunc(func(event.Event) {
		gs.indicator.Kick()
	}))
	return gs
}

func (g *SonarState) Enter() {}

func (g *SonarState) Update(deltaTime float64) error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.Ping()
	}

	g.session.Update()
	g.indicator.Update(deltaTime)
	return nil
}

func (g *SonarState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)

	snap := g.session.Snapshot()
	g.hud.Draw(screen, ui.Lines(snap, g.session.Config().Platform.AutoPingInterval))

	stateColor := config.IdleColor
	if g.session.Sonar.IsActive() {
		stateColor = config.ActiveColor
	}
	g.indicator.Draw(screen, stateColor)
}

func (g *SonarState) Exit() {}
