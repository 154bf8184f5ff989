// cmd/sonar/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go-sonar/internal/app"
	"go-sonar/internal/audio"
	"go-sonar/internal/config"
	"go-sonar/internal/event"
	"go-sonar/internal/log"
	"go-sonar/internal/state"
	"go-sonar/pkg/web"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromMenu = true // false — сразу в симуляцию

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sonar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}
	log.Init(cfg.Log.Level)

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Web.Enabled {
		srv, err := web.NewServer(cfg.Web.Addr, session, session.Scene)
		if err != nil {
			return err
		}
		srv.StartAsync(ctx)
	}

	if flags.Audio {
		sonarAudio := audio.NewSonarAudio(0.4)
		if err := sonarAudio.Initialize(); err != nil {
			log.Warn("audio disabled", "error", err)
		} else {
			defer sonarAudio.Cleanup()
			session.EventDispatcher.SubscribeAll(sonarAudio, event.PulseTriggered, event.DangerZoneAdded)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sonarState := state.NewSonarState(sm, session)
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, sonarState))
	} else {
		sm.SetState(sonarState)
	}

	w, h := session.Scene.Width(), session.Scene.Height()
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          w,
		height:         h,
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("SONAR Simulation: Compromised Area Detection")
	ebiten.SetTPS(config.TicksPerSec)

	log.Info("window opened", "width", w, "height", h, "session", session.ID)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("session finished", "stats", session.Stats())
	return nil
}
