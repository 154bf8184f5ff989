// Command sonar-tui runs the sonar session in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-sonar/internal/app"
	"go-sonar/internal/audio"
	"go-sonar/internal/config"
	"go-sonar/internal/event"
	"go-sonar/internal/log"
	"go-sonar/pkg/tui"
)

const hudRows = 2

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sonar-tui: %v\n", err)
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
	// the screen owns the terminal; logs go to stderr and are only useful redirected
	log.Init(cfg.Log.Level)

	session, err := app.NewSession(cfg)
	if err != nil {
		return err
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := tui.NewRenderer(screen, hudRows)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				renderer.Resize()
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					log.Info("session finished", "stats", session.Stats())
					return nil
				case ev.Rune() == ' ':
					session.Ping()
				case ev.Rune() == 'p':
					paused = !paused
				case ev.Rune() == 'r':
					session.Reset()
				}
			}

		case <-ticker.C:
			if !paused {
				session.Update()
			}
			renderer.Draw(tui.ViewOf(session), statusLines(session.Snapshot(), paused))
		}
	}
}

func statusLines(snap *app.Snapshot, paused bool) []string {
	state := snap.Sonar.State.String()
	if paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("sonar %s r=%.0f  boat %.0f,%.0f  danger zones %d  pulses %d",
			state, snap.Sonar.Radius, snap.Platform.X, snap.Platform.Y, len(snap.DangerZones), snap.Stats.PulsesFired),
		"[space] ping  [p] pause  [r] reset  [q] quit",
	}
}
