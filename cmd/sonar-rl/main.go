package main

import (
	"flag"
	"fmt"
	"os"

	"go-sonar/internal/app"
	"go-sonar/internal/component"
	"go-sonar/internal/config"
	"go-sonar/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// echoColor возвращает цвет отметки по типу эха
func echoColor(kind component.DetectionKind) rl.Color {
	if kind == component.KindMine {
		return config.DangerColor
	}
	return config.SeabedColor
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sonar-rl: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.Log.Level)

	session, err := app.NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sonar-rl: %v\n", err)
		os.Exit(1)
	}

	// --- Инициализация ---
	w, h := int32(session.Scene.Width()), int32(session.Scene.Height())
	rl.InitWindow(w, h, "Raylib Sonar Viewer | SPACE - Ping, R - Reset")
	rl.SetTargetFPS(config.TicksPerSec)

	seabed := session.Scene.Seabed()
	mines := session.Scene.Mines()
	paused := false

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		// --- Обновление (логика) ---
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyR) {
			session.Reset()
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			session.Ping()
		}
		if !paused {
			session.Update()
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)

		for x := 0; x+1 < len(seabed); x++ {
			rl.DrawLine(int32(x), int32(seabed[x]), int32(x+1), int32(seabed[x+1]), config.SeabedColor)
		}
		for _, m := range mines {
			rl.DrawCircle(int32(m.X), int32(m.Y), config.MineRadius, config.MineColor)
		}
		for _, z := range session.Memory.All() {
			rl.DrawCircleLines(int32(z.X), int32(z.Y), config.DangerZoneRadius, config.DangerColor)
		}

		if session.Sonar.IsActive() {
			ox, oy, radius := session.Sonar.OriginAndRadius()
			half := float32(session.Sonar.HalfAngle())
			origin := rl.NewVector2(float32(ox), float32(oy))
			// углы raylib отсчитываются по часовой стрелке, сектор симметричен
			rl.DrawCircleSector(origin, float32(radius), -half, half, 24, config.BeamColor)
			for _, d := range session.Sonar.PulseEchoes() {
				c := echoColor(d.Kind)
				rl.DrawCircle(int32(d.X), int32(d.Y), config.DetectionRadius, c)
				rl.DrawLineV(origin, rl.NewVector2(float32(d.X), float32(d.Y)), rl.Fade(c, float32(config.EchoLineAlpha)/255))
			}
		}

		px, py := session.Platform.Position()
		pw, ph := session.Platform.Size()
		rl.DrawRectangle(int32(px), int32(py), int32(pw), int32(ph), config.PlatformColor)
		rl.DrawRectangle(int32(px+pw-config.HousingSize), int32(py-config.HousingSize),
			int32(config.HousingSize), int32(config.HousingSize), config.HousingColor)

		// --- UI ---
		snap := session.Snapshot()
		rl.DrawText(fmt.Sprintf("Sonar: %s r=%.0f | Danger zones: %d | Pulses: %d",
			snap.Sonar.State, snap.Sonar.Radius, len(snap.DangerZones), snap.Stats.PulsesFired),
			config.HUDMargin, config.HUDMargin, 20, config.TextColor)
		if paused {
			rl.DrawText("PAUSED", w/2-40, h/2, 20, config.TextColor)
		}
		rl.DrawFPS(config.HUDMargin, config.HUDMargin+config.HUDLineHeight+10)

		rl.EndDrawing()
	}

	rl.CloseWindow()
	log.Info("session finished", "stats", session.Stats())
}
