// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 600
	TicksPerSec  = 60
	MaxDeltaTime = 0.1 // секунды, защита от рывков после паузы окна

	// Terrain
	SeabedBaseline = 400.0
	MineBandStart  = 300
	MineBandEnd    = 700
	MineSpacing    = 30
	MineOffsetMin  = 10
	MineOffsetMax  = 30

	// Sonar
	BeamAngle       = 60.0 // полный угол луча, градусы
	MaxRange        = 400.0
	PulseSpeed      = 5.0 // пикселей за тик
	SeabedTolerance = 5.0
	MineTolerance   = 10.0

	// Platform
	PlatformStartX   = 100.0
	PlatformY        = 300.0
	PlatformSpeed    = 2.0
	PlatformWidth    = 40.0
	PlatformHeight   = 15.0
	AutoPingInterval = 60 // тиков, ~2 секунды

	CommandQueueSize = 16
	DefaultWebAddr   = ":8080"

	// Rendering
	MineRadius        = 5.0
	DangerZoneRadius  = 8.0
	DetectionRadius   = 5.0
	EchoFlashDuration = 0.5 // секунд
	HousingSize       = 10.0
	IndicatorOffsetX  = 30
	IndicatorRadius   = 8.0
	HUDLineHeight     = 20
	HUDMargin         = 10
)

var (
	BackgroundColor = color.RGBA{5, 20, 50, 255}
	BeamColor       = color.RGBA{0, 150, 255, 50}
	DangerColor     = color.RGBA{255, 50, 50, 255}
	SeabedColor     = color.RGBA{50, 255, 50, 255}
	MineColor       = color.RGBA{255, 255, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	PlatformColor   = color.RGBA{255, 255, 255, 255}
	HousingColor    = color.RGBA{255, 50, 50, 255}
	ActiveColor     = color.RGBA{0, 150, 255, 220}
	IdleColor       = color.RGBA{70, 70, 90, 220}
	EchoLineAlpha   = uint8(100)
	StrokeWidth     = float32(2.0)
)
