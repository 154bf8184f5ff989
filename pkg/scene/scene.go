// pkg/scene/scene.go
package scene

import (
	"errors"
	"fmt"
	"math"

	"go-sonar/internal/config"
	"go-sonar/internal/types"
	"go-sonar/internal/utils"
)

// ErrOutOfBounds is returned for seabed queries outside [0, width).
var ErrOutOfBounds = errors.New("seabed query out of bounds")

// Scene — статичная подводная сцена: профиль дна и мины рядом с ним.
// После создания не изменяется.
type Scene struct {
	width  int
	height int
	seed   int64
	seabed []int
	mines  []types.Point
}

// Generate builds the seabed profile and the mine field. A non-zero seed gives
// the same scene on every call; seed 0 is taken from the clock.
func Generate(cfg config.SceneConfig) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate scene: %w", err)
	}
	rng := utils.NewPRNGService(cfg.Seed)

	seabed := GenerateSeabed(cfg.Width, cfg.SeabedBaseline, cfg.Waves)
	mines := make([]types.Point, 0, (cfg.MineBandEnd-cfg.MineBandStart)/cfg.MineSpacing+1)
	for x := cfg.MineBandStart; x < cfg.MineBandEnd; x += cfg.MineSpacing {
		offset := rng.IntRange(cfg.MineOffsetMin, cfg.MineOffsetMax)
		mines = append(mines, types.Point{X: x, Y: seabed[x] - offset})
	}

	return &Scene{
		width:  cfg.Width,
		height: cfg.Height,
		seed:   rng.Seed(),
		seabed: seabed,
		mines:  mines,
	}, nil
}

// GenerateSeabed evaluates baseline + Σ A·sin(x/P) per column, truncated toward zero.
func GenerateSeabed(width int, baseline float64, waves []config.WaveConfig) []int {
	seabed := make([]int, width)
	for x := range seabed {
		y := baseline
		for _, w := range waves {
			y += w.Amplitude * math.Sin(float64(x)/w.Period)
		}
		seabed[x] = int(y)
	}
	return seabed
}

// New builds a hand-authored scene. The seabed is copied and must have one
// elevation per column.
func New(width, height int, seabed []int, mines []types.Point) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: scene size must be positive, got %dx%d", config.ErrInvalid, width, height)
	}
	if len(seabed) != width {
		return nil, fmt.Errorf("%w: seabed has %d columns, scene width is %d", config.ErrInvalid, len(seabed), width)
	}
	return &Scene{
		width:  width,
		height: height,
		seabed: append([]int(nil), seabed...),
		mines:  append([]types.Point(nil), mines...),
	}, nil
}

func (s *Scene) Width() int  { return s.width }
func (s *Scene) Height() int { return s.height }

// Seed returns the effective generation seed, 0 for hand-authored scenes.
func (s *Scene) Seed() int64 { return s.seed }

// SeabedAt returns the seabed elevation of column x.
func (s *Scene) SeabedAt(x int) (int, error) {
	if x < 0 || x >= s.width {
		return 0, fmt.Errorf("%w: x=%d, width=%d", ErrOutOfBounds, x, s.width)
	}
	return s.seabed[x], nil
}

// Seabed returns a copy of the full profile.
func (s *Scene) Seabed() []int {
	return append([]int(nil), s.seabed...)
}

// Mines returns a copy of the mine positions.
func (s *Scene) Mines() []types.Point {
	return append([]types.Point(nil), s.mines...)
}
