package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

// WaveConfig is one sinusoid of the seabed profile: amplitude * sin(x / period).
type WaveConfig struct {
	Amplitude float64 `yaml:"amplitude" json:"amplitude"`
	Period    float64 `yaml:"period" json:"period"`
}

type SceneConfig struct {
	Width          int          `yaml:"width" json:"width"`
	Height         int          `yaml:"height" json:"height"`
	Seed           int64        `yaml:"seed" json:"seed"`
	SeabedBaseline float64      `yaml:"seabed_baseline" json:"seabed_baseline"`
	Waves          []WaveConfig `yaml:"waves" json:"waves"`
	MineBandStart  int          `yaml:"mine_band_start" json:"mine_band_start"`
	MineBandEnd    int          `yaml:"mine_band_end" json:"mine_band_end"`
	MineSpacing    int          `yaml:"mine_spacing" json:"mine_spacing"`
	MineOffsetMin  int          `yaml:"mine_offset_min" json:"mine_offset_min"`
	MineOffsetMax  int          `yaml:"mine_offset_max" json:"mine_offset_max"`
}

type SonarConfig struct {
	BeamAngle       float64 `yaml:"beam_angle_deg" json:"beam_angle_deg"` // full beam
	MaxRange        float64 `yaml:"max_range" json:"max_range"`
	PulseSpeed      float64 `yaml:"pulse_speed" json:"pulse_speed"`
	SeabedTolerance float64 `yaml:"seabed_tolerance" json:"seabed_tolerance"`
	MineTolerance   float64 `yaml:"mine_tolerance" json:"mine_tolerance"`
}

type PlatformConfig struct {
	StartX           float64 `yaml:"start_x" json:"start_x"`
	Y                float64 `yaml:"y" json:"y"`
	Speed            float64 `yaml:"speed" json:"speed"`
	Width            float64 `yaml:"width" json:"width"`
	Height           float64 `yaml:"height" json:"height"`
	SonarOffsetX     float64 `yaml:"sonar_offset_x" json:"sonar_offset_x"`
	SonarOffsetY     float64 `yaml:"sonar_offset_y" json:"sonar_offset_y"`
	AutoPingInterval int     `yaml:"auto_ping_interval" json:"auto_ping_interval"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

type WebConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Addr    string `yaml:"addr" json:"addr"`
}

// Config is the start-of-session configuration surface.
type Config struct {
	Scene    SceneConfig    `yaml:"scene" json:"scene"`
	Sonar    SonarConfig    `yaml:"sonar" json:"sonar"`
	Platform PlatformConfig `yaml:"platform" json:"platform"`
	Log      LogConfig      `yaml:"log" json:"log"`
	Web      WebConfig      `yaml:"web" json:"web"`
}

// Default returns the reference scene: 1000x600, 60° beam, auto-ping every 60 ticks.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Width:          ScreenWidth,
			Height:         ScreenHeight,
			SeabedBaseline: SeabedBaseline,
			Waves: []WaveConfig{
				{Amplitude: 30, Period: 50},
				{Amplitude: 20, Period: 20},
			},
			MineBandStart: MineBandStart,
			MineBandEnd:   MineBandEnd,
			MineSpacing:   MineSpacing,
			MineOffsetMin: MineOffsetMin,
			MineOffsetMax: MineOffsetMax,
		},
		Sonar: SonarConfig{
			BeamAngle:       BeamAngle,
			MaxRange:        MaxRange,
			PulseSpeed:      PulseSpeed,
			SeabedTolerance: SeabedTolerance,
			MineTolerance:   MineTolerance,
		},
		Platform: PlatformConfig{
			StartX:           PlatformStartX,
			Y:                PlatformY,
			Speed:            PlatformSpeed,
			Width:            PlatformWidth,
			Height:           PlatformHeight,
			SonarOffsetX:     PlatformWidth,
			AutoPingInterval: AutoPingInterval,
		},
		Log: LogConfig{Level: "info"},
		Web: WebConfig{Addr: DefaultWebAddr},
	}
}

// Load reads a YAML file on top of Default, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// nonFinite reports NaN and ±Inf, which slip through every ordered comparison.
func nonFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be finite, got %g", v)
	}
	return nil
}

// Validate reports every problem at once. Values are never clamped.
func (c *Config) Validate() error {
	return errors.Join(c.Scene.Validate(), c.Sonar.Validate(), c.Platform.Validate())
}

func (s SceneConfig) Validate() error {
	var errs []error
	if s.Width <= 0 {
		errs = append(errs, invalid("scene.width", "must be positive, got %d", s.Width))
	}
	if s.Height <= 0 {
		errs = append(errs, invalid("scene.height", "must be positive, got %d", s.Height))
	}
	errs = append(errs, nonFinite("scene.seabed_baseline", s.SeabedBaseline))
	if len(s.Waves) < 2 {
		errs = append(errs, invalid("scene.waves", "need at least two sinusoids, got %d", len(s.Waves)))
	}
	for i, w := range s.Waves {
		errs = append(errs, nonFinite(fmt.Sprintf("scene.waves[%d].amplitude", i), w.Amplitude))
		field := fmt.Sprintf("scene.waves[%d].period", i)
		if err := nonFinite(field, w.Period); err != nil {
			errs = append(errs, err)
		} else if w.Period == 0 {
			errs = append(errs, invalid(field, "must be non-zero"))
		}
	}
	if s.MineSpacing <= 0 {
		errs = append(errs, invalid("scene.mine_spacing", "must be positive, got %d", s.MineSpacing))
	}
	if s.MineBandStart < 0 || s.MineBandStart > s.MineBandEnd || s.MineBandEnd > s.Width {
		errs = append(errs, invalid("scene.mine_band", "[%d, %d) must lie within [0, %d]", s.MineBandStart, s.MineBandEnd, s.Width))
	}
	if s.MineOffsetMin < 0 || s.MineOffsetMin > s.MineOffsetMax {
		errs = append(errs, invalid("scene.mine_offset", "need 0 <= min <= max, got %d..%d", s.MineOffsetMin, s.MineOffsetMax))
	}
	return errors.Join(errs...)
}

// positive checks a finite value > 0.
func positive(field string, v float64) error {
	if err := nonFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return invalid(field, "must be positive, got %g", v)
	}
	return nil
}

func (s SonarConfig) Validate() error {
	var errs []error
	if err := nonFinite("sonar.beam_angle_deg", s.BeamAngle); err != nil {
		errs = append(errs, err)
	} else if s.BeamAngle <= 0 || s.BeamAngle >= 360 {
		errs = append(errs, invalid("sonar.beam_angle_deg", "must be in (0, 360), got %g", s.BeamAngle))
	}
	errs = append(errs,
		positive("sonar.max_range", s.MaxRange),
		positive("sonar.pulse_speed", s.PulseSpeed),
		positive("sonar.seabed_tolerance", s.SeabedTolerance),
		positive("sonar.mine_tolerance", s.MineTolerance),
	)
	return errors.Join(errs...)
}

func (p PlatformConfig) Validate() error {
	errs := []error{
		nonFinite("platform.start_x", p.StartX),
		nonFinite("platform.y", p.Y),
		nonFinite("platform.speed", p.Speed),
		nonFinite("platform.width", p.Width),
		nonFinite("platform.height", p.Height),
		nonFinite("platform.sonar_offset_x", p.SonarOffsetX),
		nonFinite("platform.sonar_offset_y", p.SonarOffsetY),
	}
	if p.Width < 0 || p.Height < 0 {
		errs = append(errs, invalid("platform.size", "must be non-negative, got %gx%g", p.Width, p.Height))
	}
	if p.AutoPingInterval <= 0 {
		errs = append(errs, invalid("platform.auto_ping_interval", "must be positive, got %d", p.AutoPingInterval))
	}
	return errors.Join(errs...)
}
