package config

import (
	"errors"
	"os"
	"path/filepath"
	"math"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Scene.Width = 0 }, "scene.width"},
		{"negative height", func(c *Config) { c.Scene.Height = -1 }, "scene.height"},
		{"single wave", func(c *Config) { c.Scene.Waves = c.Scene.Waves[:1] }, "scene.waves"},
		{"zero period", func(c *Config) { c.Scene.Waves[1].Period = 0 }, "scene.waves[1].period"},
		{"zero spacing", func(c *Config) { c.Scene.MineSpacing = 0 }, "scene.mine_spacing"},
		{"band past width", func(c *Config) { c.Scene.MineBandEnd = c.Scene.Width + 1 }, "scene.mine_band"},
		{"inverted band", func(c *Config) { c.Scene.MineBandStart = 800 }, "scene.mine_band"},
		{"inverted offsets", func(c *Config) { c.Scene.MineOffsetMin = 40 }, "scene.mine_offset"},
		{"zero pulse speed", func(c *Config) { c.Sonar.PulseSpeed = 0 }, "sonar.pulse_speed"},
		{"negative pulse speed", func(c *Config) { c.Sonar.PulseSpeed = -5 }, "sonar.pulse_speed"},
		{"zero range", func(c *Config) { c.Sonar.MaxRange = 0 }, "sonar.max_range"},
		{"full circle beam", func(c *Config) { c.Sonar.BeamAngle = 360 }, "sonar.beam_angle_deg"},
		{"zero mine tolerance", func(c *Config) { c.Sonar.MineTolerance = 0 }, "sonar.mine_tolerance"},
		{"zero seabed tolerance", func(c *Config) { c.Sonar.SeabedTolerance = 0 }, "sonar.seabed_tolerance"},
		{"zero interval", func(c *Config) { c.Platform.AutoPingInterval = 0 }, "platform.auto_ping_interval"},
		{"NaN beam", func(c *Config) { c.Sonar.BeamAngle = math.NaN() }, "sonar.beam_angle_deg"},
		{"infinite range", func(c *Config) { c.Sonar.MaxRange = math.Inf(1) }, "sonar.max_range"},
		{"NaN pulse speed", func(c *Config) { c.Sonar.PulseSpeed = math.NaN() }, "sonar.pulse_speed"},
		{"NaN mine tolerance", func(c *Config) { c.Sonar.MineTolerance = math.NaN() }, "sonar.mine_tolerance"},
		{"infinite seabed tolerance", func(c *Config) { c.Sonar.SeabedTolerance = math.Inf(1) }, "sonar.seabed_tolerance"},
		{"NaN platform speed", func(c *Config) { c.Platform.Speed = math.NaN() }, "platform.speed"},
		{"infinite start", func(c *Config) { c.Platform.StartX = math.Inf(-1) }, "platform.start_x"},
		{"NaN sonar offset", func(c *Config) { c.Platform.SonarOffsetY = math.NaN() }, "platform.sonar_offset_y"},
		{"NaN platform width", func(c *Config) { c.Platform.Width = math.NaN() }, "platform.width"},
		{"infinite baseline", func(c *Config) { c.Scene.SeabedBaseline = math.Inf(1) }, "scene.seabed_baseline"},
		{"NaN amplitude", func(c *Config) { c.Scene.Waves[0].Amplitude = math.NaN() }, "scene.waves[0].amplitude"},
		{"infinite period", func(c *Config) { c.Scene.Waves[1].Period = math.Inf(1) }, "scene.waves[1].period"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected error to wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Expected error to mention %q, got %v", tc.field, err)
			}
		})
	}
}

func TestValidateDoesNotClamp(t *testing.T) {
	cfg := Default()
	cfg.Sonar.PulseSpeed = -1
	_ = cfg.Validate()
	if cfg.Sonar.PulseSpeed != -1 {
		t.Errorf("Expected pulse speed to stay -1, got %g", cfg.Sonar.PulseSpeed)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sonar.yaml")
	data := `
scene:
  seed: 42
sonar:
  beam_angle_deg: 90
platform:
  auto_ping_interval: 120
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.Scene.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Scene.Seed)
	}
	if cfg.Sonar.BeamAngle != 90 {
		t.Errorf("Expected beam angle 90, got %g", cfg.Sonar.BeamAngle)
	}
	if cfg.Platform.AutoPingInterval != 120 {
		t.Errorf("Expected interval 120, got %d", cfg.Platform.AutoPingInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.Log.Level)
	}
	// untouched keys keep their defaults
	if cfg.Scene.Width != ScreenWidth || cfg.Sonar.MaxRange != MaxRange {
		t.Errorf("Expected defaults to survive, got width=%d range=%g", cfg.Scene.Width, cfg.Sonar.MaxRange)
	}
	if len(cfg.Scene.Waves) != 2 {
		t.Errorf("Expected default waves, got %d", len(cfg.Scene.Waves))
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sonar:\n  pulse_speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestLoadRejectsNonFiniteValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	data := "sonar:\n  beam_angle_deg: .nan\n  max_range: .inf\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
	for _, field := range []string{"sonar.beam_angle_deg", "sonar.max_range"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Expected error to mention %q, got %v", field, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
