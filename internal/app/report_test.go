package app

import (
	"testing"

	"go-sonar/internal/config"
)

func TestReportSplitsFoundAndMissed(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Seed = 5
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Run(600)

	r := s.Report()
	if r.Seed != 5 {
		t.Errorf("Expected seed 5, got %d", r.Seed)
	}
	if r.Mines != len(s.Scene.Mines()) {
		t.Errorf("Expected %d mines, got %d", len(s.Scene.Mines()), r.Mines)
	}
	if got := len(r.DangerZones) + len(r.Missed); got != r.Mines {
		t.Errorf("Expected found + missed = %d, got %d", r.Mines, got)
	}
	for _, m := range r.Missed {
		if s.Memory.Contains(m) {
			t.Errorf("Mine %v reported missed but is a danger zone", m)
		}
	}
	if r.Stats.Ticks != 600 || r.Final.Tick != 600 {
		t.Errorf("Expected 600 ticks, got stats %d final %d", r.Stats.Ticks, r.Final.Tick)
	}
}
