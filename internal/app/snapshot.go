package app

import (
	"go-sonar/internal/component"
	"go-sonar/internal/types"
)

type PlatformView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SonarView struct {
	State     component.PulseState `json:"state"`
	OriginX   float64              `json:"origin_x"`
	OriginY   float64              `json:"origin_y"`
	Radius    float64              `json:"radius"`
	BeamAngle float64              `json:"beam_angle_deg"`
	MaxRange  float64              `json:"max_range"`
}

// Snapshot is an immutable copy of the session after a tick. Readers on other
// goroutines only ever see whole snapshots.
type Snapshot struct {
	SessionID   string                `json:"session_id"`
	Tick        uint64                `json:"tick"`
	Platform    PlatformView          `json:"platform"`
	Sonar       SonarView             `json:"sonar"`
	Detections  []component.Detection `json:"detections"`
	DangerZones []types.Point         `json:"danger_zones"`
	Stats       Stats                 `json:"stats"`
}

// Snapshot returns the latest published snapshot.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

func (s *Session) publish() {
	px, py := s.Platform.Position()
	pw, ph := s.Platform.Size()
	ox, oy, r := s.Sonar.OriginAndRadius()
	detections := s.Sonar.LastTickDetections()
	if detections == nil {
		detections = []component.Detection{}
	}
	zones := s.Memory.All()
	if zones == nil {
		zones = []types.Point{}
	}

	s.snapshot.Store(&Snapshot{
		SessionID: s.ID,
		Tick:      s.stats.Ticks,
		Platform:  PlatformView{X: px, Y: py, Width: pw, Height: ph},
		Sonar: SonarView{
			State:     s.Sonar.State(),
			OriginX:   ox,
			OriginY:   oy,
			Radius:    r,
			BeamAngle: s.Sonar.BeamAngle(),
			MaxRange:  s.Sonar.MaxRange(),
		},
		Detections:  detections,
		DangerZones: zones,
		Stats:       s.stats,
	})
}
