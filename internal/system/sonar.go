// internal/system/sonar.go
package system

import (
	"fmt"
	"math"

	"go-sonar/internal/component"
	"go-sonar/internal/config"
	"go-sonar/internal/event"
	"go-sonar/internal/types"
	"go-sonar/internal/utils"
)

// SonarSystem — движок гидролокатора: жизненный цикл импульса и стробирование
// эха по углу и дальности.
//
// A trigger while the pulse is in flight is ignored; the running pulse keeps
// its radius and detections.
type SonarSystem struct {
	pulse           component.Pulse
	beamAngle       float64
	seabedTolerance float64
	mineTolerance   float64
	detections      []component.Detection
	echoes          []component.Detection
	dispatcher      *event.Dispatcher
}

// NewSonarSystem создает движок гидролокатора в состоянии idle.
func NewSonarSystem(cfg config.SonarConfig, dispatcher *event.Dispatcher) (*SonarSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sonar: %w", err)
	}
	return &SonarSystem{
		pulse: component.Pulse{
			State:     component.PulseIdle,
			MaxRadius: cfg.MaxRange,
			HalfAngle: cfg.BeamAngle / 2,
			Speed:     cfg.PulseSpeed,
		},
		beamAngle:       cfg.BeamAngle,
		seabedTolerance: cfg.SeabedTolerance,
		mineTolerance:   cfg.MineTolerance,
		dispatcher:      dispatcher,
	}, nil
}

// Trigger starts a pulse from (x, y) if idle. Returns false when a pulse is
// already active; nothing changes in that case.
func (s *SonarSystem) Trigger(x, y float64) bool {
	if s.pulse.State == component.PulseActive {
		s.dispatcher.Dispatch(event.Event{Type: event.PingIgnored, Data: s.pulseData()})
		return false
	}
	s.pulse.State = component.PulseActive
	s.pulse.OriginX, s.pulse.OriginY = x, y
	s.pulse.Radius = 0
	s.detections = s.detections[:0]
	s.echoes = s.echoes[:0]
	s.dispatcher.Dispatch(event.Event{Type: event.PulseTriggered, Data: s.pulseData()})
	return true
}

// SetOrigin moves the emission point; the platform calls it every tick.
func (s *SonarSystem) SetOrigin(x, y float64) {
	s.pulse.OriginX, s.pulse.OriginY = x, y
}

// Advance runs one tick of the pulse against the scene and returns this
// tick's detections. Idle pulses do nothing.
func (s *SonarSystem) Advance(seabed []int, mines []types.Point) []component.Detection {
	if s.pulse.State != component.PulseActive {
		return nil
	}

	s.pulse.Radius += s.pulse.Speed
	if s.pulse.Radius > s.pulse.MaxRadius {
		s.pulse.State = component.PulseIdle
		s.detections = s.detections[:0]
		s.dispatcher.Dispatch(event.Event{Type: event.PulseExpired, Data: s.pulseData()})
		return nil
	}

	s.detections = s.detections[:0]
	for x, y := range seabed {
		if s.inGate(float64(x), float64(y), s.seabedTolerance) {
			s.detections = append(s.detections, component.Detection{X: x, Y: y, Kind: component.KindSeabed})
		}
	}
	for _, m := range mines {
		if s.inGate(float64(m.X), float64(m.Y), s.mineTolerance) {
			s.detections = append(s.detections, component.Detection{X: m.X, Y: m.Y, Kind: component.KindMine})
		}
	}
	s.echoes = append(s.echoes, s.detections...)

	return s.LastTickDetections()
}

// inGate: |bearing| < half beam (boundary excluded) and |dist - radius| < tol.
func (s *SonarSystem) inGate(x, y, tolerance float64) bool {
	dx := x - s.pulse.OriginX
	dy := y - s.pulse.OriginY
	if math.Abs(utils.Bearing(dx, dy)) >= s.pulse.HalfAngle {
		return false
	}
	return math.Abs(utils.Distance(dx, dy)-s.pulse.Radius) < tolerance
}

// Reset forces the pulse idle and drops all transient echoes.
func (s *SonarSystem) Reset() {
	s.pulse.State = component.PulseIdle
	s.pulse.Radius = 0
	s.detections = s.detections[:0]
	s.echoes = s.echoes[:0]
}

func (s *SonarSystem) IsActive() bool {
	return s.pulse.State == component.PulseActive
}

func (s *SonarSystem) State() component.PulseState {
	return s.pulse.State
}

func (s *SonarSystem) OriginAndRadius() (x, y, radius float64) {
	return s.pulse.OriginX, s.pulse.OriginY, s.pulse.Radius
}

// BeamAngle is the full beam width in degrees.
func (s *SonarSystem) BeamAngle() float64 { return s.beamAngle }

func (s *SonarSystem) HalfAngle() float64 { return s.pulse.HalfAngle }

func (s *SonarSystem) MaxRange() float64 { return s.pulse.MaxRadius }

// LastTickDetections returns a copy of the detections of the latest active tick.
func (s *SonarSystem) LastTickDetections() []component.Detection {
	return append([]component.Detection(nil), s.detections...)
}

// PulseEchoes returns every detection of the current pulse so far.
func (s *SonarSystem) PulseEchoes() []component.Detection {
	return append([]component.Detection(nil), s.echoes...)
}

func (s *SonarSystem) pulseData() event.PulseData {
	return event.PulseData{OriginX: s.pulse.OriginX, OriginY: s.pulse.OriginY, Radius: s.pulse.Radius}
}
