// internal/system/platform.go
package system

import (
	"errors"
	"fmt"

	"go-sonar/internal/component"
	"go-sonar/internal/config"
	"go-sonar/internal/event"
)

// PlatformSystem двигает судно, держит излучатель на фиксированном смещении
// и запускает импульсы по таймеру.
type PlatformSystem struct {
	position   component.Position
	velocity   component.Velocity
	platform   component.Platform
	startX     float64
	sceneWidth float64
	sonar      *SonarSystem
	dispatcher *event.Dispatcher
}

func NewPlatformSystem(cfg config.PlatformConfig, sceneWidth int, sonar *SonarSystem, dispatcher *event.Dispatcher) (*PlatformSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}
	if sceneWidth <= 0 {
		return nil, fmt.Errorf("platform: %w: scene width must be positive, got %d", config.ErrInvalid, sceneWidth)
	}
	if sonar == nil {
		return nil, errors.New("platform: nil sonar")
	}
	s := &PlatformSystem{
		position: component.Position{X: cfg.StartX, Y: cfg.Y},
		velocity: component.Velocity{Speed: cfg.Speed},
		platform: component.Platform{
			Width:            cfg.Width,
			Height:           cfg.Height,
			SonarOffsetX:     cfg.SonarOffsetX,
			SonarOffsetY:     cfg.SonarOffsetY,
			AutoPingInterval: cfg.AutoPingInterval,
		},
		startX:     cfg.StartX,
		sceneWidth: float64(sceneWidth),
		sonar:      sonar,
		dispatcher: dispatcher,
	}
	s.syncOrigin()
	return s, nil
}

// Tick moves the platform one step, wraps it at the scene edge, re-attaches the
// emitter and fires the auto-ping once the interval has elapsed.
func (s *PlatformSystem) Tick() {
	s.position.X += s.velocity.Speed
	wrapped := false
	if s.position.X > s.sceneWidth {
		s.position.X = -s.platform.Width
		wrapped = true
	} else if s.velocity.Speed < 0 && s.position.X < -s.platform.Width {
		s.position.X = s.sceneWidth
		wrapped = true
	}
	s.syncOrigin()
	if wrapped {
		s.dispatcher.Dispatch(event.Event{Type: event.PlatformWrapped, Data: s.position})
	}

	s.platform.TicksSincePing++
	if s.platform.TicksSincePing >= s.platform.AutoPingInterval {
		s.platform.TicksSincePing = 0
		s.sonar.Trigger(s.SonarOrigin())
	}
}

// RequestPing is the manual trigger. The auto-ping cadence restarts from here
// whether or not the sonar accepted the trigger.
func (s *PlatformSystem) RequestPing() bool {
	s.platform.TicksSincePing = 0
	return s.sonar.Trigger(s.SonarOrigin())
}

// Reset returns the platform to its start position with a fresh cadence.
func (s *PlatformSystem) Reset() {
	s.position.X = s.startX
	s.platform.TicksSincePing = 0
	s.syncOrigin()
}

func (s *PlatformSystem) syncOrigin() {
	s.sonar.SetOrigin(s.SonarOrigin())
}

func (s *PlatformSystem) Position() (x, y float64) {
	return s.position.X, s.position.Y
}

func (s *PlatformSystem) SonarOrigin() (x, y float64) {
	return s.position.X + s.platform.SonarOffsetX, s.position.Y + s.platform.SonarOffsetY
}

func (s *PlatformSystem) Size() (w, h float64) {
	return s.platform.Width, s.platform.Height
}

func (s *PlatformSystem) TicksSincePing() int {
	return s.platform.TicksSincePing
}

func (s *PlatformSystem) Sonar() *SonarSystem {
	return s.sonar
}
