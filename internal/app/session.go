// internal/app/session.go
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"go-sonar/internal/config"
	"go-sonar/internal/entity"
	"go-sonar/internal/event"
	"go-sonar/internal/log"
	"go-sonar/internal/system"
	"go-sonar/internal/types"
	"go-sonar/pkg/scene"
)

// ErrCommandQueueFull is returned by Enqueue when the session is not draining.
var ErrCommandQueueFull = errors.New("session command queue full")

// Command is a user request applied at the start of the next tick.
type Command int

const (
	CommandPing Command = iota
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandPing:
		return "ping"
	case CommandReset:
		return "reset"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Stats counts what happened during the session.
type Stats struct {
	Ticks         uint64 `json:"ticks"`
	PulsesFired   int    `json:"pulses_fired"`
	PingsIgnored  int    `json:"pings_ignored"`
	PulsesExpired int    `json:"pulses_expired"`
	Wraps         int    `json:"wraps"`
	DangerZones   int    `json:"danger_zones"`
}

// Session owns the scene, the platform with its sonar, the danger-zone memory
// and the presentation effects. Update, Ping and Reset must be called from a
// single goroutine; Enqueue and Snapshot are safe from any goroutine.
type Session struct {
	ID                 string
	Scene              *scene.Scene
	ECS                *entity.ECS
	Platform           *system.PlatformSystem
	Sonar              *system.SonarSystem
	Memory             *system.DetectionMemory
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher

	cfg      *config.Config
	seabed   []int
	mines    []types.Point
	stats    Stats
	commands chan Command
	snapshot atomic.Pointer[Snapshot]
	logger   *slog.Logger
}

// NewSession generates the scene from cfg and builds a session around it.
func NewSession(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sc, err := scene.Generate(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return NewSessionWithScene(cfg, sc)
}

// NewSessionWithScene builds a session over a prebuilt scene.
func NewSessionWithScene(cfg *config.Config, sc *scene.Scene) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if sc == nil {
		return nil, errors.New("new session: nil scene")
	}
	if err := errors.Join(cfg.Sonar.Validate(), cfg.Platform.Validate()); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	dispatcher := event.NewDispatcher()
	sonar, err := system.NewSonarSystem(cfg.Sonar, dispatcher)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	platform, err := system.NewPlatformSystem(cfg.Platform, sc.Width(), sonar, dispatcher)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	ecs := entity.NewECS()

	s := &Session{
		ID:                 uuid.NewString(),
		Scene:              sc,
		ECS:                ecs,
		Platform:           platform,
		Sonar:              sonar,
		Memory:             system.NewDetectionMemory(dispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs, config.EchoFlashDuration),
		EventDispatcher:    dispatcher,
		cfg:                cfg,
		seabed:             sc.Seabed(),
		mines:              sc.Mines(),
		commands:           make(chan Command, config.CommandQueueSize),
	}
	s.logger = log.With("session", s.ID)

	listener := &SessionEventListener{session: s}
	dispatcher.SubscribeAll(listener,
		event.PulseTriggered,
		event.PingIgnored,
		event.PulseExpired,
		event.DangerZoneAdded,
		event.PlatformWrapped,
		event.SessionReset,
	)

	s.publish()
	s.logger.Info("session started",
		"width", sc.Width(), "height", sc.Height(), "seed", sc.Seed(), "mines", len(s.mines))
	return s, nil
}

// Update progresses the simulation by one tick: queued commands, then
// platform, sonar, detection memory and effects, in that order.
func (s *Session) Update() {
	s.drainCommands()

	s.Platform.Tick()
	detections := s.Sonar.Advance(s.seabed, s.mines)
	s.Memory.Record(detections)
	s.VisualEffectSystem.Spawn(detections)
	s.VisualEffectSystem.Update(1.0 / config.TicksPerSec)

	s.stats.Ticks++
	s.publish()
}

// Run advances n ticks.
func (s *Session) Run(n int) {
	for i := 0; i < n; i++ {
		s.Update()
	}
}

// Ping is the manual trigger.
func (s *Session) Ping() bool {
	return s.Platform.RequestPing()
}

// Reset starts a new session over the same scene.
func (s *Session) Reset() {
	s.Memory.Reset()
	s.Sonar.Reset()
	s.Platform.Reset()
	s.ECS.Clear()
	s.stats = Stats{}
	old := s.ID
	s.ID = uuid.NewString()
	s.logger = log.With("session", s.ID)
	s.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset, Data: old})
	s.publish()
}

// Enqueue schedules a command for the next Update. Safe for concurrent use.
func (s *Session) Enqueue(cmd Command) error {
	select {
	case s.commands <- cmd:
		return nil
	default:
		return ErrCommandQueueFull
	}
}

func (s *Session) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			switch cmd {
			case CommandPing:
				s.Ping()
			case CommandReset:
				s.Reset()
			default:
				s.logger.Warn("unknown command", "command", cmd)
			}
		default:
			return
		}
	}
}

func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) Config() *config.Config {
	return s.cfg
}

// SessionEventListener ведёт статистику и журнал событий сессии.
type SessionEventListener struct {
	session *Session
}

// OnEvent реализует интерфейс event.Listener.
func (l *SessionEventListener) OnEvent(e event.Event) {
	s := l.session
	switch e.Type {
	case event.PulseTriggered:
		s.stats.PulsesFired++
		if p, ok := e.Data.(event.PulseData); ok {
			s.logger.Debug("pulse triggered", "x", p.OriginX, "y", p.OriginY)
		}
	case event.PingIgnored:
		s.stats.PingsIgnored++
		if p, ok := e.Data.(event.PulseData); ok {
			s.logger.Debug("ping ignored, pulse in flight", "radius", p.Radius)
		}
	case event.PulseExpired:
		s.stats.PulsesExpired++
		s.logger.Debug("pulse expired")
	case event.DangerZoneAdded:
		s.stats.DangerZones = s.Memory.Len()
		if p, ok := e.Data.(types.Point); ok {
			s.logger.Info("danger zone confirmed", "x", p.X, "y", p.Y, "total", s.stats.DangerZones)
		}
	case event.PlatformWrapped:
		s.stats.Wraps++
		s.logger.Debug("platform wrapped")
	case event.SessionReset:
		s.logger.Info("session reset", "previous", e.Data)
	}
}
