// Package web serves session telemetry over HTTP and websockets.
package web

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"go-sonar/internal/app"
	"go-sonar/internal/log"
	"go-sonar/internal/types"
	"go-sonar/pkg/hub"
	"go-sonar/pkg/scene"
)

// TelemetryInterval is how often the latest snapshot is pushed to websocket clients.
const TelemetryInterval = 50 * time.Millisecond

// Session is what the server needs from a running simulation. Both methods
// must be safe to call from request goroutines.
type Session interface {
	Snapshot() *app.Snapshot
	Enqueue(cmd app.Command) error
}

// SceneView is the static part of the scene, sent once per client.
type SceneView struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Seed   int64         `json:"seed"`
	Seabed []int         `json:"seabed"`
	Mines  []types.Point `json:"mines"`
}

type Server struct {
	app       *fiber.App
	addr      string
	session   Session
	scene     SceneView
	telemetry *hub.Hub
}

func NewServer(addr string, session Session, sc *scene.Scene) (*Server, error) {
	if session == nil || sc == nil {
		return nil, errors.New("web: session and scene are required")
	}
	s := &Server{
		addr:    addr,
		session: session,
		scene: SceneView{
			Width:  sc.Width(),
			Height: sc.Height(),
			Seed:   sc.Seed(),
			Seabed: sc.Seabed(),
			Mines:  sc.Mines(),
		},
		telemetry: hub.New("telemetry"),
	}

	a := fiber.New(fiber.Config{
		AppName:               "Sonar Telemetry",
		DisableStartupMessage: true,
	})

	api := a.Group("/api")
	api.Get("/snapshot", s.handleSnapshot)
	api.Get("/danger-zones", s.handleDangerZones)
	api.Get("/scene", s.handleScene)
	api.Post("/ping", s.handleCommand(app.CommandPing))
	api.Post("/reset", s.handleCommand(app.CommandReset))

	a.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	a.Get("/ws/telemetry", websocket.New(s.handleTelemetryWS))

	s.app = a
	return s, nil
}

// Start runs the hub, the telemetry pump and the listener until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	go s.telemetry.Run(ctx)
	go s.pumpTelemetry(ctx, TelemetryInterval)
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			log.Warn("web shutdown", "error", err)
		}
	}()

	log.Info("web telemetry listening", "addr", s.addr)
	if err := s.app.Listen(s.addr); err != nil {
		return fmt.Errorf("web listen %s: %w", s.addr, err)
	}
	return nil
}

// StartAsync starts the server in a goroutine and logs a failure.
func (s *Server) StartAsync(ctx context.Context) {
	go func() {
		if err := s.Start(ctx); err != nil {
			log.Error("web server stopped", "error", err)
		}
	}()
}

// pumpTelemetry broadcasts each new snapshot once.
func (s *Server) pumpTelemetry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last *app.Snapshot
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := s.session.Snapshot()
			if snap == nil || snap == last {
				continue
			}
			last = snap
			if s.telemetry.ClientCount() == 0 {
				continue
			}
			if err := s.telemetry.BroadcastJSON(snap); err != nil {
				log.Warn("encode telemetry", "error", err)
			}
		}
	}
}
