package web

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"go-sonar/internal/app"
	"go-sonar/internal/log"
	"go-sonar/pkg/hub"
)

func (s *Server) handleSnapshot(c *fiber.Ctx) error {
	return c.JSON(s.session.Snapshot())
}

func (s *Server) handleDangerZones(c *fiber.Ctx) error {
	snap := s.session.Snapshot()
	return c.JSON(fiber.Map{
		"session_id":   snap.SessionID,
		"tick":         snap.Tick,
		"danger_zones": snap.DangerZones,
	})
}

func (s *Server) handleScene(c *fiber.Ctx) error {
	return c.JSON(s.scene)
}

// handleCommand queues cmd for the simulation loop; it takes effect next tick.
func (s *Server) handleCommand(cmd app.Command) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.session.Enqueue(cmd); err != nil {
			status := fiber.StatusInternalServerError
			if errors.Is(err, app.ErrCommandQueueFull) {
				status = fiber.StatusServiceUnavailable
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": cmd.String()})
	}
}

// handleTelemetryWS sends the scene and the current snapshot, then streams
// snapshots until the client leaves.
func (s *Server) handleTelemetryWS(c *websocket.Conn) {
	if err := c.WriteJSON(fiber.Map{"type": "scene", "scene": s.scene}); err != nil {
		return
	}
	if data, err := json.Marshal(s.session.Snapshot()); err == nil {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}

	client := hub.NewClient(s.telemetry, c)
	if client == nil {
		return
	}
	log.Debug("telemetry client attached", "remote", c.RemoteAddr().String())
	client.Run()
}
