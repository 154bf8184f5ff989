package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"go-sonar/internal/app"
	"go-sonar/internal/config"
)

func newTestServer(t *testing.T) (*Server, *app.Session) {
	t.Helper()
	cfg := config.Default()
	cfg.Scene.Seed = 11
	sess, err := app.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewServer(":0", sess, sess.Scene)
	if err != nil {
		t.Fatal(err)
	}
	return s, sess
}

func do(t *testing.T, s *Server, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(method, path, nil))
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("Expected JSON from %s, got %q", path, body)
		}
	}
	return resp.StatusCode, out
}

func TestNewServerRequiresSession(t *testing.T) {
	if _, err := NewServer(":0", nil, nil); err == nil {
		t.Error("Expected an error without a session")
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	s, sess := newTestServer(t)
	sess.Run(3)

	code, body := do(t, s, http.MethodGet, "/api/snapshot")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if body["session_id"] != sess.ID {
		t.Errorf("Expected session %s, got %v", sess.ID, body["session_id"])
	}
	if body["tick"] != float64(3) {
		t.Errorf("Expected tick 3, got %v", body["tick"])
	}
}

func TestSceneEndpoint(t *testing.T) {
	s, sess := newTestServer(t)
	code, body := do(t, s, http.MethodGet, "/api/scene")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	seabed, _ := body["seabed"].([]any)
	if len(seabed) != sess.Scene.Width() {
		t.Errorf("Expected %d seabed samples, got %d", sess.Scene.Width(), len(seabed))
	}
	mines, _ := body["mines"].([]any)
	if len(mines) != len(sess.Scene.Mines()) {
		t.Errorf("Expected %d mines, got %d", len(sess.Scene.Mines()), len(mines))
	}
}

func TestPingIsQueuedForNextTick(t *testing.T) {
	s, sess := newTestServer(t)
	code, body := do(t, s, http.MethodPost, "/api/ping")
	if code != http.StatusAccepted || body["queued"] != "ping" {
		t.Fatalf("Expected 202 queued ping, got %d %v", code, body)
	}
	if sess.Sonar.IsActive() {
		t.Fatal("Expected nothing to happen before the next tick")
	}
	sess.Update()
	if !sess.Sonar.IsActive() {
		t.Error("Expected the queued ping to fire on the next tick")
	}
}

func TestCommandQueueFullIsUnavailable(t *testing.T) {
	s, _ := newTestServer(t)
	for i := 0; i < config.CommandQueueSize; i++ {
		if code, _ := do(t, s, http.MethodPost, "/api/ping"); code != http.StatusAccepted {
			t.Fatalf("Expected 202 for command %d, got %d", i, code)
		}
	}
	code, body := do(t, s, http.MethodPost, "/api/reset")
	if code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 on a full queue, got %d", code)
	}
	if body["error"] == nil {
		t.Error("Expected an error message")
	}
}

func TestDangerZonesEndpoint(t *testing.T) {
	s, sess := newTestServer(t)
	sess.Run(300)

	code, body := do(t, s, http.MethodGet, "/api/danger-zones")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	zones, ok := body["danger_zones"].([]any)
	if !ok {
		t.Fatalf("Expected a danger_zones array, got %v", body["danger_zones"])
	}
	if len(zones) != sess.Memory.Len() {
		t.Errorf("Expected %d zones, got %d", sess.Memory.Len(), len(zones))
	}
}

func TestTelemetryRequiresUpgrade(t *testing.T) {
	s, _ := newTestServer(t)
	code, _ := do(t, s, http.MethodGet, "/ws/telemetry")
	if code != http.StatusUpgradeRequired {
		t.Errorf("Expected 426, got %d", code)
	}
}
