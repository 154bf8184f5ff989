package system

import (
	"errors"
	"math"
	"testing"

	"go-sonar/internal/config"
	"go-sonar/internal/event"
)

func newTestPlatform(t *testing.T, mutate func(*config.PlatformConfig)) (*PlatformSystem, *eventRecorder) {
	t.Helper()
	cfg := config.Default().Platform
	if mutate != nil {
		mutate(&cfg)
	}
	d := event.NewDispatcher()
	rec := &eventRecorder{}
	d.SubscribeAll(rec, event.PulseTriggered, event.PingIgnored, event.PlatformWrapped)
	sonar, err := NewSonarSystem(config.Default().Sonar, d)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlatformSystem(cfg, 1000, sonar, d)
	if err != nil {
		t.Fatalf("NewPlatformSystem: %v", err)
	}
	return p, rec
}

func TestNewPlatformSystemValidates(t *testing.T) {
	sonar, _ := NewSonarSystem(config.Default().Sonar, nil)
	cfg := config.Default().Platform
	if _, err := NewPlatformSystem(cfg, 0, sonar, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for zero scene width, got %v", err)
	}
	cfg.AutoPingInterval = 0
	if _, err := NewPlatformSystem(cfg, 1000, sonar, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for zero interval, got %v", err)
	}
	if _, err := NewPlatformSystem(config.Default().Platform, 1000, nil, nil); err == nil {
		t.Error("Expected error for nil sonar")
	}
}

func TestNewPlatformSystemRejectsNonFiniteMotion(t *testing.T) {
	sonar, _ := newTestSonar(t, nil)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg := config.Default().Platform
		cfg.Speed = v
		if _, err := NewPlatformSystem(cfg, 1000, sonar, nil); !errors.Is(err, config.ErrInvalid) {
			t.Errorf("Expected ErrInvalid for speed %g, got %v", v, err)
		}
		cfg = config.Default().Platform
		cfg.StartX = v
		if _, err := NewPlatformSystem(cfg, 1000, sonar, nil); !errors.Is(err, config.ErrInvalid) {
			t.Errorf("Expected ErrInvalid for start %g, got %v", v, err)
		}
	}
}

func TestTickMovesPlatformAndEmitter(t *testing.T) {
	p, _ := newTestPlatform(t, nil)
	if x, y := p.SonarOrigin(); x != 140 || y != 300 {
		t.Fatalf("Expected initial emitter at (140, 300), got (%g, %g)", x, y)
	}
	p.Tick()
	if x, y := p.Position(); x != 102 || y != 300 {
		t.Errorf("Expected platform at (102, 300), got (%g, %g)", x, y)
	}
	sx, sy, _ := p.Sonar().OriginAndRadius()
	if sx != 142 || sy != 300 {
		t.Errorf("Expected sonar origin (142, 300), got (%g, %g)", sx, sy)
	}
}

func TestTickWrapsPastRightBound(t *testing.T) {
	p, rec := newTestPlatform(t, func(c *config.PlatformConfig) { c.StartX = 999 })
	p.Tick() // 1001 > 1000

	x, _ := p.Position()
	if x != -40 {
		t.Errorf("Expected wrap to -40, got %g", x)
	}
	sx, _, _ := p.Sonar().OriginAndRadius()
	if sx != 0 {
		t.Errorf("Expected emitter recomputed on the wrap tick at x=0, got %g", sx)
	}
	if rec.count(event.PlatformWrapped) != 1 {
		t.Errorf("Expected one PlatformWrapped event, got %d", rec.count(event.PlatformWrapped))
	}

	p.Tick()
	if x, _ := p.Position(); x != -38 {
		t.Errorf("Expected traversal to continue from the left edge, got %g", x)
	}
}

func TestTickAtExactlyRightBoundDoesNotWrap(t *testing.T) {
	p, _ := newTestPlatform(t, func(c *config.PlatformConfig) { c.StartX = 998 })
	p.Tick()
	if x, _ := p.Position(); x != 1000 {
		t.Errorf("Expected platform to sit on the bound at 1000, got %g", x)
	}
}

func TestTickWrapsLeftWhenMovingBackwards(t *testing.T) {
	p, _ := newTestPlatform(t, func(c *config.PlatformConfig) {
		c.StartX = -39
		c.Speed = -2
	})
	p.Tick()
	if x, _ := p.Position(); x != 1000 {
		t.Errorf("Expected wrap to the right bound, got %g", x)
	}
}

func TestAutoPingCadence(t *testing.T) {
	p, rec := newTestPlatform(t, func(c *config.PlatformConfig) { c.AutoPingInterval = 3 })

	p.Tick()
	p.Tick()
	if p.Sonar().IsActive() {
		t.Fatal("Expected no pulse before the interval elapses")
	}
	p.Tick()
	if !p.Sonar().IsActive() {
		t.Fatal("Expected auto-ping on the third tick")
	}
	if p.TicksSincePing() != 0 {
		t.Errorf("Expected counter reset, got %d", p.TicksSincePing())
	}
	if rec.count(event.PulseTriggered) != 1 {
		t.Errorf("Expected one trigger, got %d", rec.count(event.PulseTriggered))
	}

	// pulse still in flight: the next auto-ping is ignored but the counter restarts
	p.Tick()
	p.Tick()
	p.Tick()
	if rec.count(event.PingIgnored) != 1 {
		t.Errorf("Expected one ignored auto-ping, got %d", rec.count(event.PingIgnored))
	}
	if p.TicksSincePing() != 0 {
		t.Errorf("Expected counter reset after ignored auto-ping, got %d", p.TicksSincePing())
	}
}

func TestManualPingRestartsCadence(t *testing.T) {
	p, rec := newTestPlatform(t, func(c *config.PlatformConfig) { c.AutoPingInterval = 3 })

	p.Tick()
	p.Tick()
	if !p.RequestPing() {
		t.Fatal("Expected manual ping from idle to start a pulse")
	}
	if p.TicksSincePing() != 0 {
		t.Errorf("Expected counter reset by manual ping, got %d", p.TicksSincePing())
	}

	// without the reset, this tick would have auto-pinged
	p.Tick()
	if rec.count(event.PingIgnored) != 0 {
		t.Error("Expected no redundant auto-ping right after a manual one")
	}
	if p.TicksSincePing() != 1 {
		t.Errorf("Expected counter 1, got %d", p.TicksSincePing())
	}
}

func TestPlatformReset(t *testing.T) {
	p, _ := newTestPlatform(t, nil)
	for i := 0; i < 10; i++ {
		p.Tick()
	}
	p.Reset()
	if x, _ := p.Position(); x != config.PlatformStartX {
		t.Errorf("Expected start x %g, got %g", config.PlatformStartX, x)
	}
	if sx, _, _ := p.Sonar().OriginAndRadius(); sx != config.PlatformStartX+config.PlatformWidth {
		t.Errorf("Expected emitter re-attached, got %g", sx)
	}
	if p.TicksSincePing() != 0 {
		t.Errorf("Expected counter 0, got %d", p.TicksSincePing())
	}
}
