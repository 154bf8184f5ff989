package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-sonar/internal/event"
)

const SampleRate = beep.SampleRate(44100)

// SonarAudio plays a ping on every pulse and a chirp on every new danger zone.
// Subscribe it to the session dispatcher; Initialize opens the sound device.
type SonarAudio struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

func NewSonarAudio(volume float64) *SonarAudio {
	return &SonarAudio{mixer: &beep.Mixer{}, rate: SampleRate, volume: volume}
}

// Initialize sets up the speaker and starts streaming the mixer.
func (a *SonarAudio) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return nil
	}
	if err := speaker.Init(a.rate, a.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

// Cleanup silences everything still queued.
func (a *SonarAudio) Cleanup() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Clear()
	a.initialized = false
}

// OnEvent реализует интерфейс event.Listener.
func (a *SonarAudio) OnEvent(e event.Event) {
	switch e.Type {
	case event.PulseTriggered:
		a.add(NewPingSound(a.rate, a.volume))
	case event.DangerZoneAdded:
		a.add(NewChirpSound(a.rate, a.volume))
	}
}

// Pending reports how many sounds are still queued in the mixer.
func (a *SonarAudio) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return a.mixer.Len()
}

func (a *SonarAudio) add(s beep.Streamer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	a.mixer.Add(s)
}
