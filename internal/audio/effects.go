package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	PingFrequency = 1200.0
	PingDuration  = 180 * time.Millisecond
	PingAttack    = 5 * time.Millisecond
	PingRelease   = 150 * time.Millisecond

	ChirpLowFrequency  = 880.0
	ChirpHighFrequency = 1318.51
	ChirpNoteDuration  = 60 * time.Millisecond
	ChirpAttack        = 3 * time.Millisecond
	ChirpRelease       = 30 * time.Millisecond
)

// tone is a finite sine oscillator.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewPingSound is the outgoing pulse: one high sine with a long tail.
func NewPingSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewTone(PingFrequency, PingDuration, rate)
	return newVolume(NewEnvelope(osc, PingDuration, PingAttack, PingRelease, rate), volume)
}

// NewChirpSound marks a confirmed danger zone with two rising notes.
func NewChirpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewEnvelope(NewTone(ChirpLowFrequency, ChirpNoteDuration, rate), ChirpNoteDuration, ChirpAttack, ChirpRelease, rate)
	high := NewEnvelope(NewTone(ChirpHighFrequency, ChirpNoteDuration, rate), ChirpNoteDuration, ChirpAttack, ChirpRelease, rate)
	return newVolume(beep.Seq(low, high), volume)
}
