// internal/component/sonar.go
package component

// PulseState — состояние импульса
type PulseState int

const (
	PulseIdle PulseState = iota
	PulseActive
)

func (s PulseState) String() string {
	if s == PulseActive {
		return "active"
	}
	return "idle"
}

func (s PulseState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pulse holds the in-flight detection wave. Radius stays in [0, MaxRadius]
// while State is PulseActive.
type Pulse struct {
	State     PulseState
	OriginX   float64
	OriginY   float64
	Radius    float64
	MaxRadius float64
	HalfAngle float64 // градусы
	Speed     float64 // прирост радиуса за тик
}
