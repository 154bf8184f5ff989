// internal/component/visual.go
package component

// EchoFlash — затухающая отметка эха для отрисовки.
type EchoFlash struct {
	X, Y     int
	Kind     DetectionKind
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Alpha returns the remaining intensity in [0, 1].
func (f *EchoFlash) Alpha() float64 {
	if f.Duration <= 0 {
		return 0
	}
	a := 1 - f.Timer/f.Duration
	if a < 0 {
		return 0
	}
	return a
}
