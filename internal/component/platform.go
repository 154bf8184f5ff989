// internal/component/platform.go
package component

// Platform — судно-носитель гидролокатора
type Platform struct {
	Width, Height float64
	// SonarOffsetX/Y is the fixed offset of the emitter from the platform position.
	SonarOffsetX     float64
	SonarOffsetY     float64
	AutoPingInterval int
	TicksSincePing   int
}
