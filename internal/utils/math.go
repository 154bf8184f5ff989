// internal/utils/math.go
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees нормализует угол в диапазон (-180, 180]
func NormalizeDegrees(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle <= -180 {
		angle += 360
	}
	return angle
}

// Bearing returns the angle in degrees between the +x axis and the vector
// (dx, dy), via the four-quadrant arctangent. Result is in (-180, 180].
func Bearing(dx, dy float64) float64 {
	return RadToDeg(math.Atan2(dy, dx))
}

// Distance is the Euclidean norm of (dx, dy).
func Distance(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// BeamEdges returns the two far corners of a sector of radius r opening
// ±halfDeg around the +x axis from (ox, oy). The upper edge comes first.
func BeamEdges(ox, oy, r, halfDeg float64) (ux, uy, lx, ly float64) {
	a := DegToRad(halfDeg)
	ux, uy = ox+r*math.Cos(-a), oy+r*math.Sin(-a)
	lx, ly = ox+r*math.Cos(a), oy+r*math.Sin(a)
	return
}
