package utils

import (
	"math"
	"testing"
)

func TestBearingQuadrants(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{1, 0, 0},
		{0, 1, 90},
		{-1, 0, 180},
		{0, -1, -90},
		{1, 1, 45},
		{-1, -1, -135},
	}
	for _, tc := range tests {
		if got := Bearing(tc.dx, tc.dy); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Bearing(%g, %g) = %g, expected %g", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:    0,
		180:  180,
		-180: 180,
		270:  -90,
		-450: -90,
		720:  0,
	}
	for in, want := range tests {
		if got := NormalizeDegrees(in); got != want {
			t.Errorf("NormalizeDegrees(%g) = %g, expected %g", in, got, want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 30, 60, -90, 180} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Expected %g after round trip, got %g", deg, got)
		}
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		x, y := a.IntRange(10, 30), b.IntRange(10, 30)
		if x != y {
			t.Fatalf("Expected identical sequences, diverged at %d: %d vs %d", i, x, y)
		}
		if x < 10 || x > 30 {
			t.Fatalf("Expected value in [10, 30], got %d", x)
		}
	}
}

func TestPRNGZeroSeedUsesClock(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Error("Expected a non-zero effective seed")
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.IntRange(5, 5); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
}

func TestBeamEdges(t *testing.T) {
	ux, uy, lx, ly := BeamEdges(10, 20, 100, 30)
	if math.Abs(ux-lx) > 1e-9 || math.Abs(ux-(10+100*math.Sqrt(3)/2)) > 1e-9 {
		t.Errorf("Expected both edges at x=%g, got %g and %g", 10+50*math.Sqrt(3), ux, lx)
	}
	if math.Abs(uy-(20-50)) > 1e-9 || math.Abs(ly-(20+50)) > 1e-9 {
		t.Errorf("Expected upper edge at y=-30 and lower at y=70, got %g and %g", uy, ly)
	}
	if d := Distance(ux-10, uy-20); math.Abs(d-100) > 1e-9 {
		t.Errorf("Expected edge length 100, got %g", d)
	}
}
