package render

import (
	"image/color"
	"testing"
)

func TestWithAlphaPremultiplies(t *testing.T) {
	got := WithAlpha(color.RGBA{200, 100, 50, 255}, 51)
	want := color.RGBA{40, 20, 10, 51}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFadeClamps(t *testing.T) {
	c := color.RGBA{255, 0, 0, 255}
	if got := Fade(c, 2); got != c {
		t.Errorf("Expected full color for k > 1, got %v", got)
	}
	if got := Fade(c, -1); got.A != 0 || got.R != 0 {
		t.Errorf("Expected transparent for k < 0, got %v", got)
	}
}
