// internal/component/detection.go
package component

import (
	"fmt"

	"go-sonar/internal/types"
)

// DetectionKind — тип отражённого сигнала
type DetectionKind int

const (
	KindSeabed DetectionKind = iota
	KindMine
)

func (k DetectionKind) String() string {
	switch k {
	case KindSeabed:
		return "seabed"
	case KindMine:
		return "mine"
	}
	return fmt.Sprintf("DetectionKind(%d)", int(k))
}

func (k DetectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DetectionKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "seabed":
		*k = KindSeabed
	case "mine":
		*k = KindMine
	default:
		return fmt.Errorf("unknown detection kind %q", b)
	}
	return nil
}

// Detection — одно эхо за тик
type Detection struct {
	X    int           `json:"x"`
	Y    int           `json:"y"`
	Kind DetectionKind `json:"kind"`
}

func (d Detection) Point() types.Point {
	return types.Point{X: d.X, Y: d.Y}
}
