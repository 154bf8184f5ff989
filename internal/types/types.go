// internal/types/types.go
package types

import "fmt"

// EntityID — идентификатор сущности в ECS
type EntityID uint64

// Point is an integer scene coordinate. Seabed columns, mines and danger zones
// all live on the integer grid, so Point is comparable and usable as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
