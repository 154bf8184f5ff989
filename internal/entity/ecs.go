package entity

import (
	"go-sonar/internal/component"
	"go-sonar/internal/types"
)

// ECS хранит короткоживущие сущности представления: затухающие отметки эха.
// Ядро симуляции (импульс, судно, опасные зоны) живёт в системах и сюда не попадает.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	EchoFlashes map[types.EntityID]*component.EchoFlash
	// flashIndex finds the live flash of a point so repeated echoes refresh it.
	flashIndex map[types.Point]types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		EchoFlashes: make(map[types.EntityID]*component.EchoFlash),
		flashIndex:  make(map[types.Point]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// UpsertFlash creates a flash at (x, y) or restarts the existing one.
func (ecs *ECS) UpsertFlash(x, y int, kind component.DetectionKind, duration float64) types.EntityID {
	p := types.Point{X: x, Y: y}
	if id, ok := ecs.flashIndex[p]; ok {
		f := ecs.EchoFlashes[id]
		f.Timer = 0
		f.Duration = duration
		f.Kind = kind
		return id
	}
	id := ecs.NewEntity()
	ecs.EchoFlashes[id] = &component.EchoFlash{X: x, Y: y, Kind: kind, Duration: duration}
	ecs.flashIndex[p] = id
	return id
}

func (ecs *ECS) RemoveFlash(id types.EntityID) {
	if f, ok := ecs.EchoFlashes[id]; ok {
		delete(ecs.flashIndex, types.Point{X: f.X, Y: f.Y})
		delete(ecs.EchoFlashes, id)
	}
}

// Clear drops every entity; ids keep counting up.
func (ecs *ECS) Clear() {
	clear(ecs.EchoFlashes)
	clear(ecs.flashIndex)
	ecs.GameTime = 0
}
