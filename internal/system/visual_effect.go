// internal/system/visual_effect.go
package system

import (
	"go-sonar/internal/component"
	"go-sonar/internal/entity"
)

// VisualEffectSystem управляет затухающими отметками эха.
type VisualEffectSystem struct {
	ecs      *entity.ECS
	duration float64
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, flashDuration float64) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, duration: flashDuration}
}

// Spawn refreshes a flash for every detection of this tick.
func (s *VisualEffectSystem) Spawn(detections []component.Detection) {
	for _, d := range detections {
		s.ecs.UpsertFlash(d.X, d.Y, d.Kind, s.duration)
	}
}

// Update обновляет таймеры отметок и удаляет погасшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.ecs.GameTime += deltaTime
	for id, flash := range s.ecs.EchoFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			s.ecs.RemoveFlash(id)
		}
	}
}
