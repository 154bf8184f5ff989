// internal/system/detection_memory.go
package system

import (
	"go-sonar/internal/component"
	"go-sonar/internal/event"
	"go-sonar/internal/types"
)

// DetectionMemory накапливает подтверждённые мины в множество опасных зон.
// Множество только растёт; очищается лишь при сбросе сессии.
type DetectionMemory struct {
	zones      map[types.Point]struct{}
	order      []types.Point
	dispatcher *event.Dispatcher
}

func NewDetectionMemory(dispatcher *event.Dispatcher) *DetectionMemory {
	return &DetectionMemory{
		zones:      make(map[types.Point]struct{}),
		dispatcher: dispatcher,
	}
}

// Record folds mine detections into the set and returns how many were new.
// Seabed echoes are ignored.
func (m *DetectionMemory) Record(detections []component.Detection) int {
	added := 0
	for _, d := range detections {
		if d.Kind != component.KindMine {
			continue
		}
		p := d.Point()
		if _, seen := m.zones[p]; seen {
			continue
		}
		m.zones[p] = struct{}{}
		m.order = append(m.order, p)
		added++
		m.dispatcher.Dispatch(event.Event{Type: event.DangerZoneAdded, Data: p})
	}
	return added
}

// Reset clears the set for a new session.
func (m *DetectionMemory) Reset() {
	clear(m.zones)
	m.order = m.order[:0]
}

// All returns a snapshot of the danger zones in first-detection order.
func (m *DetectionMemory) All() []types.Point {
	return append([]types.Point(nil), m.order...)
}

func (m *DetectionMemory) Contains(p types.Point) bool {
	_, ok := m.zones[p]
	return ok
}

func (m *DetectionMemory) Len() int {
	return len(m.order)
}
