// internal/event/types.go
package event

const (
	PulseTriggered  EventType = "PulseTriggered"  // Импульс запущен
	PingIgnored     EventType = "PingIgnored"     // Запрос проигнорирован: импульс ещё летит
	PulseExpired    EventType = "PulseExpired"    // Импульс достиг максимальной дальности
	DangerZoneAdded EventType = "DangerZoneAdded" // Новая опасная зона
	PlatformWrapped EventType = "PlatformWrapped" // Судно вышло за край сцены
	SessionReset    EventType = "SessionReset"
)

// PulseData is the payload of PulseTriggered, PingIgnored and PulseExpired.
type PulseData struct {
	OriginX, OriginY float64
	Radius           float64
}
