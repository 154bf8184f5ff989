package app

import "go-sonar/internal/types"

// Report summarises a finished run for the headless command.
type Report struct {
	SessionID   string        `json:"session_id"`
	Seed        int64         `json:"seed"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Mines       int           `json:"mines"`
	Stats       Stats         `json:"stats"`
	DangerZones []types.Point `json:"danger_zones"`
	// Missed lists mines that never became danger zones.
	Missed []types.Point `json:"missed"`
	Final  *Snapshot     `json:"final"`
}

// Report builds a summary of the session so far.
func (s *Session) Report() Report {
	missed := []types.Point{}
	for _, m := range s.mines {
		if !s.Memory.Contains(m) {
			missed = append(missed, m)
		}
	}
	snap := s.Snapshot()
	return Report{
		SessionID:   s.ID,
		Seed:        s.Scene.Seed(),
		Width:       s.Scene.Width(),
		Height:      s.Scene.Height(),
		Mines:       len(s.mines),
		Stats:       s.stats,
		DangerZones: snap.DangerZones,
		Missed:      missed,
		Final:       snap,
	}
}
