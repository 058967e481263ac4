package entities

import "time"

// Assignment is the time-sliced link between a residente and an obra.
//
// Invariant (derived, not stored): a residente has at most one assignment with
// Active == true and EndedAt == nil. It is maintained by the reassignment flow.
type Assignment struct {
	ID          string
	ObraID      string
	ResidenteID string
	Active      bool
	StartedAt   *time.Time
	EndedAt     *time.Time
}

// IsOpen reports whether the assignment is the current edge for its residente.
func (a Assignment) IsOpen() bool {
	return a.Active && a.EndedAt == nil
}
