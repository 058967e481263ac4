package entities

import "time"

type ResidenteStatus string

const (
	ResidenteStatusActivo   ResidenteStatus = "activo"
	ResidenteStatusInactivo ResidenteStatus = "inactivo"
)

// DefaultResidentePosition is used when the backend does not return a position.
const DefaultResidentePosition = "Residente"

// Residente is an on-site supervisor.
//
// ObraID is derived from the active assignment; empty means unassigned.
type Residente struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	ObraID         string
	ConstructoraID string
	Position       string
	CreatedAt      time.Time
	Status         ResidenteStatus
}

func (r Residente) IsActive() bool {
	return r.Status == ResidenteStatusActivo
}

func (r Residente) IsAssigned() bool {
	return r.ObraID != ""
}
