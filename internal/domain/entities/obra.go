package entities

import "github.com/shopspring/decimal"

// ObraStatus is the lifecycle state shown for a construction project.
//
// The backend only stores an is_active flag, so mapping produces en_progreso or pausada.
// planificacion and completada exist for obras created through other flows.
type ObraStatus string

const (
	ObraStatusPlanificacion ObraStatus = "planificacion"
	ObraStatusEnProgreso    ObraStatus = "en_progreso"
	ObraStatusPausada       ObraStatus = "pausada"
	ObraStatusCompletada    ObraStatus = "completada"
)

// ResponsableSinAsignar is the responsable label of an obra with no active assignment.
const ResponsableSinAsignar = "Sin asignar"

// Obra is a construction project owned by a constructora.
//
// Responsable is derived from the active assignment and never sent back to the backend.
type Obra struct {
	ID               string
	Name             string
	Address          string
	StartDate        string
	EstimatedEndDate string
	Status           ObraStatus
	Budget           decimal.Decimal
	ConstructoraID   string
	Responsable      string
	Description      string
}

func (o Obra) IsActive() bool {
	return o.Status == ObraStatusEnProgreso
}
