package response

import (
	"time"

	"obradash/internal/domain/entities"
)

type ResidenteResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	Phone          string    `json:"telefono"`
	ObraID         string    `json:"obra_id"`
	ConstructoraID string    `json:"constructora_id"`
	Position       string    `json:"puesto"`
	Status         string    `json:"estado"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromResidente(r entities.Residente) ResidenteResponse {
	return ResidenteResponse{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		ObraID:         r.ObraID,
		ConstructoraID: r.ConstructoraID,
		Position:       r.Position,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

func FromResidentes(residentes []entities.Residente) []ResidenteResponse {
	out := make([]ResidenteResponse, 0, len(residentes))
	for _, r := range residentes {
		out = append(out, FromResidente(r))
	}
	return out
}

type ResidentesViewResponse struct {
	Residentes []ResidenteResponse `json:"residentes"`
	Obras      []ObraResponse      `json:"obras"`
}

// AssignmentResponse is the edge opened by a reassignment.
type AssignmentResponse struct {
	ID          string     `json:"id"`
	ObraID      string     `json:"obra_id"`
	ResidenteID string     `json:"residente_id"`
	Active      bool       `json:"is_active"`
	StartedAt   *time.Time `json:"fecha_inicio,omitempty"`
	EndedAt     *time.Time `json:"fecha_fin"`
}

func FromAssignment(a entities.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		ObraID:      a.ObraID,
		ResidenteID: a.ResidenteID,
		Active:      a.Active,
		StartedAt:   a.StartedAt,
		EndedAt:     a.EndedAt,
	}
}
