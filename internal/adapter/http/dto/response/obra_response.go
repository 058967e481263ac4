package response

import "obradash/internal/domain/entities"

type ObraResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"nombre"`
	Address          string  `json:"direccion"`
	StartDate        string  `json:"fecha_inicio,omitempty"`
	EstimatedEndDate string  `json:"fecha_fin_estimada,omitempty"`
	Status           string  `json:"estado"`
	Budget           float64 `json:"presupuesto"`
	ConstructoraID   string  `json:"constructora_id"`
	Responsable      string  `json:"responsable"`
	Description      string  `json:"descripcion,omitempty"`
}

func FromObra(o entities.Obra) ObraResponse {
	return ObraResponse{
		ID:               o.ID,
		Name:             o.Name,
		Address:          o.Address,
		StartDate:        o.StartDate,
		EstimatedEndDate: o.EstimatedEndDate,
		Status:           string(o.Status),
		Budget:           o.Budget.InexactFloat64(),
		ConstructoraID:   o.ConstructoraID,
		Responsable:      o.Responsable,
		Description:      o.Description,
	}
}

func FromObras(obras []entities.Obra) []ObraResponse {
	out := make([]ObraResponse, 0, len(obras))
	for _, o := range obras {
		out = append(out, FromObra(o))
	}
	return out
}
