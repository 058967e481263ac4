package request

import (
	"obradash/internal/usecase"

	"github.com/shopspring/decimal"
)

// ObraRequest accepts presupuesto as a JSON number or a numeric string.
type ObraRequest struct {
	Name             string          `json:"nombre" binding:"required"`
	Address          string          `json:"direccion"`
	Description      string          `json:"descripcion"`
	StartDate        string          `json:"fecha_inicio"`
	EstimatedEndDate string          `json:"fecha_fin_estimada"`
	Budget           decimal.Decimal `json:"presupuesto"`
	Active           *bool           `json:"is_active"`
}

func (r ObraRequest) ToInput() usecase.ObraInput {
	return usecase.ObraInput{
		Name:             r.Name,
		Address:          r.Address,
		Description:      r.Description,
		StartDate:        r.StartDate,
		EstimatedEndDate: r.EstimatedEndDate,
		Budget:           r.Budget,
		Active:           r.Active,
	}
}
