package response

import "obradash/internal/domain/entities"

type GastoResponse struct {
	ID            string  `json:"id"`
	ObraID        string  `json:"obra_id"`
	ResidenteID   string  `json:"residente_id"`
	Date          string  `json:"fecha"`
	Category      string  `json:"categoria"`
	Description   string  `json:"descripcion"`
	TotalAmount   float64 `json:"monto_total"`
	Approved      bool    `json:"aprobado"`
	InvoiceURL    string  `json:"factura_url,omitempty"`
	PaymentMethod string  `json:"metodo_pago,omitempty"`
	Provider      string  `json:"proveedor,omitempty"`
	ApprovedBy    string  `json:"aprobado_por,omitempty"`
	Comments      string  `json:"comentarios,omitempty"`
}

func FromGasto(g entities.Gasto) GastoResponse {
	return GastoResponse{
		ID:            g.ID,
		ObraID:        g.ObraID,
		ResidenteID:   g.ResidenteID,
		Date:          g.Date,
		Category:      g.Category,
		Description:   g.Description,
		TotalAmount:   g.TotalAmount.InexactFloat64(),
		Approved:      g.Approved,
		InvoiceURL:    g.InvoiceURL,
		PaymentMethod: g.PaymentMethod,
		Provider:      g.Provider,
		ApprovedBy:    g.ApprovedBy,
		Comments:      g.Comments,
	}
}

func FromGastos(gastos []entities.Gasto) []GastoResponse {
	out := make([]GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		out = append(out, FromGasto(g))
	}
	return out
}
