package request

import (
	"obradash/internal/usecase"

	"github.com/shopspring/decimal"
)

type GastoRequest struct {
	ObraID        string          `json:"obra_id" binding:"required"`
	ResidenteID   string          `json:"residente_id"`
	Date          string          `json:"fecha"`
	Category      string          `json:"categoria"`
	Description   string          `json:"descripcion"`
	TotalAmount   decimal.Decimal `json:"monto_total"`
	Approved      bool            `json:"aprobado"`
	InvoiceURL    string          `json:"factura_url"`
	PaymentMethod string          `json:"metodo_pago"`
	Provider      string          `json:"proveedor"`
	ApprovedBy    string          `json:"aprobado_por"`
	Comments      string          `json:"comentarios"`
}

func (r GastoRequest) ToInput() usecase.GastoInput {
	return usecase.GastoInput{
		ObraID:        r.ObraID,
		ResidenteID:   r.ResidenteID,
		Date:          r.Date,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.TotalAmount,
		Approved:      r.Approved,
		InvoiceURL:    r.InvoiceURL,
		PaymentMethod: r.PaymentMethod,
		Provider:      r.Provider,
		ApprovedBy:    r.ApprovedBy,
		Comments:      r.Comments,
	}
}

// GastoApprovalRequest has no binding on Approved so that false is accepted.
type GastoApprovalRequest struct {
	Approved   bool   `json:"aprobado"`
	ApprovedBy string `json:"aprobado_por"`
	Comments   string `json:"comentarios"`
}

func (r GastoApprovalRequest) ToApproval() usecase.GastoApproval {
	return usecase.GastoApproval{Approved: r.Approved, ApprovedBy: r.ApprovedBy, Comments: r.Comments}
}
