package response

import (
	"encoding/json"
	"time"

	"obradash/internal/domain/entities"
)

type PaymentResponse struct {
	ID             string    `json:"id"`
	ConstructoraID string    `json:"constructora_id"`
	Amount         float64   `json:"monto"`
	Date           time.Time `json:"fecha_pago"`
	Status         string    `json:"status"`
	Method         string    `json:"metodo_pago"`
	Concept        string    `json:"concepto"`
	Reference      string    `json:"referencia_pago,omitempty"`

	ProviderPaymentID string         `json:"provider_payment_id,omitempty"`
	MPPayloadRaw      string         `json:"mp_payload_raw,omitempty"`
	MPPayload         map[string]any `json:"mp_payload,omitempty"`
}

// FromPayment also decodes the provider response when it is a JSON object, so clients
// do not have to parse mp_payload_raw themselves.
func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		ConstructoraID:    p.ConstructoraID,
		Amount:            p.Amount.InexactFloat64(),
		Date:              p.Date,
		Status:            string(p.Status),
		Method:            string(p.Method),
		Concept:           p.Concept,
		Reference:         p.Reference,
		ProviderPaymentID: p.ProviderPaymentID,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		res.MPPayloadRaw = string(p.ProviderPayloadRaw)
		var m map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &m); err == nil {
			res.MPPayload = m
		}
	}
	return res
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PlanResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Tier  string  `json:"tier"`
	Price float64 `json:"price"`
}

func FromPlans(plans []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{ID: p.ID, Name: p.Name, Tier: string(p.Tier), Price: p.Price.InexactFloat64()})
	}
	return out
}
