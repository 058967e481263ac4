package request

import "encoding/json"

// SubscriptionPaymentRequest pays one period of a plan.
//
// `mp_payload` is the card and payer part of a Mercado Pago payment request, passed as-is.
type SubscriptionPaymentRequest struct {
	PlanID    string          `json:"plan_id"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
