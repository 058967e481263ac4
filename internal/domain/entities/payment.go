package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome of a subscription payment.
type PaymentStatus string

const (
	PaymentStatusCompletado PaymentStatus = "completado"
	PaymentStatusPendiente  PaymentStatus = "pendiente"
	PaymentStatusFallido    PaymentStatus = "fallido"
)

// PaymentMethod is how a constructora paid its subscription.
//
// oxxo is a cash deposit at a convenience store.
type PaymentMethod string

const (
	PaymentMethodTarjeta       PaymentMethod = "tarjeta"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
	PaymentMethodOxxo          PaymentMethod = "oxxo"
	PaymentMethodPaypal        PaymentMethod = "paypal"
	PaymentMethodStripe        PaymentMethod = "stripe"
)

// DefaultPaymentConcept is used when a payment row has no concept.
const DefaultPaymentConcept = "Suscripción"

// Payment is a subscription payment made by a constructora.
//
// ProviderPayloadRaw keeps the payment provider response when the payment was
// processed through this service, for traceability.
type Payment struct {
	ID             string
	ConstructoraID string
	Amount         decimal.Decimal
	Date           time.Time
	Status         PaymentStatus
	Method         PaymentMethod
	Concept        string
	Reference      string

	ProviderPaymentID  string
	ProviderPayloadRaw json.RawMessage
}
