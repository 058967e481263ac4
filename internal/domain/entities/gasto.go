package entities

import "github.com/shopspring/decimal"

// Gasto is an expense recorded against an obra by a residente.
type Gasto struct {
	ID            string
	ObraID        string
	ResidenteID   string
	Date          string
	Category      string
	Description   string
	TotalAmount   decimal.Decimal
	Approved      bool
	InvoiceURL    string
	PaymentMethod string
	Provider      string
	ApprovedBy    string
	Comments      string
}
