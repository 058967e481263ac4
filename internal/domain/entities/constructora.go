package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlanTier string

const (
	PlanTierBasico      PlanTier = "basico"
	PlanTierProfesional PlanTier = "profesional"
	PlanTierEmpresarial PlanTier = "empresarial"
)

// DefaultConstructoraName is shown when the backend has no company name.
const DefaultConstructoraName = "Constructora"

// Constructora is the tenant company.
//
// MontoMinimo and MontoMaximo are optional monthly-spend thresholds used to
// classify accumulated spend. nil means the threshold is not configured.
type Constructora struct {
	ID          string
	Name        string
	RFC         string
	Email       string
	Phone       string
	Address     string
	Plan        PlanTier
	PlanExpiry  time.Time
	MontoMinimo *decimal.Decimal
	MontoMaximo *decimal.Decimal
	CreatedAt   time.Time
}

// Thresholds returns the spend thresholds configured for the tenant.
func (c Constructora) Thresholds() SpendThresholds {
	return SpendThresholds{Min: c.MontoMinimo, Max: c.MontoMaximo}
}

// Plan is a subscription plan offered by the backend.
type Plan struct {
	ID    string
	Name  string
	Tier  PlanTier
	Price decimal.Decimal
}
