package entities

import "github.com/shopspring/decimal"

// SpendStatus classifies accumulated spend against tenant thresholds.
type SpendStatus string

const (
	SpendStatusOK       SpendStatus = "ok"
	SpendStatusWarning  SpendStatus = "warning"
	SpendStatusCritical SpendStatus = "critical"
)

// SpendThresholds are the optional tenant limits. nil disables a limit.
type SpendThresholds struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// SpendSummary is the budget utilization of a tenant's active obras.
type SpendSummary struct {
	ActiveObras        int
	TotalBudget        decimal.Decimal
	TotalSpent         decimal.Decimal
	UtilizationPercent decimal.Decimal
	Status             SpendStatus
}
