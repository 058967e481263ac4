package usecase

import (
	"context"
	"fmt"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	hundred          = decimal.NewFromInt(100)
	criticalFraction = decimal.New(9, -1)
)

// SpendOptions tunes which gastos count toward accumulated spend.
type SpendOptions struct {
	// ApprovedOnly drops gastos that are still pending approval.
	ApprovedOnly bool
}

// ComputeSpend sums the budget of active obras and the gastos booked against them.
func ComputeSpend(obras []entities.Obra, gastos []entities.Gasto, thresholds entities.SpendThresholds, opts SpendOptions) entities.SpendSummary {
	active := make(map[string]struct{}, len(obras))
	budget := decimal.Zero
	for _, o := range obras {
		if !o.IsActive() {
			continue
		}
		active[o.ID] = struct{}{}
		budget = budget.Add(o.Budget)
	}

	spent := decimal.Zero
	for _, g := range gastos {
		if _, ok := active[g.ObraID]; !ok {
			continue
		}
		if opts.ApprovedOnly && !g.Approved {
			continue
		}
		spent = spent.Add(g.TotalAmount)
	}

	return entities.SpendSummary{
		ActiveObras:        len(active),
		TotalBudget:        budget,
		TotalSpent:         spent,
		UtilizationPercent: utilization(spent, budget),
		Status:             Classify(spent, thresholds),
	}
}

func utilization(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Div(budget).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// Classify checks critical before warning, so spend past both thresholds is critical.
// A threshold that is nil, zero or negative counts as not configured.
func Classify(totalSpent decimal.Decimal, thresholds entities.SpendThresholds) entities.SpendStatus {
	if thresholdSet(thresholds.Max) && totalSpent.GreaterThanOrEqual(thresholds.Max.Mul(criticalFraction)) {
		return entities.SpendStatusCritical
	}
	if thresholdSet(thresholds.Min) && totalSpent.GreaterThanOrEqual(*thresholds.Min) {
		return entities.SpendStatusWarning
	}
	return entities.SpendStatusOK
}

func thresholdSet(v *decimal.Decimal) bool {
	return v != nil && v.IsPositive()
}

type ISpendAggregator interface {
	Aggregate(ctx context.Context, obras []entities.Obra, thresholds entities.SpendThresholds) (entities.SpendSummary, error)
}

// SpendAggregator fetches the gastos of every active obra and computes the tenant spend summary.
type SpendAggregator struct {
	gastos interfaces.IGastoGateway
	opts   SpendOptions
	log    *zap.Logger
}

var _ ISpendAggregator = (*SpendAggregator)(nil)

func NewSpendAggregator(gastos interfaces.IGastoGateway, opts SpendOptions, logger *zap.Logger) *SpendAggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpendAggregator{gastos: gastos, opts: opts, log: logger}
}

// Aggregate fails as a whole if any per-obra fetch fails; a partial sum would understate spend.
func (a *SpendAggregator) Aggregate(ctx context.Context, obras []entities.Obra, thresholds entities.SpendThresholds) (entities.SpendSummary, error) {
	var active []entities.Obra
	for _, o := range obras {
		if o.IsActive() {
			active = append(active, o)
		}
	}

	perObra := make([][]entities.Gasto, len(active))
	g, gctx := errgroup.WithContext(ctx)
	for i, o := range active {
		g.Go(func() error {
			rows, err := a.gastos.ListGastos(gctx, dto.GastoFilter{ObraID: o.ID})
			if err != nil {
				return fmt.Errorf("gastos for obra %s: %w", o.ID, err)
			}
			perObra[i] = mapper.MapGastos(rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.log.Error("[spend][usecase] aggregation failed", zap.Int("active_obras", len(active)), zap.Error(err))
		return entities.SpendSummary{}, err
	}

	var gastos []entities.Gasto
	for _, gs := range perObra {
		gastos = append(gastos, gs...)
	}
	summary := ComputeSpend(obras, gastos, thresholds, a.opts)
	a.log.Debug("[spend][usecase] aggregated",
		zap.Int("active_obras", summary.ActiveObras),
		zap.String("total_budget", summary.TotalBudget.String()),
		zap.String("total_spent", summary.TotalSpent.String()),
		zap.String("status", string(summary.Status)),
	)
	return summary, nil
}
