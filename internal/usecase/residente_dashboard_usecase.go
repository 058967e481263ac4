package usecase

import (
	"context"
	"errors"
	"strings"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidResidenteID = errors.New("invalid residente_id")

// ResidenteDashboard is the on-site view of one residente: the obra they run, their reports
// and the gastos they booked against it.
type ResidenteDashboard struct {
	Residente  *entities.Residente
	Obra       *entities.Obra
	Reports    []entities.Report
	Gastos     []entities.Gasto
	TotalGasto decimal.Decimal
	Errors     []CollectionError
}

type IResidenteDashboardUseCase interface {
	Load(ctx context.Context, residenteID string) (ResidenteDashboard, error)
}

type ResidenteDashboardUseCase struct {
	residentes interfaces.IResidenteGateway
	obras      interfaces.IObraGateway
	reports    interfaces.IReportGateway
	gastos     interfaces.IGastoGateway
	log        *zap.Logger
}

var _ IResidenteDashboardUseCase = (*ResidenteDashboardUseCase)(nil)

func NewResidenteDashboardUseCase(
	residentes interfaces.IResidenteGateway,
	obras interfaces.IObraGateway,
	reports interfaces.IReportGateway,
	gastos interfaces.IGastoGateway,
	logger *zap.Logger,
) *ResidenteDashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResidenteDashboardUseCase{residentes: residentes, obras: obras, reports: reports, gastos: gastos, log: logger}
}

// Load runs in two rounds: residente, obra and reports concurrently, then the gastos of the
// resolved obra. Gastos fall back to every obra of the residente when the obra is unknown.
func (u *ResidenteDashboardUseCase) Load(ctx context.Context, residenteID string) (ResidenteDashboard, error) {
	residenteID = strings.TrimSpace(residenteID)
	if residenteID == "" {
		return ResidenteDashboard{}, ErrInvalidResidenteID
	}
	log := u.log.With(zap.String("residente_id", residenteID))

	var (
		residenteRow dto.ResidenteRow
		obraRow      dto.ObraRow
		reportRows   []dto.ReportRow
	)
	s := newSettler(log)
	s.Go(ctx, CollectionResidentes, func(ctx context.Context) (err error) {
		residenteRow, err = u.residentes.GetResidente(ctx, residenteID)
		return err
	})
	s.Go(ctx, CollectionObras, func(ctx context.Context) (err error) {
		obraRow, err = u.obras.GetObraByResidente(ctx, residenteID)
		return err
	})
	s.Go(ctx, CollectionReports, func(ctx context.Context) (err error) {
		reportRows, err = u.reports.ListReports(ctx, dto.ReportFilter{ResidenteID: residenteID})
		return err
	})
	s.Wait()

	var d ResidenteDashboard
	if !s.failed(CollectionResidentes) {
		r := mapper.MapResidente(residenteRow)
		d.Residente = &r
	}
	filter := dto.GastoFilter{ResidenteID: residenteID}
	if !s.failed(CollectionObras) && obraRow.ID != "" {
		o := mapper.MapObra(obraRow)
		if d.Residente != nil {
			o.Responsable = d.Residente.Name
			d.Residente.ObraID = o.ID
		}
		d.Obra = &o
		filter.ObraID = o.ID
	}
	d.Reports = mapper.MapReports(reportRows)

	s.Go(ctx, CollectionGastos, func(ctx context.Context) error {
		rows, err := u.gastos.ListGastos(ctx, filter)
		if err != nil {
			return err
		}
		d.Gastos = mapper.MapGastos(rows)
		return nil
	})
	d.Errors = s.Wait()

	d.TotalGasto = decimal.Zero
	for _, g := range d.Gastos {
		d.TotalGasto = d.TotalGasto.Add(g.TotalAmount)
	}

	log.Info("[dashboard][usecase] residente load done",
		zap.Bool("has_obra", d.Obra != nil),
		zap.Int("reports", len(d.Reports)),
		zap.Int("gastos", len(d.Gastos)),
		zap.Int("errors", len(d.Errors)),
	)
	return d, nil
}
