package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidConstructoraID = errors.New("invalid constructora_id")
	errSpendPrerequisites    = errors.New("spend summary unavailable: constructora or obras failed to load")
)

// ConstructoraDashboard is the tenant overview. Collections that failed to load are empty
// and listed in Errors; Constructora and Spend are nil when unavailable.
type ConstructoraDashboard struct {
	Constructora     *entities.Constructora
	Obras            []entities.Obra
	Residentes       []entities.Residente
	Payments         []entities.Payment
	Plans            []entities.Plan
	ActiveObras      int
	ActiveResidentes int
	Spend            *entities.SpendSummary
	Errors           []CollectionError
}

type IConstructoraDashboardUseCase interface {
	Load(ctx context.Context, constructoraID string) (ConstructoraDashboard, error)
}

type ConstructoraDashboardUseCase struct {
	constructoras interfaces.IConstructoraGateway
	obras         interfaces.IObraGateway
	residentes    interfaces.IResidenteGateway
	asignaciones  interfaces.IAsignacionGateway
	subscriptions interfaces.ISubscriptionGateway
	resolver      IAssignmentResolver
	spend         ISpendAggregator
	log           *zap.Logger
}

var _ IConstructoraDashboardUseCase = (*ConstructoraDashboardUseCase)(nil)

func NewConstructoraDashboardUseCase(
	constructoras interfaces.IConstructoraGateway,
	obras interfaces.IObraGateway,
	residentes interfaces.IResidenteGateway,
	asignaciones interfaces.IAsignacionGateway,
	subscriptions interfaces.ISubscriptionGateway,
	resolver IAssignmentResolver,
	spend ISpendAggregator,
	logger *zap.Logger,
) *ConstructoraDashboardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConstructoraDashboardUseCase{
		constructoras: constructoras,
		obras:         obras,
		residentes:    residentes,
		asignaciones:  asignaciones,
		subscriptions: subscriptions,
		resolver:      resolver,
		spend:         spend,
		log:           logger,
	}
}

// Load fetches every collection concurrently. Only an invalid id is an error; backend
// failures are reported per collection.
func (u *ConstructoraDashboardUseCase) Load(ctx context.Context, constructoraID string) (ConstructoraDashboard, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return ConstructoraDashboard{}, ErrInvalidConstructoraID
	}
	log := u.log.With(zap.String("constructora_id", constructoraID))
	log.Info("[dashboard][usecase] constructora load start")

	var (
		constructoraRow dto.ConstructoraRow
		obraRows        []dto.ObraRow
		residenteRows   []dto.ResidenteRow
		asignacionRows  []dto.AsignacionRow
		pagoRows        []dto.PagoRow
		planRows        []dto.PlanRow
	)
	s := newSettler(log)
	s.Go(ctx, CollectionConstructora, func(ctx context.Context) (err error) {
		constructoraRow, err = u.constructoras.GetConstructora(ctx, constructoraID)
		return err
	})
	s.Go(ctx, CollectionObras, func(ctx context.Context) (err error) {
		obraRows, err = u.obras.ListObras(ctx, constructoraID)
		return err
	})
	s.Go(ctx, CollectionResidentes, func(ctx context.Context) (err error) {
		residenteRows, err = u.residentes.ListResidentes(ctx, constructoraID)
		return err
	})
	s.Go(ctx, CollectionAsignaciones, func(ctx context.Context) (err error) {
		asignacionRows, err = u.asignaciones.ListAsignaciones(ctx, dto.AsignacionFilter{})
		return err
	})
	s.Go(ctx, CollectionPagos, func(ctx context.Context) (err error) {
		pagoRows, err = u.subscriptions.ListPagos(ctx, constructoraID)
		return err
	})
	s.Go(ctx, CollectionPlans, func(ctx context.Context) (err error) {
		planRows, err = u.subscriptions.ListPlans(ctx)
		return err
	})
	errs := s.Wait()

	owned := ownedBy(mapper.MapObras(obraRows), constructoraID)
	mapped := mapper.MapResidentes(residenteRows)
	active := u.resolver.Resolve(tenantAssignments(mapper.MapAssignments(asignacionRows), owned, mapped))
	residentes := withObraIDs(mapped, active)
	obras := withResponsables(owned, residentes, active)

	payments := mapper.MapPayments(pagoRows)
	slices.SortStableFunc(payments, func(a, b entities.Payment) int { return b.Date.Compare(a.Date) })

	d := ConstructoraDashboard{
		Obras:            obras,
		Residentes:       residentes,
		Payments:         payments,
		Plans:            mapper.MapPlans(planRows),
		ActiveObras:      countActiveObras(obras),
		ActiveResidentes: countActiveResidentes(residentes),
	}

	if !s.failed(CollectionConstructora) {
		c := mapper.MapConstructora(constructoraRow, planRows)
		d.Constructora = &c
	}

	if d.Constructora == nil || s.failed(CollectionObras) {
		errs = append(errs, CollectionError{Collection: CollectionSpend, Message: errSpendPrerequisites.Error(), Err: errSpendPrerequisites})
	} else if summary, err := u.spend.Aggregate(ctx, obras, d.Constructora.Thresholds()); err != nil {
		errs = append(errs, CollectionError{Collection: CollectionSpend, Message: err.Error(), Err: err})
	} else {
		d.Spend = &summary
	}
	d.Errors = errs

	log.Info("[dashboard][usecase] constructora load done",
		zap.Int("obras", len(d.Obras)),
		zap.Int("residentes", len(d.Residentes)),
		zap.Int("payments", len(d.Payments)),
		zap.Int("errors", len(d.Errors)),
	)
	return d, nil
}
