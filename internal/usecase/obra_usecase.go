package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidObraID     = errors.New("invalid obra id")
	ErrInvalidObraName   = errors.New("invalid obra name")
	ErrInvalidObraBudget = errors.New("invalid obra budget")
)

// ObraInput is the editable part of an obra.
type ObraInput struct {
	Name             string
	Address          string
	Description      string
	StartDate        string
	EstimatedEndDate string
	Budget           decimal.Decimal
	// Active is left unchanged on update when nil; new obras default to active.
	Active *bool
}

type IObraUseCase interface {
	ListView(ctx context.Context, constructoraID string) ([]entities.Obra, error)
	Create(ctx context.Context, constructoraID string, in ObraInput) (entities.Obra, error)
	Update(ctx context.Context, id string, in ObraInput) (entities.Obra, error)
	Delete(ctx context.Context, id string) error
}

type ObraUseCase struct {
	obras        interfaces.IObraGateway
	residentes   interfaces.IResidenteGateway
	asignaciones interfaces.IAsignacionGateway
	resolver     IAssignmentResolver
	log          *zap.Logger
}

var _ IObraUseCase = (*ObraUseCase)(nil)

func NewObraUseCase(
	obras interfaces.IObraGateway,
	residentes interfaces.IResidenteGateway,
	asignaciones interfaces.IAsignacionGateway,
	resolver IAssignmentResolver,
	logger *zap.Logger,
) *ObraUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObraUseCase{obras: obras, residentes: residentes, asignaciones: asignaciones, resolver: resolver, log: logger}
}

// ListView returns the tenant's obras with their responsable. Obras are required; when
// residentes or asignaciones fail the list degrades to "Sin asignar".
func (u *ObraUseCase) ListView(ctx context.Context, constructoraID string) ([]entities.Obra, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return nil, ErrInvalidConstructoraID
	}

	var (
		obraRows       []dto.ObraRow
		residenteRows  []dto.ResidenteRow
		asignacionRows []dto.AsignacionRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		obraRows, err = u.obras.ListObras(gctx, constructoraID)
		return err
	})
	g.Go(func() error {
		rows, err := u.residentes.ListResidentes(gctx, constructoraID)
		if err != nil {
			u.log.Warn("[obra][usecase] residentes unavailable", zap.String("constructora_id", constructoraID), zap.Error(err))
			return nil
		}
		residenteRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := u.asignaciones.ListAsignaciones(gctx, dto.AsignacionFilter{})
		if err != nil {
			u.log.Warn("[obra][usecase] asignaciones unavailable", zap.String("constructora_id", constructoraID), zap.Error(err))
			return nil
		}
		asignacionRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error("[obra][usecase] list failed", zap.String("constructora_id", constructoraID), zap.Error(err))
		return nil, err
	}

	obras := ownedBy(mapper.MapObras(obraRows), constructoraID)
	residentes := mapper.MapResidentes(residenteRows)
	active := u.resolver.Resolve(tenantAssignments(mapper.MapAssignments(asignacionRows), obras, residentes))
	return withResponsables(obras, residentes, active), nil
}

func (u *ObraUseCase) Create(ctx context.Context, constructoraID string, in ObraInput) (entities.Obra, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return entities.Obra{}, ErrInvalidConstructoraID
	}
	if err := validateObraInput(&in); err != nil {
		return entities.Obra{}, err
	}
	if in.Active == nil {
		active := true
		in.Active = &active
	}
	payload := obraPayload(in)
	payload.ConstructoraID = constructoraID

	row, err := u.obras.CreateObra(ctx, payload)
	if err != nil {
		u.log.Error("[obra][usecase] create failed", zap.String("constructora_id", constructoraID), zap.Error(err))
		return entities.Obra{}, err
	}
	o := mapper.MapObra(row)
	if o.ConstructoraID == "" {
		o.ConstructoraID = constructoraID
	}
	o.Responsable = entities.ResponsableSinAsignar
	u.log.Info("[obra][usecase] created", zap.String("obra_id", o.ID), zap.String("constructora_id", constructoraID))
	return o, nil
}

func (u *ObraUseCase) Update(ctx context.Context, id string, in ObraInput) (entities.Obra, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Obra{}, ErrInvalidObraID
	}
	if err := validateObraInput(&in); err != nil {
		return entities.Obra{}, err
	}

	row, err := u.obras.UpdateObra(ctx, id, obraPayload(in))
	if err != nil {
		u.log.Error("[obra][usecase] update failed", zap.String("obra_id", id), zap.Error(err))
		return entities.Obra{}, err
	}
	o := mapper.MapObra(row)
	if o.ID == "" {
		o.ID = id
	}
	o.Responsable = u.responsableFor(ctx, o.ID)
	u.log.Info("[obra][usecase] updated", zap.String("obra_id", o.ID))
	return o, nil
}

func (u *ObraUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidObraID
	}
	if err := u.obras.DeleteObra(ctx, id); err != nil {
		u.log.Error("[obra][usecase] delete failed", zap.String("obra_id", id), zap.Error(err))
		return err
	}
	u.log.Info("[obra][usecase] deleted", zap.String("obra_id", id))
	return nil
}

// responsableFor derives the responsable of a single obra. Lookup failures only cost the label.
func (u *ObraUseCase) responsableFor(ctx context.Context, obraID string) string {
	rows, err := u.asignaciones.ListAsignaciones(ctx, dto.AsignacionFilter{ObraID: obraID})
	if err != nil {
		u.log.Warn("[obra][usecase] responsable lookup failed", zap.String("obra_id", obraID), zap.Error(err))
		return entities.ResponsableSinAsignar
	}
	residenteID := u.resolver.Resolve(mapper.MapAssignments(rows)).ResidenteFor(obraID)
	if residenteID == "" {
		return entities.ResponsableSinAsignar
	}
	r, err := u.residentes.GetResidente(ctx, residenteID)
	if err != nil {
		u.log.Warn("[obra][usecase] responsable lookup failed", zap.String("obra_id", obraID), zap.Error(err))
		return entities.ResponsableSinAsignar
	}
	if name := mapper.MapResidente(r).Name; name != "" {
		return name
	}
	return entities.ResponsableSinAsignar
}

func validateObraInput(in *ObraInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Description = strings.TrimSpace(in.Description)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EstimatedEndDate = strings.TrimSpace(in.EstimatedEndDate)
	if in.Name == "" {
		return ErrInvalidObraName
	}
	if in.Budget.IsNegative() {
		return ErrInvalidObraBudget
	}
	return nil
}

// obraPayload sends empty dates as null; the backend rejects "" for date columns.
func obraPayload(in ObraInput) dto.ObraPayload {
	p := dto.ObraPayload{
		Nombre:      in.Name,
		Direccion:   in.Address,
		Descripcion: in.Description,
		Presupuesto: json.Number(in.Budget.String()),
		IsActive:    in.Active,
	}
	if in.StartDate != "" {
		p.FechaInicio = &in.StartDate
	}
	if in.EstimatedEndDate != "" {
		p.FechaFinEstimada = &in.EstimatedEndDate
	}
	return p
}
