package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidResidenteName  = errors.New("invalid residente name")
	ErrInvalidResidenteEmail = errors.New("invalid residente email")
	ErrResidenteNotFound     = errors.New("residente not found")
	// ErrInitialAssignmentFailed is returned together with the created residente when it was
	// registered but could not be assigned to the requested obra.
	ErrInitialAssignmentFailed = errors.New("residente created without obra assignment")
)

type ResidenteInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	ObraID   string
}

// ResidentesView is the residentes tab: every residente with its current obra and the obras
// they can be assigned to.
type ResidentesView struct {
	Residentes []entities.Residente
	Obras      []entities.Obra
}

type IResidenteUseCase interface {
	ListView(ctx context.Context, constructoraID string) (ResidentesView, error)
	Get(ctx context.Context, id string) (entities.Residente, error)
	Create(ctx context.Context, constructoraID string, in ResidenteInput) (entities.Residente, error)
	Delete(ctx context.Context, id string) error
	Reassign(ctx context.Context, residenteID, obraID string) (entities.Assignment, error)
}

type ResidenteUseCase struct {
	residentes   interfaces.IResidenteGateway
	obras        interfaces.IObraGateway
	asignaciones interfaces.IAsignacionGateway
	resolver     IAssignmentResolver
	log          *zap.Logger
}

var _ IResidenteUseCase = (*ResidenteUseCase)(nil)

func NewResidenteUseCase(
	residentes interfaces.IResidenteGateway,
	obras interfaces.IObraGateway,
	asignaciones interfaces.IAsignacionGateway,
	resolver IAssignmentResolver,
	logger *zap.Logger,
) *ResidenteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResidenteUseCase{residentes: residentes, obras: obras, asignaciones: asignaciones, resolver: resolver, log: logger}
}

// ListView needs residentes and asignaciones; a residente list with wrong obra ids is worse
// than none. Obras only feed the picker and degrade to empty.
func (u *ResidenteUseCase) ListView(ctx context.Context, constructoraID string) (ResidentesView, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return ResidentesView{}, ErrInvalidConstructoraID
	}

	var (
		residenteRows  []dto.ResidenteRow
		asignacionRows []dto.AsignacionRow
		obraRows       []dto.ObraRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		residenteRows, err = u.residentes.ListResidentes(gctx, constructoraID)
		return err
	})
	g.Go(func() (err error) {
		asignacionRows, err = u.asignaciones.ListAsignaciones(gctx, dto.AsignacionFilter{})
		return err
	})
	g.Go(func() error {
		rows, err := u.obras.ListObras(gctx, constructoraID)
		if err != nil {
			u.log.Warn("[residente][usecase] obras unavailable", zap.String("constructora_id", constructoraID), zap.Error(err))
			return nil
		}
		obraRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error("[residente][usecase] list failed", zap.String("constructora_id", constructoraID), zap.Error(err))
		return ResidentesView{}, err
	}

	owned := ownedBy(mapper.MapObras(obraRows), constructoraID)
	mapped := mapper.MapResidentes(residenteRows)
	active := u.resolver.Resolve(tenantAssignments(mapper.MapAssignments(asignacionRows), owned, mapped))
	residentes := withObraIDs(mapped, active)
	obras := withResponsables(owned, residentes, active)
	return ResidentesView{Residentes: residentes, Obras: obras}, nil
}

// Get returns the residente with its current obra. A failed assignment lookup leaves ObraID empty.
func (u *ResidenteUseCase) Get(ctx context.Context, id string) (entities.Residente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Residente{}, ErrInvalidResidenteID
	}
	row, err := u.residentes.GetResidente(ctx, id)
	if err != nil {
		return entities.Residente{}, err
	}
	if row.ID == "" {
		return entities.Residente{}, ErrResidenteNotFound
	}
	r := mapper.MapResidente(row)
	obraID, err := u.resolver.CurrentObraFor(ctx, r.ID)
	if err != nil {
		u.log.Warn("[residente][usecase] current obra lookup failed", zap.String("residente_id", id), zap.Error(err))
	}
	r.ObraID = obraID
	return r, nil
}

// Create registers the residente and, when ObraID is set, opens its first assignment.
func (u *ResidenteUseCase) Create(ctx context.Context, constructoraID string, in ResidenteInput) (entities.Residente, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return entities.Residente{}, ErrInvalidConstructoraID
	}
	nombre, apellidos := mapper.SplitName(in.Name)
	if nombre == "" {
		return entities.Residente{}, ErrInvalidResidenteName
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return entities.Residente{}, ErrInvalidResidenteEmail
	}

	row, err := u.residentes.CreateResidente(ctx, dto.ResidentePayload{
		ConstructoraID: constructoraID,
		Telefono:       strings.TrimSpace(in.Phone),
		Nombre:         nombre,
		Apellidos:      apellidos,
		Email:          email,
		Password:       in.Password,
		IsActive:       true,
	})
	if err != nil {
		u.log.Error("[residente][usecase] create failed", zap.String("constructora_id", constructoraID), zap.Error(err))
		return entities.Residente{}, err
	}
	r := mapper.MapResidente(row)
	if r.ConstructoraID == "" {
		r.ConstructoraID = constructoraID
	}
	u.log.Info("[residente][usecase] created", zap.String("residente_id", r.ID), zap.String("constructora_id", constructoraID))

	obraID := strings.TrimSpace(in.ObraID)
	if obraID == "" {
		return r, nil
	}
	a, err := u.resolver.Reassign(ctx, r.ID, obraID)
	if err != nil {
		u.log.Warn("[residente][usecase] initial assignment failed", zap.String("residente_id", r.ID), zap.String("obra_id", obraID), zap.Error(err))
		return r, fmt.Errorf("%w: %w", ErrInitialAssignmentFailed, err)
	}
	r.ObraID = a.ObraID
	return r, nil
}

func (u *ResidenteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidResidenteID
	}
	if err := u.residentes.DeleteResidente(ctx, id); err != nil {
		u.log.Error("[residente][usecase] delete failed", zap.String("residente_id", id), zap.Error(err))
		return err
	}
	u.log.Info("[residente][usecase] deleted", zap.String("residente_id", id))
	return nil
}

func (u *ResidenteUseCase) Reassign(ctx context.Context, residenteID, obraID string) (entities.Assignment, error) {
	return u.resolver.Reassign(ctx, residenteID, obraID)
}
