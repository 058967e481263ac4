package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"
	"obradash/pkg"

	"go.uber.org/zap"
)

// ActiveAssignments indexes the open assignments of a flat assignment list.
type ActiveAssignments struct {
	ByResidente map[string]entities.Assignment
	ByObra      map[string]entities.Assignment
	Conflicts   []AssignmentConflict
}

// ObraFor returns the obra currently assigned to residenteID, or "".
func (a ActiveAssignments) ObraFor(residenteID string) string {
	return a.ByResidente[residenteID].ObraID
}

// ResidenteFor returns the residente currently assigned to obraID, or "".
func (a ActiveAssignments) ResidenteFor(obraID string) string {
	return a.ByObra[obraID].ResidenteID
}

// AssignmentConflict records two open assignments competing for the same residente or obra.
// Kept is the one that won (the later one in list order).
type AssignmentConflict struct {
	Side       string
	Key        string
	KeptID     string
	ReplacedID string
}

const (
	ConflictSideResidente = "residente"
	ConflictSideObra      = "obra"
)

// ResolveAssignments scans assignments once and keeps the last open edge per residente and per obra.
func ResolveAssignments(assignments []entities.Assignment) ActiveAssignments {
	out := ActiveAssignments{
		ByResidente: map[string]entities.Assignment{},
		ByObra:      map[string]entities.Assignment{},
	}
	for _, a := range assignments {
		if !a.IsOpen() {
			continue
		}
		if prev, ok := out.ByResidente[a.ResidenteID]; ok && prev.ID != a.ID {
			out.Conflicts = append(out.Conflicts, AssignmentConflict{
				Side: ConflictSideResidente, Key: a.ResidenteID, KeptID: a.ID, ReplacedID: prev.ID,
			})
		}
		if prev, ok := out.ByObra[a.ObraID]; ok && prev.ID != a.ID {
			out.Conflicts = append(out.Conflicts, AssignmentConflict{
				Side: ConflictSideObra, Key: a.ObraID, KeptID: a.ID, ReplacedID: prev.ID,
			})
		}
		out.ByResidente[a.ResidenteID] = a
		out.ByObra[a.ObraID] = a
	}
	return out
}

type IAssignmentResolver interface {
	Resolve(assignments []entities.Assignment) ActiveAssignments
	Reassign(ctx context.Context, residenteID, obraID string) (entities.Assignment, error)
	CurrentObraFor(ctx context.Context, residenteID string) (string, error)
}

// AssignmentResolver keeps the one-open-assignment-per-residente invariant when moving residentes
// between obras. The backend has no atomic reassign, so a failed create is compensated by
// reopening what was closed.
type AssignmentResolver struct {
	asignaciones interfaces.IAsignacionGateway
	now          func() time.Time
	log          *zap.Logger
}

var _ IAssignmentResolver = (*AssignmentResolver)(nil)

func NewAssignmentResolver(asignaciones interfaces.IAsignacionGateway, logger *zap.Logger) *AssignmentResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentResolver{asignaciones: asignaciones, now: time.Now, log: logger}
}

// Resolve is ResolveAssignments plus logging of every duplicate open edge.
func (r *AssignmentResolver) Resolve(assignments []entities.Assignment) ActiveAssignments {
	active := ResolveAssignments(assignments)
	for _, c := range active.Conflicts {
		r.log.Warn("[assignment][usecase] multiple open assignments",
			zap.String("side", c.Side),
			zap.String("id", c.Key),
			zap.String("kept_assignment_id", c.KeptID),
			zap.String("replaced_assignment_id", c.ReplacedID),
		)
	}
	return active
}

// Reassign closes every open assignment of residenteID and opens one to obraID.
func (r *AssignmentResolver) Reassign(ctx context.Context, residenteID, obraID string) (entities.Assignment, error) {
	residenteID = strings.TrimSpace(residenteID)
	obraID = strings.TrimSpace(obraID)
	if residenteID == "" {
		return entities.Assignment{}, pkg.NewValidationError("residente_id", "residente requerido")
	}
	if obraID == "" {
		return entities.Assignment{}, pkg.NewValidationError("obra_id", "selecciona una obra")
	}
	log := r.log.With(zap.String("residente_id", residenteID), zap.String("obra_id", obraID))
	log.Info("[assignment][usecase] reassign start")

	rows, err := r.asignaciones.ListAsignaciones(ctx, dto.AsignacionFilter{ResidenteID: residenteID})
	if err != nil {
		log.Error("[assignment][usecase] list failed", zap.Error(err))
		return entities.Assignment{}, err
	}

	ts := mapper.FormatTimestamp(r.now())
	var closed []entities.Assignment
	for _, a := range mapper.MapAssignments(rows) {
		if a.ResidenteID != "" && a.ResidenteID != residenteID {
			continue
		}
		if !a.IsOpen() {
			continue
		}
		end := ts
		if _, err := r.asignaciones.UpdateAsignacion(ctx, a.ID, dto.AsignacionUpdatePayload{IsActive: false, FechaFin: &end}); err != nil {
			log.Error("[assignment][usecase] close failed", zap.String("assignment_id", a.ID), zap.Error(err))
			return entities.Assignment{}, r.rollback(ctx, log, closed, err)
		}
		closed = append(closed, a)
	}

	created, err := r.asignaciones.CreateAsignacion(ctx, dto.AsignacionCreatePayload{
		ResidenteID: residenteID,
		ObraID:      obraID,
		IsActive:    true,
		FechaInicio: ts,
	})
	if err != nil {
		log.Error("[assignment][usecase] create failed", zap.Int("closed", len(closed)), zap.Error(err))
		return entities.Assignment{}, r.rollback(ctx, log, closed, err)
	}

	a := mapper.MapAssignment(created)
	if a.ResidenteID == "" {
		a.ResidenteID = residenteID
	}
	if a.ObraID == "" {
		a.ObraID = obraID
	}
	log.Info("[assignment][usecase] reassign success", zap.String("assignment_id", a.ID), zap.Int("closed", len(closed)))
	return a, nil
}

// rollback reopens closed and returns cause, or a PartialFailureError when any reopen fails.
func (r *AssignmentResolver) rollback(ctx context.Context, log *zap.Logger, closed []entities.Assignment, cause error) error {
	var errs []error
	for _, a := range closed {
		if _, err := r.asignaciones.UpdateAsignacion(ctx, a.ID, dto.AsignacionUpdatePayload{IsActive: true, FechaFin: nil}); err != nil {
			log.Error("[assignment][usecase] rollback failed", zap.String("assignment_id", a.ID), zap.Error(err))
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &pkg.PartialFailureError{Op: "reassign", Cause: cause, RollbackErr: errors.Join(errs...)}
	}
	if len(closed) > 0 {
		log.Info("[assignment][usecase] rollback reopened assignments", zap.Int("count", len(closed)))
	}
	return cause
}

func (r *AssignmentResolver) CurrentObraFor(ctx context.Context, residenteID string) (string, error) {
	residenteID = strings.TrimSpace(residenteID)
	if residenteID == "" {
		return "", pkg.NewValidationError("residente_id", "residente requerido")
	}
	rows, err := r.asignaciones.ListAsignaciones(ctx, dto.AsignacionFilter{ResidenteID: residenteID})
	if err != nil {
		return "", err
	}
	return r.Resolve(mapper.MapAssignments(rows)).ObraFor(residenteID), nil
}
