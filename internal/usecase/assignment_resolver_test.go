package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	mock_interfaces "obradash/internal/usecase/interfaces/mocks"
	"obradash/pkg"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func fixedResolver(gw *mock_interfaces.MockIAsignacionGateway) *AssignmentResolver {
	r := NewAssignmentResolver(gw, nil)
	r.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestResolveAssignments(t *testing.T) {
	t.Run("single open assignment", func(t *testing.T) {
		got := ResolveAssignments([]entities.Assignment{
			{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", Active: true},
		})
		if got.ObraFor("r-1") != "o-a" {
			t.Fatalf("expected o-a, got %q", got.ObraFor("r-1"))
		}
		if got.ResidenteFor("o-a") != "r-1" {
			t.Fatalf("expected r-1, got %q", got.ResidenteFor("o-a"))
		}
		if len(got.Conflicts) != 0 {
			t.Fatalf("expected no conflicts, got %+v", got.Conflicts)
		}
	})

	t.Run("closed and inactive assignments are ignored", func(t *testing.T) {
		ended := time.Now()
		got := ResolveAssignments([]entities.Assignment{
			{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", Active: true, EndedAt: &ended},
			{ID: "as-2", ResidenteID: "r-1", ObraID: "o-b", Active: false},
		})
		if got.ObraFor("r-1") != "" {
			t.Fatalf("expected no obra, got %q", got.ObraFor("r-1"))
		}
	})

	t.Run("duplicates keep the last one and are reported", func(t *testing.T) {
		got := ResolveAssignments([]entities.Assignment{
			{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", Active: true},
			{ID: "as-2", ResidenteID: "r-1", ObraID: "o-b", Active: true},
		})
		if got.ObraFor("r-1") != "o-b" {
			t.Fatalf("expected last-wins o-b, got %q", got.ObraFor("r-1"))
		}
		if len(got.Conflicts) != 1 {
			t.Fatalf("expected 1 conflict, got %d", len(got.Conflicts))
		}
		c := got.Conflicts[0]
		if c.Side != ConflictSideResidente || c.Key != "r-1" || c.KeptID != "as-2" || c.ReplacedID != "as-1" {
			t.Fatalf("unexpected conflict %+v", c)
		}
	})
}

func TestAssignmentResolver_Reassign_Validation(t *testing.T) {
	t.Run("empty obra id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)

		_, err := r.Reassign(context.Background(), "r-1", "  ")
		if !pkg.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("empty residente id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)

		_, err := r.Reassign(context.Background(), "", "o-b")
		if !pkg.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestAssignmentResolver_Reassign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
	r := fixedResolver(gw)

	store := []dto.AsignacionRow{
		{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", IsActive: true},
		{ID: "as-0", ResidenteID: "r-1", ObraID: "o-z", IsActive: false, FechaFin: strPtr("2024-01-01")},
	}

	gw.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{ResidenteID: "r-1"}).Return(store, nil)
	gw.EXPECT().UpdateAsignacion(gomock.Any(), "as-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, p dto.AsignacionUpdatePayload) (dto.AsignacionRow, error) {
			if p.IsActive || p.FechaFin == nil || *p.FechaFin != "2024-05-01T12:00:00Z" {
				t.Fatalf("unexpected close payload %+v", p)
			}
			store[0].IsActive = false
			store[0].FechaFin = p.FechaFin
			return store[0], nil
		})
	gw.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p dto.AsignacionCreatePayload) (dto.AsignacionRow, error) {
			if !p.IsActive || p.ObraID != "o-b" || p.ResidenteID != "r-1" {
				t.Fatalf("unexpected create payload %+v", p)
			}
			row := dto.AsignacionRow{ID: "as-2", ResidenteID: p.ResidenteID, ObraID: p.ObraID, IsActive: true, FechaInicio: p.FechaInicio}
			store = append(store, row)
			return row, nil
		})

	got, err := r.Reassign(context.Background(), "r-1", "o-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "as-2" || got.ObraID != "o-b" || !got.IsOpen() {
		t.Fatalf("unexpected assignment %+v", got)
	}

	updated := mapper.MapAssignments(store)
	if updated[0].IsOpen() || updated[0].EndedAt == nil {
		t.Fatalf("expected previous assignment closed, got %+v", updated[0])
	}
	open := 0
	for _, a := range updated {
		if a.IsOpen() {
			open++
		}
	}
	if open != 1 {
		t.Fatalf("expected exactly one open assignment, got %d", open)
	}
	if obra := ResolveAssignments(updated).ObraFor("r-1"); obra != "o-b" {
		t.Fatalf("expected residente resolved to o-b, got %q", obra)
	}
}

func TestAssignmentResolver_Reassign_Failures(t *testing.T) {
	open := []dto.AsignacionRow{{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", IsActive: true}}

	t.Run("list error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)

		gw.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(nil, &pkg.NetworkError{Op: "GET", Err: errors.New("down")})

		_, err := r.Reassign(context.Background(), "r-1", "o-b")
		if !pkg.IsNetwork(err) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})

	t.Run("create failure reopens closed assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)
		createErr := &pkg.APIError{Status: 500, Message: "boom"}

		gw.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(open, nil)
		gw.EXPECT().UpdateAsignacion(gomock.Any(), "as-1", gomock.Any()).Return(dto.AsignacionRow{}, nil)
		gw.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).Return(dto.AsignacionRow{}, createErr)
		gw.EXPECT().UpdateAsignacion(gomock.Any(), "as-1", dto.AsignacionUpdatePayload{IsActive: true, FechaFin: nil}).Return(dto.AsignacionRow{}, nil)

		_, err := r.Reassign(context.Background(), "r-1", "o-b")
		if !errors.Is(err, createErr) {
			t.Fatalf("expected create error, got %v", err)
		}
		if pkg.IsPartialFailure(err) {
			t.Fatalf("did not expect partial failure after successful rollback")
		}
	})

	t.Run("rollback failure is a partial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)
		createErr := &pkg.APIError{Status: 500, Message: "boom"}
		rollbackErr := errors.New("reopen failed")

		gw.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(open, nil)
		first := gw.EXPECT().UpdateAsignacion(gomock.Any(), "as-1", gomock.Any()).Return(dto.AsignacionRow{}, nil)
		gw.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).Return(dto.AsignacionRow{}, createErr)
		gw.EXPECT().UpdateAsignacion(gomock.Any(), "as-1", gomock.Any()).Return(dto.AsignacionRow{}, rollbackErr).After(first)

		_, err := r.Reassign(context.Background(), "r-1", "o-b")
		if !pkg.IsPartialFailure(err) {
			t.Fatalf("expected PartialFailureError, got %v", err)
		}
		if !errors.Is(err, createErr) || !errors.Is(err, rollbackErr) {
			t.Fatalf("expected both causes wrapped, got %v", err)
		}
	})

	t.Run("no open assignment means nothing to roll back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
		r := fixedResolver(gw)
		createErr := errors.New("create")

		gw.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(nil, nil)
		gw.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).Return(dto.AsignacionRow{}, createErr)

		_, err := r.Reassign(context.Background(), "r-1", "o-b")
		if !errors.Is(err, createErr) {
			t.Fatalf("expected create error, got %v", err)
		}
	})
}

func TestAssignmentResolver_CurrentObraFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIAsignacionGateway(ctrl)
	r := fixedResolver(gw)

	gw.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{ResidenteID: "r-1"}).Return([]dto.AsignacionRow{
		{ID: "as-1", ResidenteID: "r-1", ObraID: "o-a", IsActive: true},
	}, nil)

	got, err := r.CurrentObraFor(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "o-a" {
		t.Fatalf("expected o-a, got %q", got)
	}
}
