package usecase

import (
	"context"
	"errors"
	"testing"

	"obradash/internal/adapter/backend/dto"
	mock_interfaces "obradash/internal/usecase/interfaces/mocks"
	"obradash/pkg"

	"go.uber.org/mock/gomock"
)

type residenteMocks struct {
	residentes   *mock_interfaces.MockIResidenteGateway
	obras        *mock_interfaces.MockIObraGateway
	asignaciones *mock_interfaces.MockIAsignacionGateway
}

func newResidenteUseCase(t *testing.T) (*ResidenteUseCase, residenteMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := residenteMocks{
		residentes:   mock_interfaces.NewMockIResidenteGateway(ctrl),
		obras:        mock_interfaces.NewMockIObraGateway(ctrl),
		asignaciones: mock_interfaces.NewMockIAsignacionGateway(ctrl),
	}
	return NewResidenteUseCase(m.residentes, m.obras, m.asignaciones, NewAssignmentResolver(m.asignaciones, nil), nil), m
}

func TestResidenteUseCase_ListView(t *testing.T) {
	uc, m := newResidenteUseCase(t)
	m.residentes.EXPECT().ListResidentes(gomock.Any(), "c-1").Return([]dto.ResidenteRow{
		{ID: "r-1", Nombre: "Ana", IsActive: true},
		{ID: "r-2", Nombre: "Luis"},
	}, nil)
	m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{}).Return([]dto.AsignacionRow{
		{ID: "as-1", ObraID: "o-1", ResidenteID: "r-1", IsActive: true},
		{ID: "as-0", ObraID: "o-1", ResidenteID: "r-2", IsActive: false},
	}, nil)
	m.obras.EXPECT().ListObras(gomock.Any(), "c-1").Return([]dto.ObraRow{{ID: "o-1", IsActive: true}}, nil)

	v, err := uc.ListView(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Residentes[0].ObraID != "o-1" || v.Residentes[1].ObraID != "" {
		t.Fatalf("unexpected obra ids %+v", v.Residentes)
	}
	if v.Residentes[0].Position != "Residente" {
		t.Fatalf("expected default position, got %q", v.Residentes[0].Position)
	}
	if len(v.Obras) != 1 || v.Obras[0].Responsable != "Ana" {
		t.Fatalf("unexpected obras %+v", v.Obras)
	}
}

func TestResidenteUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newResidenteUseCase(t)
		m.residentes.EXPECT().GetResidente(gomock.Any(), "r-1").Return(dto.ResidenteRow{}, nil)
		if _, err := uc.Get(context.Background(), "r-1"); !errors.Is(err, ErrResidenteNotFound) {
			t.Fatalf("expected ErrResidenteNotFound, got %v", err)
		}
	})

	t.Run("with current obra", func(t *testing.T) {
		uc, m := newResidenteUseCase(t)
		m.residentes.EXPECT().GetResidente(gomock.Any(), "r-1").Return(dto.ResidenteRow{ID: "r-1", Nombre: "Ana"}, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{ResidenteID: "r-1"}).Return([]dto.AsignacionRow{
			{ID: "as-1", ObraID: "o-7", ResidenteID: "r-1", IsActive: true},
		}, nil)

		r, err := uc.Get(context.Background(), "r-1")
		if err != nil || r.ObraID != "o-7" {
			t.Fatalf("unexpected result err=%v residente=%+v", err, r)
		}
	})
}

func TestResidenteUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, _ := newResidenteUseCase(t)
		if _, err := uc.Create(context.Background(), "c-1", ResidenteInput{Name: " ", Email: "a@b.com"}); !errors.Is(err, ErrInvalidResidenteName) {
			t.Fatalf("expected ErrInvalidResidenteName, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "c-1", ResidenteInput{Name: "Ana", Email: "  "}); !errors.Is(err, ErrInvalidResidenteEmail) {
			t.Fatalf("expected ErrInvalidResidenteEmail, got %v", err)
		}
	})

	t.Run("splits name and opens assignment", func(t *testing.T) {
		uc, m := newResidenteUseCase(t)
		m.residentes.EXPECT().CreateResidente(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p dto.ResidentePayload) (dto.ResidenteRow, error) {
				if p.Nombre != "Ana" || p.Apellidos != "María Ruiz" || p.ConstructoraID != "c-1" || !p.IsActive {
					t.Fatalf("unexpected payload %+v", p)
				}
				return dto.ResidenteRow{ID: "r-9", Nombre: p.Nombre, Apellidos: p.Apellidos, IsActive: true}, nil
			},
		)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{ResidenteID: "r-9"}).Return(nil, nil)
		m.asignaciones.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).Return(dto.AsignacionRow{ID: "as-9", ObraID: "o-1", ResidenteID: "r-9", IsActive: true}, nil)

		r, err := uc.Create(context.Background(), "c-1", ResidenteInput{Name: "  Ana   María Ruiz ", Email: "ana@x.com", ObraID: "o-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Name != "Ana María Ruiz" || r.ObraID != "o-1" || r.ConstructoraID != "c-1" {
			t.Fatalf("unexpected residente %+v", r)
		}
	})

	t.Run("assignment failure still returns the residente", func(t *testing.T) {
		uc, m := newResidenteUseCase(t)
		m.residentes.EXPECT().CreateResidente(gomock.Any(), gomock.Any()).Return(dto.ResidenteRow{ID: "r-9", Nombre: "Ana"}, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.asignaciones.EXPECT().CreateAsignacion(gomock.Any(), gomock.Any()).Return(dto.AsignacionRow{}, &pkg.APIError{Status: 500, Message: "boom"})

		r, err := uc.Create(context.Background(), "c-1", ResidenteInput{Name: "Ana", Email: "ana@x.com", ObraID: "o-1"})
		if !errors.Is(err, ErrInitialAssignmentFailed) {
			t.Fatalf("expected ErrInitialAssignmentFailed, got %v", err)
		}
		if r.ID != "r-9" || r.ObraID != "" {
			t.Fatalf("unexpected residente %+v", r)
		}
	})
}

func TestResidenteUseCase_DeleteAndReassign(t *testing.T) {
	t.Run("delete invalid", func(t *testing.T) {
		uc, _ := newResidenteUseCase(t)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidResidenteID) {
			t.Fatalf("expected ErrInvalidResidenteID, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		uc, m := newResidenteUseCase(t)
		m.residentes.EXPECT().DeleteResidente(gomock.Any(), "r-1").Return(nil)
		if err := uc.Delete(context.Background(), "r-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reassign without obra makes no calls", func(t *testing.T) {
		uc, _ := newResidenteUseCase(t)
		if _, err := uc.Reassign(context.Background(), "r-1", ""); !pkg.IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}
