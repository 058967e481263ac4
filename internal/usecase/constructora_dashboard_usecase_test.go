package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/domain/entities"
	mock_interfaces "obradash/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	constructoras *mock_interfaces.MockIConstructoraGateway
	obras         *mock_interfaces.MockIObraGateway
	residentes    *mock_interfaces.MockIResidenteGateway
	asignaciones  *mock_interfaces.MockIAsignacionGateway
	subscriptions *mock_interfaces.MockISubscriptionGateway
	gastos        *mock_interfaces.MockIGastoGateway
}

func newConstructoraDashboard(t *testing.T) (*ConstructoraDashboardUseCase, dashboardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		constructoras: mock_interfaces.NewMockIConstructoraGateway(ctrl),
		obras:         mock_interfaces.NewMockIObraGateway(ctrl),
		residentes:    mock_interfaces.NewMockIResidenteGateway(ctrl),
		asignaciones:  mock_interfaces.NewMockIAsignacionGateway(ctrl),
		subscriptions: mock_interfaces.NewMockISubscriptionGateway(ctrl),
		gastos:        mock_interfaces.NewMockIGastoGateway(ctrl),
	}
	resolver := NewAssignmentResolver(m.asignaciones, nil)
	spend := NewSpendAggregator(m.gastos, SpendOptions{}, nil)
	uc := NewConstructoraDashboardUseCase(m.constructoras, m.obras, m.residentes, m.asignaciones, m.subscriptions, resolver, spend, nil)
	return uc, m
}

var (
	dashObras = []dto.ObraRow{
		{ID: "o-1", Nombre: "Torre", IsActive: true, Presupuesto: json.RawMessage(`1000000`), ConstructoraID: "c-1"},
		{ID: "o-2", Nombre: "Plaza", IsActive: true, Presupuesto: json.RawMessage(`"2000000"`), ConstructoraID: "c-1"},
		{ID: "o-3", Nombre: "Bodega", IsActive: false, Presupuesto: json.RawMessage(`null`), ConstructoraID: "c-1"},
	}
	dashResidentes = []dto.ResidenteRow{
		{ID: "r-1", Nombre: "Juan", Apellidos: "Pérez", ConstructoraID: "c-1", IsActive: true},
		{ID: "r-2", Nombre: "Eva", ConstructoraID: "c-1", IsActive: false},
	}
	dashAsignaciones = []dto.AsignacionRow{
		{ID: "as-1", ObraID: "o-1", ResidenteID: "r-1", IsActive: true},
	}
)

func TestConstructoraDashboardUseCase_Load(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newConstructoraDashboard(t)
		if _, err := uc.Load(context.Background(), " "); !errors.Is(err, ErrInvalidConstructoraID) {
			t.Fatalf("expected ErrInvalidConstructoraID, got %v", err)
		}
	})

	t.Run("all collections load", func(t *testing.T) {
		uc, m := newConstructoraDashboard(t)

		m.constructoras.EXPECT().GetConstructora(gomock.Any(), "c-1").Return(dto.ConstructoraRow{
			ID: "c-1", NombreEmpresa: "Acme", PlanID: "plan-pro",
			MontoMinimo: json.RawMessage(`"500000"`), MontoMaximo: json.RawMessage(`1000000`),
		}, nil)
		m.obras.EXPECT().ListObras(gomock.Any(), "c-1").Return(dashObras, nil)
		m.residentes.EXPECT().ListResidentes(gomock.Any(), "c-1").Return(dashResidentes, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), dto.AsignacionFilter{}).Return(dashAsignaciones, nil)
		m.subscriptions.EXPECT().ListPagos(gomock.Any(), "c-1").Return([]dto.PagoRow{
			{ID: "p-old", FechaPago: "2024-01-01", Status: "completado"},
			{ID: "p-new", FechaPago: "2024-02-01", Status: "pendiente"},
		}, nil)
		m.subscriptions.EXPECT().ListPlans(gomock.Any()).Return([]dto.PlanRow{{ID: "plan-pro", Name: "Profesional"}}, nil)
		m.gastos.EXPECT().ListGastos(gomock.Any(), dto.GastoFilter{ObraID: "o-1"}).Return([]dto.GastoObraRow{
			{ObraID: "o-1", MontoTotal: json.RawMessage(`300000`)},
		}, nil)
		m.gastos.EXPECT().ListGastos(gomock.Any(), dto.GastoFilter{ObraID: "o-2"}).Return([]dto.GastoObraRow{
			{ObraID: "o-2", MontoTotal: json.RawMessage(`"150000"`)},
		}, nil)

		d, err := uc.Load(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Errors) != 0 {
			t.Fatalf("expected no errors, got %+v", d.Errors)
		}
		if d.Constructora == nil || d.Constructora.Name != "Acme" || d.Constructora.Plan != entities.PlanTierProfesional {
			t.Fatalf("unexpected constructora %+v", d.Constructora)
		}
		if d.ActiveObras != 2 || d.ActiveResidentes != 1 {
			t.Fatalf("unexpected counts obras=%d residentes=%d", d.ActiveObras, d.ActiveResidentes)
		}
		if d.Obras[0].Responsable != "Juan Pérez" || d.Obras[1].Responsable != entities.ResponsableSinAsignar {
			t.Fatalf("unexpected responsables %q %q", d.Obras[0].Responsable, d.Obras[1].Responsable)
		}
		if d.Residentes[0].ObraID != "o-1" || d.Residentes[1].ObraID != "" {
			t.Fatalf("unexpected obra ids %+v", d.Residentes)
		}
		if d.Payments[0].ID != "p-new" {
			t.Fatalf("expected newest payment first, got %s", d.Payments[0].ID)
		}
		if d.Spend == nil {
			t.Fatalf("expected spend summary")
		}
		if !d.Spend.TotalSpent.Equal(decimal.NewFromInt(450000)) || !d.Spend.UtilizationPercent.Equal(decimal.NewFromInt(15)) {
			t.Fatalf("unexpected spend %+v", d.Spend)
		}
		if d.Spend.Status != entities.SpendStatusOK {
			t.Fatalf("expected ok, got %s", d.Spend.Status)
		}
	})

	t.Run("pagos failure keeps obras", func(t *testing.T) {
		uc, m := newConstructoraDashboard(t)

		m.constructoras.EXPECT().GetConstructora(gomock.Any(), "c-1").Return(dto.ConstructoraRow{ID: "c-1"}, nil)
		m.obras.EXPECT().ListObras(gomock.Any(), "c-1").Return(dashObras[2:], nil)
		m.residentes.EXPECT().ListResidentes(gomock.Any(), "c-1").Return(nil, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.subscriptions.EXPECT().ListPagos(gomock.Any(), "c-1").Return(nil, errors.New("pagos down"))
		m.subscriptions.EXPECT().ListPlans(gomock.Any()).Return(nil, nil)

		d, err := uc.Load(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Obras) != 1 {
			t.Fatalf("expected obras to render, got %d", len(d.Obras))
		}
		if len(d.Errors) != 1 || d.Errors[0].Collection != CollectionPagos || d.Errors[0].Message != "pagos down" {
			t.Fatalf("unexpected errors %+v", d.Errors)
		}
		if d.Spend == nil || !d.Spend.UtilizationPercent.IsZero() {
			t.Fatalf("expected zero spend summary, got %+v", d.Spend)
		}
	})

	t.Run("obras failure skips spend", func(t *testing.T) {
		uc, m := newConstructoraDashboard(t)

		m.constructoras.EXPECT().GetConstructora(gomock.Any(), "c-1").Return(dto.ConstructoraRow{ID: "c-1"}, nil)
		m.obras.EXPECT().ListObras(gomock.Any(), "c-1").Return(nil, errors.New("obras down"))
		m.residentes.EXPECT().ListResidentes(gomock.Any(), "c-1").Return(dashResidentes, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(dashAsignaciones, nil)
		m.subscriptions.EXPECT().ListPagos(gomock.Any(), "c-1").Return(nil, nil)
		m.subscriptions.EXPECT().ListPlans(gomock.Any()).Return(nil, nil)

		d, err := uc.Load(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Spend != nil {
			t.Fatalf("expected no spend summary")
		}
		if len(d.Errors) != 2 || d.Errors[0].Collection != CollectionObras || d.Errors[1].Collection != CollectionSpend {
			t.Fatalf("unexpected errors %+v", d.Errors)
		}
		if len(d.Residentes) != 2 {
			t.Fatalf("expected residentes to render")
		}
	})

	t.Run("aggregation failure only drops spend", func(t *testing.T) {
		uc, m := newConstructoraDashboard(t)

		m.constructoras.EXPECT().GetConstructora(gomock.Any(), "c-1").Return(dto.ConstructoraRow{ID: "c-1"}, nil)
		m.obras.EXPECT().ListObras(gomock.Any(), "c-1").Return(dashObras[:1], nil)
		m.residentes.EXPECT().ListResidentes(gomock.Any(), "c-1").Return(nil, nil)
		m.asignaciones.EXPECT().ListAsignaciones(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.subscriptions.EXPECT().ListPagos(gomock.Any(), "c-1").Return(nil, nil)
		m.subscriptions.EXPECT().ListPlans(gomock.Any()).Return(nil, nil)
		m.gastos.EXPECT().ListGastos(gomock.Any(), gomock.Any()).Return(nil, errors.New("gastos down"))

		d, err := uc.Load(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Spend != nil || len(d.Errors) != 1 || d.Errors[0].Collection != CollectionSpend {
			t.Fatalf("unexpected result spend=%+v errors=%+v", d.Spend, d.Errors)
		}
		if len(d.Obras) != 1 {
			t.Fatalf("expected obras to render")
		}
	})
}
