package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"obradash/internal/adapter/backend/dto"
	mock_interfaces "obradash/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestResidenteDashboardUseCase_Load(t *testing.T) {
	setup := func(t *testing.T) (*ResidenteDashboardUseCase, *mock_interfaces.MockIResidenteGateway, *mock_interfaces.MockIObraGateway, *mock_interfaces.MockIReportGateway, *mock_interfaces.MockIGastoGateway) {
		ctrl := gomock.NewController(t)
		residentes := mock_interfaces.NewMockIResidenteGateway(ctrl)
		obras := mock_interfaces.NewMockIObraGateway(ctrl)
		reports := mock_interfaces.NewMockIReportGateway(ctrl)
		gastos := mock_interfaces.NewMockIGastoGateway(ctrl)
		return NewResidenteDashboardUseCase(residentes, obras, reports, gastos, nil), residentes, obras, reports, gastos
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _, _ := setup(t)
		if _, err := uc.Load(context.Background(), ""); !errors.Is(err, ErrInvalidResidenteID) {
			t.Fatalf("expected ErrInvalidResidenteID, got %v", err)
		}
	})

	t.Run("full load", func(t *testing.T) {
		uc, residentes, obras, reports, gastos := setup(t)

		residentes.EXPECT().GetResidente(gomock.Any(), "r-1").Return(dto.ResidenteRow{ID: "r-1", Nombre: "Juan", Apellidos: "Pérez", IsActive: true}, nil)
		obras.EXPECT().GetObraByResidente(gomock.Any(), "r-1").Return(dto.ObraRow{ID: "o-1", Nombre: "Torre", IsActive: true}, nil)
		reports.EXPECT().ListReports(gomock.Any(), dto.ReportFilter{ResidenteID: "r-1"}).Return([]dto.ReportRow{{ID: "rep-1", Type: "incidente"}}, nil)
		gastos.EXPECT().ListGastos(gomock.Any(), dto.GastoFilter{ObraID: "o-1", ResidenteID: "r-1"}).Return([]dto.GastoObraRow{
			{ID: "g-1", ObraID: "o-1", MontoTotal: json.RawMessage(`"120.50"`)},
			{ID: "g-2", ObraID: "o-1", MontoTotal: json.RawMessage(`79.5`)},
		}, nil)

		d, err := uc.Load(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Residente == nil || d.Residente.ObraID != "o-1" {
			t.Fatalf("unexpected residente %+v", d.Residente)
		}
		if d.Obra == nil || d.Obra.Responsable != "Juan Pérez" {
			t.Fatalf("unexpected obra %+v", d.Obra)
		}
		if len(d.Reports) != 1 || len(d.Gastos) != 2 || len(d.Errors) != 0 {
			t.Fatalf("unexpected dashboard %+v", d)
		}
		if !d.TotalGasto.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected 200, got %s", d.TotalGasto)
		}
	})

	t.Run("obra failure falls back to residente gastos", func(t *testing.T) {
		uc, residentes, obras, reports, gastos := setup(t)

		residentes.EXPECT().GetResidente(gomock.Any(), "r-1").Return(dto.ResidenteRow{ID: "r-1", Nombre: "Juan"}, nil)
		obras.EXPECT().GetObraByResidente(gomock.Any(), "r-1").Return(dto.ObraRow{}, errors.New("sin obra"))
		reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Return(nil, errors.New("reports down"))
		gastos.EXPECT().ListGastos(gomock.Any(), dto.GastoFilter{ResidenteID: "r-1"}).Return(nil, nil)

		d, err := uc.Load(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Obra != nil || d.Residente == nil {
			t.Fatalf("unexpected dashboard %+v", d)
		}
		if len(d.Errors) != 2 || d.Errors[0].Collection != CollectionObras || d.Errors[1].Collection != CollectionReports {
			t.Fatalf("unexpected errors %+v", d.Errors)
		}
	})
}
