package usecase

import (
	"context"
	"errors"
	"strings"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"
)

var ErrInvalidReportFilter = errors.New("residente_id or obra_id is required")

type IReportUseCase interface {
	List(ctx context.Context, filter dto.ReportFilter) ([]entities.Report, error)
}

type ReportUseCase struct {
	reports interfaces.IReportGateway
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(reports interfaces.IReportGateway) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

func (u *ReportUseCase) List(ctx context.Context, filter dto.ReportFilter) ([]entities.Report, error) {
	filter.ResidenteID = strings.TrimSpace(filter.ResidenteID)
	filter.ObraID = strings.TrimSpace(filter.ObraID)
	if filter.ResidenteID == "" && filter.ObraID == "" {
		return nil, ErrInvalidReportFilter
	}
	rows, err := u.reports.ListReports(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapper.MapReports(rows), nil
}
