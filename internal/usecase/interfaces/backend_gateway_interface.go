package interfaces

import (
	"context"

	"obradash/internal/adapter/backend/dto"
)

// Ports to the construction backend. Every call is one request/response round trip;
// implementations return raw rows and leave mapping to the use cases.

type IObraGateway interface {
	ListObras(ctx context.Context, constructoraID string) ([]dto.ObraRow, error)
	GetObraByResidente(ctx context.Context, residenteID string) (dto.ObraRow, error)
	CreateObra(ctx context.Context, payload dto.ObraPayload) (dto.ObraRow, error)
	UpdateObra(ctx context.Context, id string, payload dto.ObraPayload) (dto.ObraRow, error)
	DeleteObra(ctx context.Context, id string) error
}

type IResidenteGateway interface {
	ListResidentes(ctx context.Context, constructoraID string) ([]dto.ResidenteRow, error)
	GetResidente(ctx context.Context, id string) (dto.ResidenteRow, error)
	CreateResidente(ctx context.Context, payload dto.ResidentePayload) (dto.ResidenteRow, error)
	DeleteResidente(ctx context.Context, id string) error
}

type IAsignacionGateway interface {
	ListAsignaciones(ctx context.Context, filter dto.AsignacionFilter) ([]dto.AsignacionRow, error)
	CreateAsignacion(ctx context.Context, payload dto.AsignacionCreatePayload) (dto.AsignacionRow, error)
	UpdateAsignacion(ctx context.Context, id string, payload dto.AsignacionUpdatePayload) (dto.AsignacionRow, error)
}

type IGastoGateway interface {
	ListGastos(ctx context.Context, filter dto.GastoFilter) ([]dto.GastoObraRow, error)
	GetGasto(ctx context.Context, id string) (dto.GastoObraRow, error)
	CreateGasto(ctx context.Context, payload dto.GastoObraPayload) (dto.GastoObraRow, error)
	UpdateGasto(ctx context.Context, id string, payload dto.GastoObraPayload) (dto.GastoObraRow, error)
	DeleteGasto(ctx context.Context, id string) error
}

type IConstructoraGateway interface {
	GetConstructora(ctx context.Context, id string) (dto.ConstructoraRow, error)
	GetConstructoraByUser(ctx context.Context, userID string) (dto.ConstructoraRow, error)
	CreateConstructora(ctx context.Context, payload dto.ConstructoraPayload) (dto.ConstructoraRow, error)
}

// ISubscriptionGateway covers plans and subscription payments (pagos).
type ISubscriptionGateway interface {
	ListPlans(ctx context.Context) ([]dto.PlanRow, error)
	ListPagos(ctx context.Context, constructoraID string) ([]dto.PagoRow, error)
	CreatePago(ctx context.Context, payload dto.PagoPayload) (dto.PagoRow, error)
}

type IReportGateway interface {
	ListReports(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportRow, error)
}

type IAuthGateway interface {
	Login(ctx context.Context, payload dto.LoginPayload) (dto.AuthLoginResponse, error)
	Register(ctx context.Context, payload dto.RegisterPayload) (dto.AuthLoginResponse, error)
	Sync(ctx context.Context, payload dto.SyncPayload) (dto.AuthSyncResponse, error)
}
