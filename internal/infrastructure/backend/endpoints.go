package backend

import (
	"context"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/usecase/interfaces"
)

const (
	pathObras          = "/api/obras"
	pathObrasByRes     = "/api/obras/by-residente"
	pathResidentes     = "/api/residentes"
	pathResidentesReg  = "/api/residentes/register"
	pathAsignaciones   = "/api/asignaciones_obra"
	pathGastos         = "/api/gastos-obra"
	pathPagos          = "/api/pagos"
	pathPlans          = "/api/plans"
	pathConstructoras  = "/api/constructoras"
	pathConstructoraBy = "/api/constructoras/by-user"
	pathReports        = "/api/reports"
	pathAuthLogin      = "/api/auth/login"
	pathAuthRegister   = "/api/auth/register"
	pathAuthSync       = "/api/auth/sync"
)

var (
	_ interfaces.IObraGateway         = (*Client)(nil)
	_ interfaces.IResidenteGateway    = (*Client)(nil)
	_ interfaces.IAsignacionGateway   = (*Client)(nil)
	_ interfaces.IGastoGateway        = (*Client)(nil)
	_ interfaces.IConstructoraGateway = (*Client)(nil)
	_ interfaces.ISubscriptionGateway = (*Client)(nil)
	_ interfaces.IReportGateway       = (*Client)(nil)
	_ interfaces.IAuthGateway         = (*Client)(nil)
)

// Obras

func (c *Client) ListObras(ctx context.Context, constructoraID string) ([]dto.ObraRow, error) {
	var out []dto.ObraRow
	err := c.get(ctx, pathObras, filterQuery("constructora_id", constructoraID), &out)
	return out, err
}

func (c *Client) GetObraByResidente(ctx context.Context, residenteID string) (dto.ObraRow, error) {
	var out dto.ObraRow
	err := c.get(ctx, idPath(pathObrasByRes, residenteID), nil, &out)
	return out, err
}

func (c *Client) CreateObra(ctx context.Context, payload dto.ObraPayload) (dto.ObraRow, error) {
	var out dto.ObraRow
	err := c.post(ctx, pathObras, payload, &out)
	return out, err
}

func (c *Client) UpdateObra(ctx context.Context, id string, payload dto.ObraPayload) (dto.ObraRow, error) {
	var out dto.ObraRow
	err := c.put(ctx, idPath(pathObras, id), payload, &out)
	return out, err
}

func (c *Client) DeleteObra(ctx context.Context, id string) error {
	return c.delete(ctx, idPath(pathObras, id))
}

// Residentes

func (c *Client) ListResidentes(ctx context.Context, constructoraID string) ([]dto.ResidenteRow, error) {
	var out []dto.ResidenteRow
	err := c.get(ctx, pathResidentes, filterQuery("constructora_id", constructoraID), &out)
	return out, err
}

func (c *Client) GetResidente(ctx context.Context, id string) (dto.ResidenteRow, error) {
	var out dto.ResidenteRow
	err := c.get(ctx, idPath(pathResidentes, id), nil, &out)
	return out, err
}

func (c *Client) CreateResidente(ctx context.Context, payload dto.ResidentePayload) (dto.ResidenteRow, error) {
	var out dto.ResidenteRow
	err := c.post(ctx, pathResidentesReg, payload, &out)
	return out, err
}

func (c *Client) DeleteResidente(ctx context.Context, id string) error {
	return c.delete(ctx, idPath(pathResidentes, id))
}

// Asignaciones

func (c *Client) ListAsignaciones(ctx context.Context, filter dto.AsignacionFilter) ([]dto.AsignacionRow, error) {
	var out []dto.AsignacionRow
	err := c.get(ctx, pathAsignaciones, filterQuery("obra_id", filter.ObraID, "residente_id", filter.ResidenteID), &out)
	return out, err
}

func (c *Client) CreateAsignacion(ctx context.Context, payload dto.AsignacionCreatePayload) (dto.AsignacionRow, error) {
	var out dto.AsignacionRow
	err := c.post(ctx, pathAsignaciones, payload, &out)
	return out, err
}

func (c *Client) UpdateAsignacion(ctx context.Context, id string, payload dto.AsignacionUpdatePayload) (dto.AsignacionRow, error) {
	var out dto.AsignacionRow
	err := c.put(ctx, idPath(pathAsignaciones, id), payload, &out)
	return out, err
}

// Gastos de obra

func (c *Client) ListGastos(ctx context.Context, filter dto.GastoFilter) ([]dto.GastoObraRow, error) {
	var out []dto.GastoObraRow
	err := c.get(ctx, pathGastos, filterQuery("obra_id", filter.ObraID, "residente_id", filter.ResidenteID), &out)
	return out, err
}

func (c *Client) GetGasto(ctx context.Context, id string) (dto.GastoObraRow, error) {
	var out dto.GastoObraRow
	err := c.get(ctx, idPath(pathGastos, id), nil, &out)
	return out, err
}

func (c *Client) CreateGasto(ctx context.Context, payload dto.GastoObraPayload) (dto.GastoObraRow, error) {
	var out dto.GastoObraRow
	err := c.post(ctx, pathGastos, payload, &out)
	return out, err
}

func (c *Client) UpdateGasto(ctx context.Context, id string, payload dto.GastoObraPayload) (dto.GastoObraRow, error) {
	var out dto.GastoObraRow
	err := c.put(ctx, idPath(pathGastos, id), payload, &out)
	return out, err
}

func (c *Client) DeleteGasto(ctx context.Context, id string) error {
	return c.delete(ctx, idPath(pathGastos, id))
}

// Constructoras

func (c *Client) GetConstructora(ctx context.Context, id string) (dto.ConstructoraRow, error) {
	var out dto.ConstructoraRow
	err := c.get(ctx, idPath(pathConstructoras, id), nil, &out)
	return out, err
}

func (c *Client) GetConstructoraByUser(ctx context.Context, userID string) (dto.ConstructoraRow, error) {
	var out dto.ConstructoraRow
	err := c.get(ctx, idPath(pathConstructoraBy, userID), nil, &out)
	return out, err
}

func (c *Client) CreateConstructora(ctx context.Context, payload dto.ConstructoraPayload) (dto.ConstructoraRow, error) {
	var out dto.ConstructoraRow
	err := c.post(ctx, pathConstructoras, payload, &out)
	return out, err
}

// Plans and pagos

func (c *Client) ListPlans(ctx context.Context) ([]dto.PlanRow, error) {
	var out []dto.PlanRow
	err := c.get(ctx, pathPlans, nil, &out)
	return out, err
}

func (c *Client) ListPagos(ctx context.Context, constructoraID string) ([]dto.PagoRow, error) {
	var out []dto.PagoRow
	err := c.get(ctx, pathPagos, filterQuery("constructora_id", constructoraID), &out)
	return out, err
}

func (c *Client) CreatePago(ctx context.Context, payload dto.PagoPayload) (dto.PagoRow, error) {
	var out dto.PagoRow
	err := c.post(ctx, pathPagos, payload, &out)
	return out, err
}

// Reports

func (c *Client) ListReports(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportRow, error) {
	var out []dto.ReportRow
	err := c.get(ctx, pathReports, filterQuery("residente_id", filter.ResidenteID, "obra_id", filter.ObraID), &out)
	return out, err
}

// Auth

func (c *Client) Login(ctx context.Context, payload dto.LoginPayload) (dto.AuthLoginResponse, error) {
	var out dto.AuthLoginResponse
	err := c.post(ctx, pathAuthLogin, payload, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, payload dto.RegisterPayload) (dto.AuthLoginResponse, error) {
	var out dto.AuthLoginResponse
	err := c.post(ctx, pathAuthRegister, payload, &out)
	return out, err
}

func (c *Client) Sync(ctx context.Context, payload dto.SyncPayload) (dto.AuthSyncResponse, error) {
	var out dto.AuthSyncResponse
	err := c.post(ctx, pathAuthSync, payload, &out)
	return out, err
}
