package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidGastoID     = errors.New("invalid gasto id")
	ErrInvalidGastoFilter = errors.New("obra_id or residente_id is required")
	ErrInvalidGastoObra   = errors.New("invalid gasto obra_id")
	ErrInvalidGastoAmount = errors.New("invalid gasto amount")
	ErrGastoNotFound      = errors.New("gasto not found")
)

type GastoInput struct {
	ObraID        string
	ResidenteID   string
	Date          string
	Category      string
	Description   string
	Amount        decimal.Decimal
	Approved      bool
	InvoiceURL    string
	PaymentMethod string
	Provider      string
	ApprovedBy    string
	Comments      string
}

// GastoApproval flips the approval of a gasto. ApprovedBy is cleared on unapprove.
type GastoApproval struct {
	Approved   bool
	ApprovedBy string
	Comments   string
}

type IGastoUseCase interface {
	List(ctx context.Context, filter dto.GastoFilter) ([]entities.Gasto, error)
	Get(ctx context.Context, id string) (entities.Gasto, error)
	Create(ctx context.Context, in GastoInput) (entities.Gasto, error)
	Update(ctx context.Context, id string, in GastoInput) (entities.Gasto, error)
	Delete(ctx context.Context, id string) error
	SetApproval(ctx context.Context, id string, approval GastoApproval) (entities.Gasto, error)
}

type GastoUseCase struct {
	gastos interfaces.IGastoGateway
	now    func() time.Time
	log    *zap.Logger
}

var _ IGastoUseCase = (*GastoUseCase)(nil)

func NewGastoUseCase(gastos interfaces.IGastoGateway, logger *zap.Logger) *GastoUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GastoUseCase{gastos: gastos, now: time.Now, log: logger}
}

func (u *GastoUseCase) List(ctx context.Context, filter dto.GastoFilter) ([]entities.Gasto, error) {
	filter.ObraID = strings.TrimSpace(filter.ObraID)
	filter.ResidenteID = strings.TrimSpace(filter.ResidenteID)
	if filter.ObraID == "" && filter.ResidenteID == "" {
		return nil, ErrInvalidGastoFilter
	}
	rows, err := u.gastos.ListGastos(ctx, filter)
	if err != nil {
		u.log.Error("[gasto][usecase] list failed", zap.String("obra_id", filter.ObraID), zap.String("residente_id", filter.ResidenteID), zap.Error(err))
		return nil, err
	}
	return mapper.MapGastos(rows), nil
}

func (u *GastoUseCase) Get(ctx context.Context, id string) (entities.Gasto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gasto{}, ErrInvalidGastoID
	}
	row, err := u.gastos.GetGasto(ctx, id)
	if err != nil {
		return entities.Gasto{}, err
	}
	if row.ID == "" {
		return entities.Gasto{}, ErrGastoNotFound
	}
	return mapper.MapGasto(row), nil
}

func (u *GastoUseCase) Create(ctx context.Context, in GastoInput) (entities.Gasto, error) {
	if err := u.normalize(&in); err != nil {
		return entities.Gasto{}, err
	}
	row, err := u.gastos.CreateGasto(ctx, gastoPayload(in))
	if err != nil {
		u.log.Error("[gasto][usecase] create failed", zap.String("obra_id", in.ObraID), zap.Error(err))
		return entities.Gasto{}, err
	}
	g := mapper.MapGasto(row)
	u.log.Info("[gasto][usecase] created", zap.String("gasto_id", g.ID), zap.String("obra_id", in.ObraID), zap.String("amount", in.Amount.String()))
	return g, nil
}

func (u *GastoUseCase) Update(ctx context.Context, id string, in GastoInput) (entities.Gasto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gasto{}, ErrInvalidGastoID
	}
	if err := u.normalize(&in); err != nil {
		return entities.Gasto{}, err
	}
	row, err := u.gastos.UpdateGasto(ctx, id, gastoPayload(in))
	if err != nil {
		u.log.Error("[gasto][usecase] update failed", zap.String("gasto_id", id), zap.Error(err))
		return entities.Gasto{}, err
	}
	g := mapper.MapGasto(row)
	if g.ID == "" {
		g.ID = id
	}
	return g, nil
}

func (u *GastoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidGastoID
	}
	if err := u.gastos.DeleteGasto(ctx, id); err != nil {
		u.log.Error("[gasto][usecase] delete failed", zap.String("gasto_id", id), zap.Error(err))
		return err
	}
	u.log.Info("[gasto][usecase] deleted", zap.String("gasto_id", id))
	return nil
}

// SetApproval reads the gasto and writes it back with the new approval; the backend has no partial update.
func (u *GastoUseCase) SetApproval(ctx context.Context, id string, approval GastoApproval) (entities.Gasto, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Gasto{}, err
	}
	in := GastoInput{
		ObraID:        current.ObraID,
		ResidenteID:   current.ResidenteID,
		Date:          current.Date,
		Category:      current.Category,
		Description:   current.Description,
		Amount:        current.TotalAmount,
		Approved:      approval.Approved,
		InvoiceURL:    current.InvoiceURL,
		PaymentMethod: current.PaymentMethod,
		Provider:      current.Provider,
		Comments:      current.Comments,
	}
	if approval.Approved {
		in.ApprovedBy = strings.TrimSpace(approval.ApprovedBy)
	}
	if c := strings.TrimSpace(approval.Comments); c != "" {
		in.Comments = c
	}
	g, err := u.Update(ctx, current.ID, in)
	if err != nil {
		return entities.Gasto{}, err
	}
	u.log.Info("[gasto][usecase] approval set", zap.String("gasto_id", g.ID), zap.Bool("approved", g.Approved))
	return g, nil
}

func (u *GastoUseCase) normalize(in *GastoInput) error {
	in.ObraID = strings.TrimSpace(in.ObraID)
	in.ResidenteID = strings.TrimSpace(in.ResidenteID)
	in.Date = strings.TrimSpace(in.Date)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.ObraID == "" {
		return ErrInvalidGastoObra
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidGastoAmount
	}
	if in.Date == "" {
		in.Date = u.now().Format(time.DateOnly)
	}
	return nil
}

func gastoPayload(in GastoInput) dto.GastoObraPayload {
	return dto.GastoObraPayload{
		ObraID:      in.ObraID,
		ResidenteID: in.ResidenteID,
		Fecha:       in.Date,
		Categoria:   in.Category,
		Descripcion: in.Description,
		MontoTotal:  json.Number(in.Amount.String()),
		Aprobado:    in.Approved,
		FacturaURL:  strings.TrimSpace(in.InvoiceURL),
		MetodoPago:  strings.TrimSpace(in.PaymentMethod),
		Proveedor:   strings.TrimSpace(in.Provider),
		AprobadoPor: in.ApprovedBy,
		Comentarios: strings.TrimSpace(in.Comments),
	}
}
