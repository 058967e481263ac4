package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"obradash/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges subscription payments through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] sdk config failed", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] mercado pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: logger}, nil
}

// CreatePayment sends the raw Mercado Pago request and returns the provider id, status and full response.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	g.log.Info("[payment][gateway] create start",
		zap.String("payment_method_id", req.PaymentMethodID),
		zap.Float64("amount", req.TransactionAmount),
		zap.String("external_reference", req.ExternalReference),
	)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("[payment][gateway] create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info("[payment][gateway] create success", zap.String("provider_payment_id", id), zap.String("provider_status", resp.Status))
	return id, resp.Status, b, nil
}
