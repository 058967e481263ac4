package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPlanID                  = errors.New("invalid plan_id")
	ErrPlanNotFound                   = errors.New("plan not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotRecorded             = errors.New("payment charged but not recorded")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// SubscriptionPaymentInput pays one subscription period of PlanID. MPPayload is the
// card/payer part of a Mercado Pago payment request; amount and references are set here.
type SubscriptionPaymentInput struct {
	PlanID    string
	MPPayload json.RawMessage
}

// ISubscriptionPaymentUseCase charges subscriptions through the payment provider and keeps the
// backend's payment history in sync.
type ISubscriptionPaymentUseCase interface {
	Pay(ctx context.Context, constructoraID string, in SubscriptionPaymentInput) (entities.Payment, error)
	ListPayments(ctx context.Context, constructoraID string) ([]entities.Payment, error)
	ListPlans(ctx context.Context) ([]entities.Plan, error)
}

type SubscriptionPaymentUseCase struct {
	subscriptions interfaces.ISubscriptionGateway
	gateway       interfaces.IPaymentGateway
	now           func() time.Time
	log           *zap.Logger
}

var _ ISubscriptionPaymentUseCase = (*SubscriptionPaymentUseCase)(nil)

func NewSubscriptionPaymentUseCase(subscriptions interfaces.ISubscriptionGateway, gateway interfaces.IPaymentGateway, logger *zap.Logger) *SubscriptionPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionPaymentUseCase{subscriptions: subscriptions, gateway: gateway, now: time.Now, log: logger}
}

func (u *SubscriptionPaymentUseCase) Pay(ctx context.Context, constructoraID string, in SubscriptionPaymentInput) (entities.Payment, error) {
	mockMode := isPaymentGatewayMockEnabled()
	constructoraID = strings.TrimSpace(constructoraID)
	planID := strings.TrimSpace(in.PlanID)
	mpPayload := in.MPPayload
	log := u.log.With(zap.String("constructora_id", constructoraID), zap.String("plan_id", planID))
	log.Info("[payment][usecase] pay start", zap.Int("payload_len", len(mpPayload)), zap.Bool("mock", mockMode))

	if constructoraID == "" {
		return entities.Payment{}, ErrInvalidConstructoraID
	}
	if planID == "" {
		return entities.Payment{}, ErrInvalidPlanID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("[payment][usecase] invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Error("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	// The plan price on the backend is the source of truth for the amount.
	planRows, err := u.subscriptions.ListPlans(ctx)
	if err != nil {
		log.Error("[payment][usecase] failed loading plans", zap.Error(err))
		return entities.Payment{}, err
	}
	idx := slices.IndexFunc(planRows, func(p dto.PlanRow) bool { return p.ID == planID })
	if idx < 0 {
		log.Warn("[payment][usecase] plan not found")
		return entities.Payment{}, ErrPlanNotFound
	}
	plan := mapper.MapPlan(planRows[idx])
	concept := fmt.Sprintf("%s %s", entities.DefaultPaymentConcept, plan.Name)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			log.Warn("[payment][usecase] payload is not an object", zap.Error(err))
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn("[payment][usecase] missing payment_method_id")
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		normalizeSandboxPayerFromUserID(reqMap, log)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing or invalid payer")
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = constructoraID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = concept
	}
	reqMap["transaction_amount"] = plan.Price.InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerStatus, providerResp, err = u.mockCharge(reqMap)
		if err != nil {
			return entities.Payment{}, err
		}
		log.Info("[payment][usecase] mock mode; skipped external gateway")
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.Payment{}, classifyGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	status := mapper.NormalizePaymentStatus(providerStatus)
	row, err := u.subscriptions.CreatePago(ctx, dto.PagoPayload{
		ConstructoraID: constructoraID,
		Monto:          json.Number(plan.Price.String()),
		FechaPago:      mapper.FormatTimestamp(u.now()),
		Status:         string(status),
		MetodoPago:     string(entities.PaymentMethodTarjeta),
		Concepto:       concept,
		ReferenciaPago: providerPaymentID,
	})
	if err != nil {
		// The charge went through; the provider id is the only way to reconcile it by hand.
		log.Error("[payment][usecase] backend record failed after charge",
			zap.String("provider_payment_id", providerPaymentID),
			zap.Error(err),
		)
		return entities.Payment{}, fmt.Errorf("%w: %w", ErrPaymentNotRecorded, err)
	}

	p := mapper.MapPayment(row)
	if p.ConstructoraID == "" {
		p.ConstructoraID = constructoraID
	}
	p.ProviderPaymentID = providerPaymentID
	p.ProviderPayloadRaw = providerResp
	log.Info("[payment][usecase] pay success", zap.String("payment_id", p.ID), zap.String("status", string(p.Status)))
	return p, nil
}

func (u *SubscriptionPaymentUseCase) mockCharge(reqMap map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UTC().UnixNano(), 10)
	ts := mapper.FormatTimestamp(u.now())
	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// ListPayments returns the tenant's payments, newest first.
func (u *SubscriptionPaymentUseCase) ListPayments(ctx context.Context, constructoraID string) ([]entities.Payment, error) {
	constructoraID = strings.TrimSpace(constructoraID)
	if constructoraID == "" {
		return nil, ErrInvalidConstructoraID
	}
	rows, err := u.subscriptions.ListPagos(ctx, constructoraID)
	if err != nil {
		return nil, err
	}
	payments := mapper.MapPayments(rows)
	slices.SortStableFunc(payments, func(a, b entities.Payment) int { return b.Date.Compare(a.Date) })
	return payments, nil
}

func (u *SubscriptionPaymentUseCase) ListPlans(ctx context.Context) ([]entities.Plan, error) {
	rows, err := u.subscriptions.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.MapPlans(rows), nil
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; only fill email when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_mx@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps a configured sandbox user id for its email, which is
// what test credentials accept.
func normalizeSandboxPayerFromUserID(m map[string]any, log *zap.Logger) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
