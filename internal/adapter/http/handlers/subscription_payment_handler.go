package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"obradash/internal/adapter/http/dto/request"
	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionPaymentHandler handles HTTP requests for subscription payments and plans.
type SubscriptionPaymentHandler struct {
	usecase usecase.ISubscriptionPaymentUseCase
	log     *zap.Logger
}

func NewSubscriptionPaymentHandler(uc usecase.ISubscriptionPaymentUseCase, logger *zap.Logger) *SubscriptionPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionPaymentHandler{usecase: uc, log: logger}
}

// Pay godoc
// @Summary      Pay a subscription
// @Description  Charges the plan price through Mercado Pago and records the payment with the backend.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        id    path      string                              true  "Constructora ID"
// @Param        body  body      request.SubscriptionPaymentRequest  true  "Plan and Mercado Pago card/payer data"
// @Success      200   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /constructoras/{id}/pagos [post]
func (h *SubscriptionPaymentHandler) Pay(c *gin.Context) {
	constructoraID := c.Param("id")
	in, err := readSubscriptionPayment(c)
	if err != nil {
		h.log.Warn("[payment][handler] invalid payload", zap.String("constructora_id", constructoraID), zap.Error(err))
		respondError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.Pay(c.Request.Context(), constructoraID, in)
	if err != nil {
		h.log.Error("[payment][handler] pay failed", zap.String("constructora_id", constructoraID), zap.String("plan_id", in.PlanID), zap.Error(err))
		respondError(c, mapPaymentError(err))
		return
	}
	h.log.Info("[payment][handler] pay success", zap.String("constructora_id", constructoraID), zap.String("payment_id", p.ID), zap.String("status", string(p.Status)))
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPayments returns the payment history, newest first.
func (h *SubscriptionPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *SubscriptionPaymentHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlans(plans))
}

// readSubscriptionPayment accepts {"plan_id": ..., "mp_payload": {...}}. An empty or null
// mp_payload becomes {} so that mock mode works without card data.
func readSubscriptionPayment(c *gin.Context) (usecase.SubscriptionPaymentInput, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return usecase.SubscriptionPaymentInput{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return usecase.SubscriptionPaymentInput{}, errors.New("request body is empty")
	}
	var payload request.SubscriptionPaymentRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return usecase.SubscriptionPaymentInput{}, err
	}
	mp := strings.TrimSpace(string(payload.MPPayload))
	if mp == "" || mp == "null" {
		payload.MPPayload = json.RawMessage("{}")
	}
	return usecase.SubscriptionPaymentInput{PlanID: payload.PlanID, MPPayload: payload.MPPayload}, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConstructoraID), errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotRecorded):
		return pkg.NewDomainError("PAYMENT_NOT_RECORDED", "Payment was charged but could not be recorded, contact support", err, http.StatusBadGateway)
	default:
		return mapBackendError(err)
	}
}
