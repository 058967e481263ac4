package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"obradash/internal/adapter/http/handlers/mocks"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockISubscriptionPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISubscriptionPaymentUseCase(ctrl)
	h := NewSubscriptionPaymentHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/constructoras/:id/pagos", h.Pay)
	r.GET("/v1/constructoras/:id/pagos", h.ListPayments)
	r.GET("/v1/plans", h.ListPlans)
	return r, uc
}

func TestSubscriptionPaymentHandler_Pay(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", `{"plan_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("null payload becomes empty object", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().Pay(gomock.Any(), "c-1", usecase.SubscriptionPaymentInput{PlanID: "plan-pro", MPPayload: json.RawMessage("{}")}).
			Return(entities.Payment{
				ID:                "p-1",
				ConstructoraID:    "c-1",
				Amount:            decimal.RequireFromString("499.00"),
				Status:            entities.PaymentStatusCompletado,
				Method:            entities.PaymentMethodTarjeta,
				ProviderPaymentID: "123",
			}, nil)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", `{"plan_id":"plan-pro","mp_payload":null}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "p-1", body["id"])
		assert.Equal(t, "completado", body["status"])
		assert.Equal(t, "123", body["provider_payment_id"])
	})

	t.Run("plan not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().Pay(gomock.Any(), "c-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPlanNotFound)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", `{"plan_id":"nope"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("charged but not recorded", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().Pay(gomock.Any(), "c-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentNotRecorded)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", `{"plan_id":"plan-pro","mp_payload":{}}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "PAYMENT_NOT_RECORDED")
	})

	t.Run("gateway not configured", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().Pay(gomock.Any(), "c-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrPaymentGatewayNotConfigured)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/pagos", `{"plan_id":"plan-pro","mp_payload":{"token":"x"}}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSubscriptionPaymentHandler_Lists(t *testing.T) {
	r, uc := newPaymentRouter(t)
	uc.EXPECT().ListPayments(gomock.Any(), "c-1").Return(nil, nil)
	uc.EXPECT().ListPlans(gomock.Any()).Return([]entities.Plan{{ID: "plan-pro", Name: "Pro", Tier: entities.PlanTierProfesional, Price: decimal.RequireFromString("499")}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/constructoras/c-1/pagos", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/plans", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"plan-pro","name":"Pro","tier":"profesional","price":499}]`, w.Body.String())
}
