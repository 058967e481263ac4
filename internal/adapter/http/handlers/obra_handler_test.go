package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"obradash/internal/adapter/http/handlers/mocks"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newObraRouter(t *testing.T) (*gin.Engine, *mocks.MockIObraUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIObraUseCase(ctrl)
	h := NewObraHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/constructoras/:id/obras", h.List)
	r.POST("/v1/constructoras/:id/obras", h.Create)
	r.PUT("/v1/obras/:id", h.Update)
	r.DELETE("/v1/obras/:id", h.Delete)
	return r, uc
}

func TestObraHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newObraRouter(t)
		uc.EXPECT().ListView(gomock.Any(), "c-1").Return([]entities.Obra{{ID: "o-1", Responsable: entities.ResponsableSinAsignar}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/constructoras/c-1/obras", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create passes budget strings through", func(t *testing.T) {
		r, uc := newObraRouter(t)
		uc.EXPECT().Create(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.ObraInput) (entities.Obra, error) {
				if in.Name != "Torre" || !in.Budget.Equal(decimal.NewFromInt(250000)) {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Obra{ID: "o-9", Name: in.Name, Budget: in.Budget}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/constructoras/c-1/obras", bytes.NewBufferString(`{"nombre":"Torre","presupuesto":"250000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create missing name", func(t *testing.T) {
		r, _ := newObraRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/constructoras/c-1/obras", bytes.NewBufferString(`{"presupuesto":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update negative budget", func(t *testing.T) {
		r, uc := newObraRouter(t)
		uc.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).Return(entities.Obra{}, usecase.ErrInvalidObraBudget)

		req := httptest.NewRequest(http.MethodPut, "/v1/obras/o-1", bytes.NewBufferString(`{"nombre":"Torre","presupuesto":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete backend failure", func(t *testing.T) {
		r, uc := newObraRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "o-1").Return(&pkg.APIError{Status: 500, Message: "Error de API"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/obras/o-1", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
