package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"obradash/internal/adapter/http/handlers/mocks"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newResidenteRouter(t *testing.T) (*gin.Engine, *mocks.MockIResidenteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIResidenteUseCase(ctrl)
	h := NewResidenteHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/constructoras/:id/residentes", h.List)
	r.POST("/v1/constructoras/:id/residentes", h.Create)
	r.GET("/v1/residentes/:id", h.Get)
	r.DELETE("/v1/residentes/:id", h.Delete)
	r.PUT("/v1/residentes/:id/assignment", h.Reassign)
	return r, uc
}

func postJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResidenteHandler_List(t *testing.T) {
	r, uc := newResidenteRouter(t)
	uc.EXPECT().ListView(gomock.Any(), "c-1").Return(usecase.ResidentesView{
		Residentes: []entities.Residente{{ID: "r-1", ObraID: "o-1"}},
		Obras:      []entities.Obra{{ID: "o-1", Responsable: "Ana"}},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/constructoras/c-1/residentes", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Residentes []map[string]any `json:"residentes"`
		Obras      []map[string]any `json:"obras"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Residentes) != 1 || body.Residentes[0]["obra_id"] != "o-1" || body.Obras[0]["responsable"] != "Ana" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestResidenteHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Create(gomock.Any(), "c-1", usecase.ResidenteInput{Name: "Ana Ruiz", Email: "ana@x.com"}).Return(entities.Residente{ID: "r-9", Name: "Ana Ruiz"}, nil)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/residentes", `{"nombre":"Ana Ruiz","email":"ana@x.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("assignment failure is a warning", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		err := fmt.Errorf("%w: %w", usecase.ErrInitialAssignmentFailed, &pkg.APIError{Status: 500, Message: "boom"})
		uc.EXPECT().Create(gomock.Any(), "c-1", gomock.Any()).Return(entities.Residente{ID: "r-9"}, err)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/residentes", `{"nombre":"Ana","email":"ana@x.com","obra_id":"o-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Residente map[string]any `json:"residente"`
			Warning   pkg.HTTPError  `json:"warning"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Residente["id"] != "r-9" || body.Warning.Code != "ASSIGNMENT_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed email is rejected before the use case", func(t *testing.T) {
		r, _ := newResidenteRouter(t)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/residentes", `{"nombre":"Ana","email":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank email from the use case", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Create(gomock.Any(), "c-1", gomock.Any()).Return(entities.Residente{}, usecase.ErrInvalidResidenteEmail)

		w := postJSON(r, http.MethodPost, "/v1/constructoras/c-1/residentes", `{"nombre":"Ana","email":"ana@x.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestResidenteHandler_GetAndDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Get(gomock.Any(), "r-1").Return(entities.Residente{}, usecase.ErrResidenteNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/residentes/r-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/residentes/r-1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestResidenteHandler_Reassign(t *testing.T) {
	t.Run("missing obra", func(t *testing.T) {
		r, _ := newResidenteRouter(t)
		w := postJSON(r, http.MethodPut, "/v1/residentes/r-1/assignment", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Reassign(gomock.Any(), "r-1", "o-2").Return(entities.Assignment{ID: "as-2", ObraID: "o-2", ResidenteID: "r-1", Active: true}, nil)

		w := postJSON(r, http.MethodPut, "/v1/residentes/r-1/assignment", `{"obra_id":"o-2"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["obra_id"] != "o-2" || body["is_active"] != true || body["fecha_fin"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("rollback failure", func(t *testing.T) {
		r, uc := newResidenteRouter(t)
		uc.EXPECT().Reassign(gomock.Any(), "r-1", "o-2").Return(entities.Assignment{}, &pkg.PartialFailureError{
			Op: "reassign", Cause: errors.New("create failed"), RollbackErr: errors.New("reopen failed"),
		})

		w := postJSON(r, http.MethodPut, "/v1/residentes/r-1/assignment", `{"obra_id":"o-2"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
