package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(context.Context) string { return string(s) }

func newTestClient(t *testing.T, token string, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second, staticTokens(token), nil)
}

func TestClient_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"o1","nombre":"Torre","presupuesto":"1000","is_active":true,"constructora_id":"c1"}]`))
	})

	rows, err := c.ListObras(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/obras", gotPath)
	assert.Equal(t, "constructora_id=c1", gotQuery)
	assert.Equal(t, json.RawMessage(`"1000"`), rows[0].Presupuesto)
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListPlans(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestClient_FiltersOnlyNonEmpty(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListAsignaciones(context.Background(), dto.AsignacionFilter{ResidenteID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "residente_id=r1", gotQuery)
}

func TestClient_ErrorMessageResolution(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		status      int
		want        string
	}{
		{name: "json error field", contentType: "application/json", body: `{"error":"Obra no encontrada"}`, status: 404, want: "Obra no encontrada"},
		{name: "json without error", contentType: "application/json", body: `{"message":"x"}`, status: 500, want: pkg.DefaultAPIErrorMessage},
		{name: "text body", contentType: "text/plain", body: "Bad Gateway", status: 502, want: "Bad Gateway"},
		{name: "empty text", contentType: "text/plain", body: "", status: 500, want: pkg.DefaultAPIErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.GetResidente(context.Background(), "r1")
			apiErr, ok := pkg.AsAPIError(err)
			require.True(t, ok, "expected APIError, got %v", err)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nil, nil)
	_, err := c.ListPlans(context.Background())
	require.Error(t, err)
	assert.True(t, pkg.IsNetwork(err))
}

func TestClient_SendsJSONBodyOnMutations(t *testing.T) {
	var method, path string
	var body map[string]any
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a9","obra_id":"o1","residente_id":"r1","is_active":false,"fecha_fin":"2025-01-01T00:00:00Z"}`))
	})

	end := "2025-01-01T00:00:00Z"
	row, err := c.UpdateAsignacion(context.Background(), "a9", dto.AsignacionUpdatePayload{IsActive: false, FechaFin: &end})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/asignaciones_obra/a9", path)
	assert.Equal(t, false, body["is_active"])
	assert.Equal(t, end, body["fecha_fin"])
	assert.Equal(t, "a9", row.ID)
}

func TestClient_TextResponse(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("deleted"))
	})

	require.NoError(t, c.DeleteObra(context.Background(), "o1"))

	var s string
	require.NoError(t, c.get(context.Background(), "/api/health", nil, &s))
	assert.Equal(t, "deleted", s)

	_, err := c.GetGasto(context.Background(), "g1")
	assert.True(t, errors.Is(err, ErrUnexpectedResponse))
}
