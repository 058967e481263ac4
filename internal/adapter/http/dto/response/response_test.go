package response

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"obradash/internal/domain/entities"
	"obradash/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123,"status":"approved"}`)

	p := entities.Payment{
		ID:                 "pay-1",
		ConstructoraID:     "c-1",
		Amount:             decimal.RequireFromString("899.90"),
		Date:               now,
		Status:             entities.PaymentStatusCompletado,
		Method:             entities.PaymentMethodTarjeta,
		Concept:            "Suscripción Profesional",
		Reference:          "123",
		ProviderPaymentID:  "123",
		ProviderPayloadRaw: raw,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.Status != "completado" || res.Method != "tarjeta" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 899.9 {
		t.Fatalf("unexpected amount: %v", res.Amount)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %v", res.Date)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["status"] != "approved" {
		t.Fatalf("unexpected provider payload: %+v", res)
	}

	plain := FromPayment(entities.Payment{ID: "pay-2"})
	if plain.MPPayloadRaw != "" || plain.MPPayload != nil {
		t.Fatalf("expected no provider payload, got %+v", plain)
	}
}

func TestFromConstructoraDashboard(t *testing.T) {
	maximo := decimal.NewFromInt(1000)
	d := usecase.ConstructoraDashboard{
		Constructora: &entities.Constructora{ID: "c-1", Name: "Acme", Plan: entities.PlanTierBasico, MontoMaximo: &maximo},
		Obras:        []entities.Obra{{ID: "o-1", Budget: decimal.NewFromInt(500), Status: entities.ObraStatusEnProgreso}},
		ActiveObras:  1,
		Errors:       []usecase.CollectionError{{Collection: usecase.CollectionPagos, Message: "pagos down", Err: errors.New("pagos down")}},
	}

	res := FromConstructoraDashboard(d)
	if res.Constructora == nil || res.Constructora.MontoMinimo != nil || *res.Constructora.MontoMaximo != 1000 {
		t.Fatalf("unexpected constructora: %+v", res.Constructora)
	}
	if res.Spend != nil {
		t.Fatalf("expected nil spend")
	}
	if len(res.Obras) != 1 || res.Obras[0].Budget != 500 || res.Obras[0].Status != "en_progreso" {
		t.Fatalf("unexpected obras: %+v", res.Obras)
	}
	if len(res.Errors) != 1 || res.Errors[0].Collection != "pagos" {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// empty collections render as [] so the client can tell empty from failed
	if !strings.Contains(string(b), `"pagos":[]`) || !strings.Contains(string(b), `"gasto":null`) {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestFromResidenteDashboard(t *testing.T) {
	res := FromResidenteDashboard(usecase.ResidenteDashboard{
		Reports:    []entities.Report{{ID: "rep-1", Type: entities.ReportTypeAvance}},
		TotalGasto: decimal.RequireFromString("200.5"),
	})
	if res.Residente != nil || res.Obra != nil {
		t.Fatalf("expected nil residente and obra")
	}
	if res.TotalGasto != 200.5 || len(res.Reports) != 1 || res.Reports[0].Attachments == nil {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
}

func TestFromSession(t *testing.T) {
	s := entities.Session{
		ID:    "sess-1",
		Token: "secret",
		User:  entities.User{ID: "u-1", Role: entities.UserRoleConstructora, ConstructoraID: "c-1"},
	}
	res := FromSession(s)
	if res.SessionID != "sess-1" || res.User.Role != "constructora" || res.ExpiresAt != nil {
		t.Fatalf("unexpected session: %+v", res)
	}
	b, _ := json.Marshal(res)
	if strings.Contains(string(b), "secret") {
		t.Fatalf("token leaked: %s", b)
	}
}

func TestFromSpendSummary_RoundsPercent(t *testing.T) {
	third := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	got := FromSpendSummary(entities.SpendSummary{UtilizationPercent: third, Status: entities.SpendStatusOK})
	if got.UtilizationPercent != 33.33 {
		t.Fatalf("expected 33.33, got %v", got.UtilizationPercent)
	}
}
