package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestObraRequest_AcceptsNumericStrings(t *testing.T) {
	for _, body := range []string{
		`{"nombre":"Torre","presupuesto":1500000.5}`,
		`{"nombre":"Torre","presupuesto":"1500000.5"}`,
	} {
		var r ObraRequest
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error for %s: %v", body, err)
		}
		in := r.ToInput()
		if in.Name != "Torre" || !in.Budget.Equal(decimal.RequireFromString("1500000.5")) {
			t.Fatalf("unexpected input %+v", in)
		}
		if in.Active != nil {
			t.Fatalf("expected nil active when omitted")
		}
	}
}

func TestGastoRequest_ToInput(t *testing.T) {
	var r GastoRequest
	if err := json.Unmarshal([]byte(`{"obra_id":"o-1","monto_total":"250.75","categoria":"material","aprobado":true}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.ObraID != "o-1" || in.Category != "material" || !in.Approved {
		t.Fatalf("unexpected input %+v", in)
	}
	if !in.Amount.Equal(decimal.RequireFromString("250.75")) {
		t.Fatalf("unexpected amount %s", in.Amount)
	}
}

func TestRegisterRequest_ToInput(t *testing.T) {
	in := RegisterRequest{Email: "a@b.com", Password: "x", CompanyName: "Acme", Phone: "555"}.ToInput()
	if in.CompanyName != "Acme" || in.Phone != "555" || in.Email != "a@b.com" {
		t.Fatalf("unexpected input %+v", in)
	}
}
