package response

import (
	"time"

	"obradash/internal/domain/entities"
	"obradash/internal/usecase"
)

type ConstructoraResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre_empresa"`
	RFC         string    `json:"rfc,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"telefono,omitempty"`
	Address     string    `json:"direccion,omitempty"`
	Plan        string    `json:"plan"`
	PlanExpiry  time.Time `json:"plan_expiry"`
	MontoMinimo *float64  `json:"monto_minimo"`
	MontoMaximo *float64  `json:"monto_maximo"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromConstructora(c entities.Constructora) ConstructoraResponse {
	res := ConstructoraResponse{
		ID:         c.ID,
		Name:       c.Name,
		RFC:        c.RFC,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Plan:       string(c.Plan),
		PlanExpiry: c.PlanExpiry,
		CreatedAt:  c.CreatedAt,
	}
	if c.MontoMinimo != nil {
		v := c.MontoMinimo.InexactFloat64()
		res.MontoMinimo = &v
	}
	if c.MontoMaximo != nil {
		v := c.MontoMaximo.InexactFloat64()
		res.MontoMaximo = &v
	}
	return res
}

type SpendSummaryResponse struct {
	ActiveObras        int     `json:"obras_activas"`
	TotalBudget        float64 `json:"presupuesto_total"`
	TotalSpent         float64 `json:"gasto_total"`
	UtilizationPercent float64 `json:"porcentaje_utilizado"`
	Status             string  `json:"estado"`
}

func FromSpendSummary(s entities.SpendSummary) SpendSummaryResponse {
	return SpendSummaryResponse{
		ActiveObras:        s.ActiveObras,
		TotalBudget:        s.TotalBudget.InexactFloat64(),
		TotalSpent:         s.TotalSpent.InexactFloat64(),
		UtilizationPercent: s.UtilizationPercent.Round(2).InexactFloat64(),
		Status:             string(s.Status),
	}
}

// CollectionErrorResponse tells the client which section failed to load.
type CollectionErrorResponse struct {
	Collection string `json:"collection"`
	Message    string `json:"message"`
}

func FromCollectionErrors(errs []usecase.CollectionError) []CollectionErrorResponse {
	out := make([]CollectionErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, CollectionErrorResponse{Collection: e.Collection, Message: e.Message})
	}
	return out
}

type ConstructoraDashboardResponse struct {
	Constructora     *ConstructoraResponse     `json:"constructora"`
	Obras            []ObraResponse            `json:"obras"`
	Residentes       []ResidenteResponse       `json:"residentes"`
	Payments         []PaymentResponse         `json:"pagos"`
	Plans            []PlanResponse            `json:"plans"`
	ActiveObras      int                       `json:"obras_activas"`
	ActiveResidentes int                       `json:"residentes_activos"`
	Spend            *SpendSummaryResponse     `json:"gasto"`
	Errors           []CollectionErrorResponse `json:"errors"`
}

func FromConstructoraDashboard(d usecase.ConstructoraDashboard) ConstructoraDashboardResponse {
	res := ConstructoraDashboardResponse{
		Obras:            FromObras(d.Obras),
		Residentes:       FromResidentes(d.Residentes),
		Payments:         FromPayments(d.Payments),
		Plans:            FromPlans(d.Plans),
		ActiveObras:      d.ActiveObras,
		ActiveResidentes: d.ActiveResidentes,
		Errors:           FromCollectionErrors(d.Errors),
	}
	if d.Constructora != nil {
		c := FromConstructora(*d.Constructora)
		res.Constructora = &c
	}
	if d.Spend != nil {
		s := FromSpendSummary(*d.Spend)
		res.Spend = &s
	}
	return res
}

type ResidenteDashboardResponse struct {
	Residente  *ResidenteResponse        `json:"residente"`
	Obra       *ObraResponse             `json:"obra"`
	Reports    []ReportResponse          `json:"reports"`
	Gastos     []GastoResponse           `json:"gastos"`
	TotalGasto float64                   `json:"gasto_total"`
	Errors     []CollectionErrorResponse `json:"errors"`
}

func FromResidenteDashboard(d usecase.ResidenteDashboard) ResidenteDashboardResponse {
	res := ResidenteDashboardResponse{
		Reports:    FromReports(d.Reports),
		Gastos:     FromGastos(d.Gastos),
		TotalGasto: d.TotalGasto.InexactFloat64(),
		Errors:     FromCollectionErrors(d.Errors),
	}
	if d.Residente != nil {
		r := FromResidente(*d.Residente)
		res.Residente = &r
	}
	if d.Obra != nil {
		o := FromObra(*d.Obra)
		res.Obra = &o
	}
	return res
}
