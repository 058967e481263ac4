package mapper

import (
	"strings"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/domain/entities"
)

// Mappers turn one backend row into one entity. They never fail: every optional
// field has a default.

func MapObra(row dto.ObraRow) entities.Obra {
	status := entities.ObraStatusPausada
	if row.IsActive {
		status = entities.ObraStatusEnProgreso
	}
	return entities.Obra{
		ID:               row.ID,
		Name:             row.Nombre,
		Address:          row.Direccion,
		StartDate:        row.FechaInicio,
		EstimatedEndDate: row.FechaFinEstimada,
		Status:           status,
		Budget:           nonNegative(ParseAmount(row.Presupuesto)),
		ConstructoraID:   row.ConstructoraID,
		Description:      row.Descripcion,
	}
}

func MapObras(rows []dto.ObraRow) []entities.Obra {
	out := make([]entities.Obra, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapObra(r))
	}
	return out
}

func MapResidente(row dto.ResidenteRow) entities.Residente {
	status := entities.ResidenteStatusInactivo
	if row.IsActive {
		status = entities.ResidenteStatusActivo
	}
	position := strings.TrimSpace(row.Puesto)
	if position == "" {
		position = entities.DefaultResidentePosition
	}
	return entities.Residente{
		ID:             row.ID,
		Name:           JoinName(row.Nombre, row.Apellidos),
		Email:          row.Email,
		Phone:          row.Telefono,
		ConstructoraID: row.ConstructoraID,
		Position:       position,
		CreatedAt:      parseTimeOrNow(row.CreatedAt),
		Status:         status,
	}
}

func MapResidentes(rows []dto.ResidenteRow) []entities.Residente {
	out := make([]entities.Residente, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapResidente(r))
	}
	return out
}

// MapAssignment treats any non-blank fecha_fin as closed, even when it cannot be parsed.
func MapAssignment(row dto.AsignacionRow) entities.Assignment {
	a := entities.Assignment{
		ID:          row.ID,
		ObraID:      row.ObraID,
		ResidenteID: row.ResidenteID,
		Active:      row.IsActive,
	}
	if t, ok := parseTime(row.FechaInicio); ok {
		a.StartedAt = &t
	}
	if row.FechaFin != nil && strings.TrimSpace(*row.FechaFin) != "" {
		t, _ := parseTime(*row.FechaFin)
		a.EndedAt = &t
	}
	return a
}

func MapAssignments(rows []dto.AsignacionRow) []entities.Assignment {
	out := make([]entities.Assignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapAssignment(r))
	}
	return out
}

func MapGasto(row dto.GastoObraRow) entities.Gasto {
	return entities.Gasto{
		ID:            row.ID,
		ObraID:        row.ObraID,
		ResidenteID:   row.ResidenteID,
		Date:          row.Fecha,
		Category:      row.Categoria,
		Description:   row.Descripcion,
		TotalAmount:   ParseAmount(row.MontoTotal),
		Approved:      row.Aprobado,
		InvoiceURL:    row.FacturaURL,
		PaymentMethod: row.MetodoPago,
		Provider:      row.Proveedor,
		ApprovedBy:    row.AprobadoPor,
		Comments:      row.Comentarios,
	}
}

func MapGastos(rows []dto.GastoObraRow) []entities.Gasto {
	out := make([]entities.Gasto, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapGasto(r))
	}
	return out
}

func MapPayment(row dto.PagoRow) entities.Payment {
	concept := row.Concepto
	if concept == "" {
		concept = entities.DefaultPaymentConcept
	}
	return entities.Payment{
		ID:             row.ID,
		ConstructoraID: row.ConstructoraID,
		Amount:         ParseAmount(row.Monto),
		Date:           parseTimeOrNow(row.FechaPago),
		Status:         NormalizePaymentStatus(row.Status),
		Method:         NormalizePaymentMethod(row.MetodoPago),
		Concept:        concept,
		Reference:      row.ReferenciaPago,
	}
}

func MapPayments(rows []dto.PagoRow) []entities.Payment {
	out := make([]entities.Payment, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapPayment(r))
	}
	return out
}

func MapPlan(row dto.PlanRow) entities.Plan {
	return entities.Plan{
		ID:    row.ID,
		Name:  row.Name,
		Tier:  NormalizePlanTier(row.Name),
		Price: ParseAmount(row.Price),
	}
}

func MapPlans(rows []dto.PlanRow) []entities.Plan {
	out := make([]entities.Plan, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapPlan(r))
	}
	return out
}

// MapConstructora resolves the plan tier by looking plan_id up in plans.
func MapConstructora(row dto.ConstructoraRow, plans []dto.PlanRow) entities.Constructora {
	name := row.NombreEmpresa
	if name == "" {
		name = entities.DefaultConstructoraName
	}
	tier := entities.PlanTierBasico
	for _, p := range plans {
		if p.ID != "" && p.ID == row.PlanID {
			tier = NormalizePlanTier(p.Name)
			break
		}
	}
	return entities.Constructora{
		ID:          row.ID,
		Name:        name,
		RFC:         row.RFC,
		Email:       row.Email,
		Phone:       row.Telefono,
		Address:     row.Direccion,
		Plan:        tier,
		PlanExpiry:  parseTimeOrNow(row.SubscriptionEndDate),
		MontoMinimo: ParseOptionalAmount(row.MontoMinimo),
		MontoMaximo: ParseOptionalAmount(row.MontoMaximo),
		CreatedAt:   parseTimeOrNow(row.CreatedAt),
	}
}

func MapReport(row dto.ReportRow) entities.Report {
	typ := entities.ReportType(strings.ToLower(strings.TrimSpace(row.Type)))
	switch typ {
	case entities.ReportTypeAvance, entities.ReportTypeIncidente, entities.ReportTypeMaterial, entities.ReportTypePersonal:
	default:
		typ = entities.ReportTypeAvance
	}
	status := entities.ReportStatusBorrador
	if strings.EqualFold(strings.TrimSpace(row.Status), string(entities.ReportStatusEnviado)) {
		status = entities.ReportStatusEnviado
	}
	return entities.Report{
		ID:          row.ID,
		ObraID:      row.ObraID,
		ResidenteID: row.ResidenteID,
		Title:       row.Title,
		Description: row.Description,
		Date:        row.Date,
		Type:        typ,
		Status:      status,
		Attachments: row.Attachments,
	}
}

func MapReports(rows []dto.ReportRow) []entities.Report {
	out := make([]entities.Report, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapReport(r))
	}
	return out
}

func NormalizePaymentStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completado", "completed", "approved", "aprobado", "pagado", "paid":
		return entities.PaymentStatusCompletado
	case "fallido", "failed", "rejected", "rechazado", "cancelled", "cancelado":
		return entities.PaymentStatusFallido
	default:
		return entities.PaymentStatusPendiente
	}
}

func NormalizePaymentMethod(s string) entities.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transferencia", "transfer", "bank_transfer", "spei":
		return entities.PaymentMethodTransferencia
	case "oxxo", "cash", "ticket":
		return entities.PaymentMethodOxxo
	case "paypal":
		return entities.PaymentMethodPaypal
	case "stripe":
		return entities.PaymentMethodStripe
	default:
		return entities.PaymentMethodTarjeta
	}
}

func NormalizePlanTier(name string) entities.PlanTier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "profesional", "professional", "pro":
		return entities.PlanTierProfesional
	case "empresarial", "enterprise":
		return entities.PlanTierEmpresarial
	default:
		return entities.PlanTierBasico
	}
}

// FormatTimestamp renders a timestamp the way the backend stores it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
