package dto

import "encoding/json"

// Rows mirror the backend wire contract (snake_case). Field names must not be renamed.
//
// Monetary fields are kept raw because the backend sends them either as JSON
// numbers or as numeric strings; the mappers coerce them.

type ObraRow struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Direccion        string          `json:"direccion,omitempty"`
	FechaInicio      string          `json:"fecha_inicio,omitempty"`
	FechaFinEstimada string          `json:"fecha_fin_estimada,omitempty"`
	IsActive         bool            `json:"is_active"`
	Presupuesto      json.RawMessage `json:"presupuesto,omitempty"`
	ConstructoraID   string          `json:"constructora_id"`
	Descripcion      string          `json:"descripcion,omitempty"`
}

type ResidenteRow struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre,omitempty"`
	Apellidos      string `json:"apellidos,omitempty"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	ConstructoraID string `json:"constructora_id"`
	Puesto         string `json:"puesto,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	IsActive       bool   `json:"is_active"`
}

type AsignacionRow struct {
	ID          string  `json:"id"`
	ObraID      string  `json:"obra_id"`
	ResidenteID string  `json:"residente_id"`
	IsActive    bool    `json:"is_active"`
	FechaInicio string  `json:"fecha_inicio,omitempty"`
	FechaFin    *string `json:"fecha_fin"`
}

type GastoObraRow struct {
	ID          string          `json:"id"`
	ObraID      string          `json:"obra_id"`
	ResidenteID string          `json:"residente_id"`
	Fecha       string          `json:"fecha,omitempty"`
	Categoria   string          `json:"categoria,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
	MontoTotal  json.RawMessage `json:"monto_total,omitempty"`
	Aprobado    bool            `json:"aprobado"`
	FacturaURL  string          `json:"factura_url,omitempty"`
	MetodoPago  string          `json:"metodo_pago,omitempty"`
	Proveedor   string          `json:"proveedor,omitempty"`
	AprobadoPor string          `json:"aprobado_por,omitempty"`
	Comentarios string          `json:"comentarios,omitempty"`
}

type PagoRow struct {
	ID             string          `json:"id"`
	ConstructoraID string          `json:"constructora_id"`
	Monto          json.RawMessage `json:"monto,omitempty"`
	FechaPago      string          `json:"fecha_pago,omitempty"`
	Status         string          `json:"status,omitempty"`
	MetodoPago     string          `json:"metodo_pago,omitempty"`
	Concepto       string          `json:"concepto,omitempty"`
	ReferenciaPago string          `json:"referencia_pago,omitempty"`
}

type ConstructoraRow struct {
	ID                  string          `json:"id"`
	NombreEmpresa       string          `json:"nombre_empresa,omitempty"`
	RFC                 string          `json:"rfc,omitempty"`
	Email               string          `json:"email,omitempty"`
	Telefono            string          `json:"telefono,omitempty"`
	Direccion           string          `json:"direccion,omitempty"`
	PlanID              string          `json:"plan_id,omitempty"`
	SubscriptionEndDate string          `json:"subscription_end_date,omitempty"`
	MontoMinimo         json.RawMessage `json:"monto_minimo,omitempty"`
	MontoMaximo         json.RawMessage `json:"monto_maximo,omitempty"`
	CreatedAt           string          `json:"created_at,omitempty"`
}

type PlanRow struct {
	ID    string          `json:"id"`
	Name  string          `json:"name,omitempty"`
	Price json.RawMessage `json:"price,omitempty"`
}

// ReportRow follows the reports endpoint, which already answers in camelCase.
type ReportRow struct {
	ID          string   `json:"id"`
	ObraID      string   `json:"obraId"`
	ResidenteID string   `json:"residenteId"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	Type        string   `json:"type,omitempty"`
	Status      string   `json:"status,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

type BackendUser struct {
	ID          string `json:"id,omitempty"`
	FirebaseUID string `json:"firebase_uid,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	UserType    string `json:"user_type,omitempty"`
}

type AuthLoginResponse struct {
	IDToken string       `json:"idToken,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *BackendUser `json:"user,omitempty"`
}

type AuthSyncResponse struct {
	UserID string `json:"user_id"`
}
