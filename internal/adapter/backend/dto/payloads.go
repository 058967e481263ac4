package dto

import "encoding/json"

// Filters for list endpoints. Empty fields are not sent.

type AsignacionFilter struct {
	ObraID      string
	ResidenteID string
}

type GastoFilter struct {
	ObraID      string
	ResidenteID string
}

type ReportFilter struct {
	ResidenteID string
	ObraID      string
}

type ObraPayload struct {
	ConstructoraID   string      `json:"constructora_id,omitempty"`
	Nombre           string      `json:"nombre"`
	Direccion        string      `json:"direccion"`
	Descripcion      string      `json:"descripcion"`
	FechaInicio      *string     `json:"fecha_inicio"`
	FechaFinEstimada *string     `json:"fecha_fin_estimada"`
	Presupuesto      json.Number `json:"presupuesto"`
	IsActive         *bool       `json:"is_active,omitempty"`
}

type ResidentePayload struct {
	ConstructoraID string `json:"constructora_id"`
	Telefono       string `json:"telefono"`
	Nombre         string `json:"nombre"`
	Apellidos      string `json:"apellidos"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	IsActive       bool   `json:"is_active"`
}

type AsignacionCreatePayload struct {
	ResidenteID string `json:"residente_id"`
	ObraID      string `json:"obra_id"`
	IsActive    bool   `json:"is_active"`
	FechaInicio string `json:"fecha_inicio"`
}

// AsignacionUpdatePayload closes or reopens an assignment. FechaFin is sent as null to reopen.
type AsignacionUpdatePayload struct {
	IsActive bool    `json:"is_active"`
	FechaFin *string `json:"fecha_fin"`
}

type GastoObraPayload struct {
	ObraID      string      `json:"obra_id"`
	ResidenteID string      `json:"residente_id"`
	Fecha       string      `json:"fecha"`
	Categoria   string      `json:"categoria"`
	Descripcion string      `json:"descripcion"`
	MontoTotal  json.Number `json:"monto_total"`
	Aprobado    bool        `json:"aprobado"`
	FacturaURL  string      `json:"factura_url,omitempty"`
	MetodoPago  string      `json:"metodo_pago"`
	Proveedor   string      `json:"proveedor"`
	AprobadoPor string      `json:"aprobado_por,omitempty"`
	Comentarios string      `json:"comentarios,omitempty"`
}

type PagoPayload struct {
	ConstructoraID string      `json:"constructora_id"`
	Monto          json.Number `json:"monto"`
	FechaPago      string      `json:"fecha_pago"`
	Status         string      `json:"status"`
	MetodoPago     string      `json:"metodo_pago"`
	Concepto       string      `json:"concepto"`
	ReferenciaPago string      `json:"referencia_pago"`
}

type ConstructoraPayload struct {
	UserID             string `json:"user_id,omitempty"`
	NombreEmpresa      string `json:"nombre_empresa"`
	RFC                string `json:"rfc,omitempty"`
	Email              string `json:"email"`
	Telefono           string `json:"telefono,omitempty"`
	Direccion          string `json:"direccion,omitempty"`
	PlanID             string `json:"plan_id,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	SubscriptionStart  string `json:"subscription_start_date,omitempty"`
	IsActive           bool   `json:"is_active"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserData struct {
	NombreEmpresa         string `json:"nombre_empresa"`
	Email                 string `json:"email"`
	Telefono              string `json:"telefono,omitempty"`
	SubscriptionStatus    string `json:"subscription_status"`
	SubscriptionStartDate string `json:"subscription_start_date"`
	IsActive              bool   `json:"is_active"`
}

type RegisterPayload struct {
	Email    string           `json:"email"`
	Password string           `json:"password"`
	UserType string           `json:"userType"`
	UserData RegisterUserData `json:"userData"`
}

type SyncPayload struct {
	FirebaseUID string `json:"firebase_uid"`
}
