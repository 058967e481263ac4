package entities

type ReportType string

const (
	ReportTypeAvance    ReportType = "avance"
	ReportTypeIncidente ReportType = "incidente"
	ReportTypeMaterial  ReportType = "material"
	ReportTypePersonal  ReportType = "personal"
)

type ReportStatus string

const (
	ReportStatusBorrador ReportStatus = "borrador"
	ReportStatusEnviado  ReportStatus = "enviado"
)

type Report struct {
	ID          string
	ObraID      string
	ResidenteID string
	Title       string
	Description string
	Date        string
	Type        ReportType
	Status      ReportStatus
	Attachments []string
}
