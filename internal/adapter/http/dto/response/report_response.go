package response

import "obradash/internal/domain/entities"

// ReportResponse keeps the camelCase of the backend reports endpoint.
type ReportResponse struct {
	ID          string   `json:"id"`
	ObraID      string   `json:"obraId"`
	ResidenteID string   `json:"residenteId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Attachments []string `json:"attachments"`
}

func FromReports(reports []entities.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		attachments := r.Attachments
		if attachments == nil {
			attachments = []string{}
		}
		out = append(out, ReportResponse{
			ID:          r.ID,
			ObraID:      r.ObraID,
			ResidenteID: r.ResidenteID,
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Type:        string(r.Type),
			Status:      string(r.Status),
			Attachments: attachments,
		})
	}
	return out
}
