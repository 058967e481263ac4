package handlers

import (
	"errors"
	"net/http"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// List godoc
// @Summary      List reports by residente or obra
// @Tags         reports
// @Produce      json
// @Param        residente_id  query     string  false  "Residente ID"
// @Param        obra_id       query     string  false  "Obra ID"
// @Success      200           {array}   response.ReportResponse
// @Router       /reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.usecase.List(c.Request.Context(), dto.ReportFilter{
		ResidenteID: c.Query("residente_id"),
		ObraID:      c.Query("obra_id"),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReportFilter) {
			respondError(c, errInvalidRequest)
			return
		}
		respondError(c, mapBackendError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReports(reports))
}
