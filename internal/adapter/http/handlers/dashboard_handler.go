package handlers

import (
	"errors"
	"net/http"

	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the constructora and residente overviews. Both always answer 200
// once the id is valid; failed sections are listed in the errors field.
type DashboardHandler struct {
	constructora usecase.IConstructoraDashboardUseCase
	residente    usecase.IResidenteDashboardUseCase
	log          *zap.Logger
}

func NewDashboardHandler(constructora usecase.IConstructoraDashboardUseCase, residente usecase.IResidenteDashboardUseCase, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{constructora: constructora, residente: residente, log: logger}
}

// ConstructoraDashboard godoc
// @Summary      Constructora dashboard
// @Tags         dashboard
// @Produce      json
// @Param        id   path      string  true  "Constructora ID"
// @Success      200  {object}  response.ConstructoraDashboardResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /constructoras/{id}/dashboard [get]
func (h *DashboardHandler) ConstructoraDashboard(c *gin.Context) {
	id := c.Param("id")
	d, err := h.constructora.Load(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	if len(d.Errors) > 0 {
		h.log.Warn("[dashboard][handler] constructora dashboard degraded", zap.String("constructora_id", id), zap.Int("failed_collections", len(d.Errors)))
	}
	c.JSON(http.StatusOK, response.FromConstructoraDashboard(d))
}

// ResidenteDashboard godoc
// @Summary      Residente dashboard
// @Tags         dashboard
// @Produce      json
// @Param        id   path      string  true  "Residente ID"
// @Success      200  {object}  response.ResidenteDashboardResponse
// @Router       /residentes/{id}/dashboard [get]
func (h *DashboardHandler) ResidenteDashboard(c *gin.Context) {
	id := c.Param("id")
	d, err := h.residente.Load(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapDashboardError(err))
		return
	}
	if len(d.Errors) > 0 {
		h.log.Warn("[dashboard][handler] residente dashboard degraded", zap.String("residente_id", id), zap.Int("failed_collections", len(d.Errors)))
	}
	c.JSON(http.StatusOK, response.FromResidenteDashboard(d))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConstructoraID), errors.Is(err, usecase.ErrInvalidResidenteID):
		return errInvalidRequest
	default:
		return mapBackendError(err)
	}
}
