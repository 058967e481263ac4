package handlers

import (
	"errors"
	"net/http"

	"obradash/internal/adapter/http/dto/request"
	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ObraHandler struct {
	usecase usecase.IObraUseCase
	log     *zap.Logger
}

func NewObraHandler(uc usecase.IObraUseCase, logger *zap.Logger) *ObraHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObraHandler{usecase: uc, log: logger}
}

// List godoc
// @Summary      List obras with their responsable
// @Tags         obras
// @Produce      json
// @Param        id   path      string  true  "Constructora ID"
// @Success      200  {array}   response.ObraResponse
// @Router       /constructoras/{id}/obras [get]
func (h *ObraHandler) List(c *gin.Context) {
	obras, err := h.usecase.ListView(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObras(obras))
}

// Create godoc
// @Summary      Create an obra
// @Tags         obras
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Constructora ID"
// @Param        body  body      request.ObraRequest  true  "Obra"
// @Success      201   {object}  response.ObraResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /constructoras/{id}/obras [post]
func (h *ObraHandler) Create(c *gin.Context) {
	var payload request.ObraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.log.Warn("[obra][handler] create failed", zap.String("constructora_id", c.Param("id")), zap.Error(err))
		respondError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromObra(o))
}

func (h *ObraHandler) Update(c *gin.Context) {
	var payload request.ObraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.log.Warn("[obra][handler] update failed", zap.String("obra_id", c.Param("id")), zap.Error(err))
		respondError(c, mapObraError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromObra(o))
}

func (h *ObraHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Warn("[obra][handler] delete failed", zap.String("obra_id", c.Param("id")), zap.Error(err))
		respondError(c, mapObraError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapObraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConstructoraID), errors.Is(err, usecase.ErrInvalidObraID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidObraName):
		return pkg.NewDomainErrorSimple("INVALID_OBRA_NAME", "Obra name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidObraBudget):
		return pkg.NewDomainErrorSimple("INVALID_OBRA_BUDGET", "Budget cannot be negative", http.StatusBadRequest)
	default:
		return mapBackendError(err)
	}
}
