package handlers

import (
	"errors"
	"net/http"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/http/dto/request"
	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/adapter/http/middleware"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GastoHandler struct {
	usecase usecase.IGastoUseCase
	log     *zap.Logger
}

func NewGastoHandler(uc usecase.IGastoUseCase, logger *zap.Logger) *GastoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GastoHandler{usecase: uc, log: logger}
}

// List godoc
// @Summary      List gastos
// @Tags         gastos
// @Produce      json
// @Param        obra_id       query     string  false  "Obra ID"
// @Param        residente_id  query     string  false  "Residente ID"
// @Success      200           {array}   response.GastoResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /gastos [get]
func (h *GastoHandler) List(c *gin.Context) {
	h.list(c, dto.GastoFilter{ObraID: c.Query("obra_id"), ResidenteID: c.Query("residente_id")})
}

// ListByObra serves /obras/:id/gastos.
func (h *GastoHandler) ListByObra(c *gin.Context) {
	h.list(c, dto.GastoFilter{ObraID: c.Param("id")})
}

func (h *GastoHandler) list(c *gin.Context, filter dto.GastoFilter) {
	gastos, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapGastoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGastos(gastos))
}

func (h *GastoHandler) Get(c *gin.Context) {
	g, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapGastoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGasto(g))
}

func (h *GastoHandler) Create(c *gin.Context) {
	var payload request.GastoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	g, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.log.Warn("[gasto][handler] create failed", zap.String("obra_id", payload.ObraID), zap.Error(err))
		respondError(c, mapGastoError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromGasto(g))
}

func (h *GastoHandler) Update(c *gin.Context) {
	var payload request.GastoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	g, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.log.Warn("[gasto][handler] update failed", zap.String("gasto_id", c.Param("id")), zap.Error(err))
		respondError(c, mapGastoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGasto(g))
}

func (h *GastoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapGastoError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetApproval approves or unapproves a gasto. aprobado_por defaults to the session user.
func (h *GastoHandler) SetApproval(c *gin.Context) {
	var payload request.GastoApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	approval := payload.ToApproval()
	if approval.ApprovedBy == "" {
		if s, ok := middleware.CurrentSession(c); ok {
			approval.ApprovedBy = s.User.ID
		}
	}
	g, err := h.usecase.SetApproval(c.Request.Context(), c.Param("id"), approval)
	if err != nil {
		h.log.Warn("[gasto][handler] approval failed", zap.String("gasto_id", c.Param("id")), zap.Error(err))
		respondError(c, mapGastoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGasto(g))
}

func mapGastoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGastoID), errors.Is(err, usecase.ErrInvalidGastoFilter), errors.Is(err, usecase.ErrInvalidGastoObra):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGastoAmount):
		return pkg.NewDomainErrorSimple("INVALID_GASTO_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGastoNotFound):
		return pkg.NewDomainErrorSimple("GASTO_NOT_FOUND", "Gasto not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
