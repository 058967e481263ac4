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

// residenteCreatedWarning is the body of a 201 whose initial assignment failed.
type residenteCreatedWarning struct {
	Residente response.ResidenteResponse `json:"residente"`
	Warning   pkg.HTTPError              `json:"warning"`
}

type ResidenteHandler struct {
	usecase usecase.IResidenteUseCase
	log     *zap.Logger
}

func NewResidenteHandler(uc usecase.IResidenteUseCase, logger *zap.Logger) *ResidenteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResidenteHandler{usecase: uc, log: logger}
}

// List godoc
// @Summary      List residentes with their current obra
// @Tags         residentes
// @Produce      json
// @Param        id   path      string  true  "Constructora ID"
// @Success      200  {object}  response.ResidentesViewResponse
// @Router       /constructoras/{id}/residentes [get]
func (h *ResidenteHandler) List(c *gin.Context) {
	v, err := h.usecase.ListView(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapResidenteError(err))
		return
	}
	c.JSON(http.StatusOK, response.ResidentesViewResponse{
		Residentes: response.FromResidentes(v.Residentes),
		Obras:      response.FromObras(v.Obras),
	})
}

func (h *ResidenteHandler) Get(c *gin.Context) {
	r, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapResidenteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResidente(r))
}

// Create registers a residente. When the optional obra assignment fails the residente
// still exists, so the answer is 201 with a warning instead of an error.
func (h *ResidenteHandler) Create(c *gin.Context) {
	var payload request.ResidenteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	r, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToInput())
	if errors.Is(err, usecase.ErrInitialAssignmentFailed) {
		h.log.Warn("[residente][handler] created without assignment", zap.String("residente_id", r.ID), zap.Error(err))
		c.JSON(http.StatusCreated, residenteCreatedWarning{
			Residente: response.FromResidente(r),
			Warning:   pkg.HTTPError{Code: "ASSIGNMENT_FAILED", Message: "Residente created but could not be assigned to the obra"},
		})
		return
	}
	if err != nil {
		h.log.Warn("[residente][handler] create failed", zap.String("constructora_id", c.Param("id")), zap.Error(err))
		respondError(c, mapResidenteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResidente(r))
}

func (h *ResidenteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapResidenteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Reassign godoc
// @Summary      Move a residente to another obra
// @Description  Closes the open assignments of the residente and opens one for obra_id. Returns 409 when a rollback could not be completed.
// @Tags         residentes
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Residente ID"
// @Param        body  body      request.ReassignRequest  true  "Target obra"
// @Success      200   {object}  response.AssignmentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /residentes/{id}/assignment [put]
func (h *ResidenteHandler) Reassign(c *gin.Context) {
	var payload request.ReassignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	a, err := h.usecase.Reassign(c.Request.Context(), c.Param("id"), payload.ObraID)
	if err != nil {
		h.log.Error("[residente][handler] reassign failed", zap.String("residente_id", c.Param("id")), zap.String("obra_id", payload.ObraID), zap.Error(err))
		respondError(c, mapResidenteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(a))
}

func mapResidenteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConstructoraID), errors.Is(err, usecase.ErrInvalidResidenteID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidResidenteName):
		return pkg.NewDomainErrorSimple("INVALID_RESIDENTE_NAME", "Residente name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidResidenteEmail):
		return pkg.NewDomainErrorSimple("INVALID_RESIDENTE_EMAIL", "A valid email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResidenteNotFound):
		return pkg.NewDomainErrorSimple("RESIDENTE_NOT_FOUND", "Residente not found", http.StatusNotFound)
	default:
		return mapBackendError(err)
	}
}
