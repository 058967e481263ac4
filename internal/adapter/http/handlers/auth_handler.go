package handlers

import (
	"errors"
	"net/http"
	"time"

	"obradash/internal/adapter/http/dto/request"
	"obradash/internal/adapter/http/dto/response"
	"obradash/internal/adapter/http/middleware"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler opens and closes dashboard sessions.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{usecase: uc, log: logger}
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates against the backend and opens a session. The session id is returned and set as cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		h.log.Warn("[auth][handler] login failed", zap.Error(err))
		respondError(c, mapAuthError(err))
		return
	}
	h.setSessionCookie(c, s)
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Register godoc
// @Summary      Register a constructora
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Sign-up data"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.log.Warn("[auth][handler] register failed", zap.Error(err))
		respondError(c, mapAuthError(err))
		return
	}
	h.setSessionCookie(c, s)
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *AuthHandler) Sync(c *gin.Context) {
	var payload request.SyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	userID, err := h.usecase.Sync(c.Request.Context(), payload.FirebaseUID)
	if err != nil {
		respondError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.SyncResponse{UserID: userID})
}

// Logout clears the session presented by the request. It succeeds without one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		h.log.Error("[auth][handler] logout failed", zap.Error(err))
		respondError(c, mapAuthError(err))
		return
	}
	c.SetCookie(middleware.CookieSessionID, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, s entities.Session) {
	maxAge := 0
	if !s.ExpiresAt.IsZero() {
		maxAge = int(time.Until(s.ExpiresAt).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieSessionID, s.ID, maxAge, "/", "", false, true)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrInvalidCompanyName), errors.Is(err, usecase.ErrInvalidFirebaseUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingToken):
		return pkg.NewDomainError("BACKEND_ERROR", "Backend returned no token", err, http.StatusBadGateway)
	default:
		return mapBackendError(err)
	}
}
