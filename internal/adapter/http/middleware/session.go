package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"obradash/internal/domain/entities"
	"obradash/internal/infrastructure/session"
	"obradash/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	HeaderSessionID = "X-Session-ID"
	CookieSessionID = "session_id"

	sessionKey = "session"
)

var (
	errSessionRequired = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Session required", http.StatusUnauthorized)
	errSessionInvalid  = pkg.NewDomainErrorSimple("SESSION_INVALID", "Session expired or invalid", http.StatusUnauthorized)
	errSessionStore    = pkg.NewDomainErrorSimple("SESSION_STORE_UNAVAILABLE", "Session store unavailable", http.StatusServiceUnavailable)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
)

// SessionLoader reads a persisted session by id.
type SessionLoader interface {
	Init(ctx context.Context, id string) (entities.Session, error)
}

// SessionID returns the session id presented by the request, header first.
func SessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(HeaderSessionID)); id != "" {
		return id
	}
	if id, err := c.Cookie(CookieSessionID); err == nil {
		return strings.TrimSpace(id)
	}
	return ""
}

// RequireSession loads the session and binds it to the request context, where the
// backend client reads the bearer token from.
func RequireSession(loader SessionLoader, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		id := SessionID(c)
		if id == "" {
			abort(c, errSessionRequired)
			return
		}
		s, err := loader.Init(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
				abort(c, errSessionInvalid)
				return
			}
			logger.Error("[session][middleware] load failed", zap.String("session_id", id), zap.Error(err))
			abort(c, errSessionStore)
			return
		}
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), s))
		c.Set(sessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session bound by RequireSession.
func CurrentSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

// RequireConstructora lets through constructora users acting on their own tenant,
// identified by the path parameter param.
func RequireConstructora(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok || s.User.Role != entities.UserRoleConstructora || s.User.ConstructoraID == "" || s.User.ConstructoraID != c.Param(param) {
			abort(c, errForbidden)
			return
		}
		c.Next()
	}
}

// RequireRole lets through users whose session carries one of roles.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if ok && slices.Contains(roles, s.User.Role) {
			c.Next()
			return
		}
		abort(c, errForbidden)
	}
}

// RequireResidenteAccess lets through constructora users and the residente named by param.
func RequireResidenteAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			abort(c, errForbidden)
			return
		}
		if s.User.Role == entities.UserRoleConstructora || (s.User.ResidenteID != "" && s.User.ResidenteID == c.Param(param)) {
			c.Next()
			return
		}
		abort(c, errForbidden)
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
