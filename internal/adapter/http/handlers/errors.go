package handlers

import (
	"errors"
	"net/http"

	"obradash/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapBackendError maps the errors every use case can return. Backend 401/403/404 pass
// through; any other backend failure is a bad gateway.
func mapBackendError(err error) *pkg.AppError {
	var validation *pkg.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_ERROR", validation.Error(), err, http.StatusBadRequest)
	case pkg.IsPartialFailure(err):
		return pkg.NewDomainError("PARTIAL_FAILURE", "Operation partially applied, review the residente assignments", err, http.StatusConflict)
	case pkg.IsNetwork(err):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Backend unavailable", err, http.StatusBadGateway)
	}
	if apiErr, ok := pkg.AsAPIError(err); ok {
		switch apiErr.Status {
		case http.StatusUnauthorized:
			return pkg.NewDomainError("UNAUTHORIZED", apiErr.Message, err, http.StatusUnauthorized)
		case http.StatusForbidden:
			return pkg.NewDomainError("FORBIDDEN", apiErr.Message, err, http.StatusForbidden)
		case http.StatusNotFound:
			return pkg.NewDomainError("NOT_FOUND", apiErr.Message, err, http.StatusNotFound)
		}
		return pkg.NewDomainError("BACKEND_ERROR", apiErr.Message, err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
