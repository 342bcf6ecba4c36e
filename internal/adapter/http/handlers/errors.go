package handlers

import (
	"errors"
	"net/http"

	"quotation_service/internal/adapter/http/dto/request"
	"quotation_service/internal/usecase"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBindError(c *gin.Context, err error) {
	writeError(c, pkg.NewDomainError("INVALID_REQUEST", request.ValidationMessage(err), err, http.StatusBadRequest))
}

// mapAccessError translates the authorization errors shared by every use case.
func mapAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	}
	return nil
}

// internalError passes the underlying message through to the client.
func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
}

func invalidInput(code string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
}
