package handlers

import (
	"errors"
	"net/http"

	request "quotation_service/internal/adapter/http/dto/request"
	response "quotation_service/internal/adapter/http/dto/response"
	"quotation_service/internal/adapter/http/middleware"
	"quotation_service/internal/usecase"
	"quotation_service/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Exchange email and password for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      request.LoginRequest  true  "Credentials"
// @Success  200   {object}  response.LoginResponse
// @Failure  401   {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: response.FromUser(user)})
}

// Me godoc
// @Summary   Current user profile
// @Tags      auth
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  response.UserResponse
// @Router    /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.Me(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
