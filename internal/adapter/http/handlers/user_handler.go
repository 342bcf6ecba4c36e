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

// UserHandler serves admin user management.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// ListUsers godoc
// @Summary   List users, newest first
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {array}  response.UserResponse
// @Router    /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// CreateUser godoc
// @Summary   Create a user
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body  body      request.CreateUserRequest  true  "User"
// @Success   201   {object}  response.UserResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), middleware.CallerFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidUserName),
		errors.Is(err, usecase.ErrInvalidUserEmail),
		errors.Is(err, usecase.ErrWeakPassword),
		errors.Is(err, usecase.ErrInvalidUserRole):
		return invalidInput("INVALID_USER_INPUT", err)
	case errors.Is(err, usecase.ErrUserExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already exists", http.StatusConflict)
	default:
		return internalError(err)
	}
}
