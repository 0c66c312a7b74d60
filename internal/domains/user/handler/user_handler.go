package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users. Password hashes never serialize (json:"-").
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+strconv.FormatInt(u.ID, 10))
	response.Success(c, http.StatusCreated, u)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		response.Conflict(c, "username already exists")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.As(err, &vErrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("user operation failed", err)
		response.InternalServerError(c, "internal server error")
	}
}
