package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/rental"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// RentalHandler exposes rent/return. The borrower is always the
// authenticated caller, resolved by the BasicAuth middleware.
type RentalHandler struct {
	service rental.Service
}

func NewRentalHandler(service rental.Service) *RentalHandler {
	return &RentalHandler{service: service}
}

// List handles GET /rentals.
func (h *RentalHandler) List(c *gin.Context) {
	rentals, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rentals)
}

// Rent handles POST /rentals/rent/:id.
func (h *RentalHandler) Rent(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "missing or malformed credentials")
		return
	}

	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.service.Rent(c.Request.Context(), u.ID, bookID); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rental.Rental{UserID: u.ID, BookID: bookID})
}

// Return handles POST /rentals/return/:id.
func (h *RentalHandler) Return(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "missing or malformed credentials")
		return
	}

	bookID, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.service.Return(c.Request.Context(), u.ID, bookID); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"book_id": bookID})
}

func (h *RentalHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rental.ErrBookUnavailable):
		response.Conflict(c, "book already rented")
	case errors.Is(err, rental.ErrRentalNotFound):
		response.NotFound(c, "rental not found")
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	default:
		logger.Error("rental operation failed", err)
		response.InternalServerError(c, "internal server error")
	}
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}
