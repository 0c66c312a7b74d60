package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

// BookHandler exposes the catalog over HTTP. Stateless; holds only the
// service handle.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GetByID handles GET /books/id/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// FindByTitle handles GET /books/title/:title.
func (h *BookHandler) FindByTitle(c *gin.Context) {
	books, err := h.service.FindByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// FindByAuthor handles GET /books/author/:author.
func (h *BookHandler) FindByAuthor(c *gin.Context) {
	books, err := h.service.FindByAuthor(c.Request.Context(), c.Param("author"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// Create handles POST /books (admin only).
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/books/id/"+strconv.FormatInt(b.ID, 10))
	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /books/:id (admin only). A patch that changes nothing
// answers 304, distinct from the 404 of a missing book.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch book.UpdateBookRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, patch); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Delete handles DELETE /books/:id (admin only).
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, book.ErrBookAlreadyExists):
		response.Conflict(c, "book already exists")
	case errors.Is(err, book.ErrBookNotModified):
		response.NotModified(c)
	case errors.As(err, &vErrs):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("book operation failed", err)
		response.InternalServerError(c, "internal server error")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}
