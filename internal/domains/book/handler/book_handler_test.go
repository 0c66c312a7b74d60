package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	bookservice "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/user"
	usersvc "library-backend/internal/domains/user/service"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/stubs"
)

const (
	authAdmin = "Basic YWRtaW46cm9vdA==" // admin:root
	authAlice = "Basic YWxpY2U6cHcx"     // alice:pw1, not an admin
)

func setupBookRouter(t *testing.T) (*gin.Engine, book.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := stubs.NewMemoryStore()
	ctx := context.Background()

	users := usersvc.NewUserService(store.Users())
	_, err := users.Register(ctx, user.RegisterRequest{Username: "admin", Password: "root", Admin: true})
	require.NoError(t, err)
	_, err = users.Register(ctx, user.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	books := bookservice.NewBookService(store.Books())
	h := NewBookHandler(books)

	r := gin.New()
	public := r.Group("/books")
	public.GET("", h.List)
	public.GET("/id/:id", h.GetByID)
	public.GET("/title/:title", h.FindByTitle)
	public.GET("/author/:author", h.FindByAuthor)

	admin := r.Group("/books", middleware.BasicAuth(users), middleware.AdminOnly())
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
	return r, books
}

func doRequest(r *gin.Engine, method, path, authHeader, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookEndpoint(t *testing.T) {
	r, _ := setupBookRouter(t)
	payload := `{"title":"Dune","author":"Herbert"}`

	t.Run("requires authentication", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", "", payload)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("requires admin", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", authAlice, payload)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("creates and points at the new book", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", authAdmin, payload)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1/books/id/1", rec.Header().Get("Location"))

		var body struct {
			Success bool      `json:"success"`
			Data    book.Book `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.True(t, body.Data.Availability)
	})

	t.Run("duplicate title and author conflicts", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", authAdmin, payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", authAdmin, `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/books", authAdmin, `{"title":"","author":"Herbert"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateBookEndpoint(t *testing.T) {
	r, books := setupBookRouter(t)
	ctx := context.Background()

	created, err := books.Add(ctx, book.CreateBookRequest{Title: "Dune", Author: "Herbet"})
	require.NoError(t, err)

	t.Run("missing book", func(t *testing.T) {
		rec := doRequest(r, http.MethodPut, "/books/99", authAdmin, `{"title":"Dune Messiah"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty patch answers 304 without a body", func(t *testing.T) {
		rec := doRequest(r, http.MethodPut, "/books/1", authAdmin, `{}`)
		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("no-op patch answers 304", func(t *testing.T) {
		rec := doRequest(r, http.MethodPut, "/books/1", authAdmin, `{"title":"Dune","author":"Herbet"}`)
		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("applies a partial patch", func(t *testing.T) {
		rec := doRequest(r, http.MethodPut, "/books/1", authAdmin, `{"author":"Herbert"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		updated, err := books.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", updated.Title)
		assert.Equal(t, "Herbert", updated.Author)
	})
}

func TestDeleteBookEndpoint(t *testing.T) {
	r, books := setupBookRouter(t)
	ctx := context.Background()

	created, err := books.Add(ctx, book.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	t.Run("missing book", func(t *testing.T) {
		rec := doRequest(r, http.MethodDelete, "/books/99", authAdmin, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deletes", func(t *testing.T) {
		rec := doRequest(r, http.MethodDelete, "/books/1", authAdmin, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		_, err := books.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestBookReadEndpoints(t *testing.T) {
	r, books := setupBookRouter(t)
	ctx := context.Background()

	_, err := books.Add(ctx, book.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/books/id/1", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(r, http.MethodGet, "/books/id/99", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doRequest(r, http.MethodGet, "/books/id/dune", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("find by title and author", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/books/title/Dune", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"author":"Herbert"`)

		rec = doRequest(r, http.MethodGet, "/books/author/Herbert", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(r, http.MethodGet, "/books/title/Foundation", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})
}
