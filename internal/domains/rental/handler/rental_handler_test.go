package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/rental"
	rentalsvc "library-backend/internal/domains/rental/service"
	"library-backend/internal/domains/user"
	usersvc "library-backend/internal/domains/user/service"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/stubs"
)

// authAlice is the Basic header for alice:pw1.
const authAlice = "Basic YWxpY2U6cHcx"

func setupRentalRouter(t *testing.T) (*gin.Engine, *stubs.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := stubs.NewMemoryStore()
	ctx := context.Background()

	users := usersvc.NewUserService(store.Users())
	_, err := users.Register(ctx, user.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = store.Books().Create(ctx, "Dune", "Herbert")
	require.NoError(t, err)

	h := NewRentalHandler(rentalsvc.NewRentalService(store.Rentals()))

	r := gin.New()
	rentals := r.Group("/rentals")
	rentals.GET("", h.List)
	authed := rentals.Group("", middleware.BasicAuth(users))
	authed.POST("/rent/:id", h.Rent)
	authed.POST("/return/:id", h.Return)
	return r, store
}

func doRequest(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRentEndpoint(t *testing.T) {
	r, store := setupRentalRouter(t)

	t.Run("requires authentication", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/1", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rents an available book", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/1", authAlice)
		assert.Equal(t, http.StatusCreated, rec.Code)

		b, err := store.Books().GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, b.Availability)
	})

	t.Run("second rent conflicts", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/1", authAlice)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing book", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/99", authAlice)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/dune", authAlice)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReturnEndpoint(t *testing.T) {
	r, store := setupRentalRouter(t)

	t.Run("requires authentication", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/return/1", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("nothing to return yet", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/return/1", authAlice)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns a rented book", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/1", authAlice)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doRequest(r, http.MethodPost, "/rentals/return/1", authAlice)
		assert.Equal(t, http.StatusOK, rec.Code)

		b, err := store.Books().GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, b.Availability)
	})

	t.Run("double return", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/return/1", authAlice)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListEndpoint(t *testing.T) {
	r, _ := setupRentalRouter(t)

	t.Run("public and empty", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/rentals", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("shows active rentals", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/rentals/rent/1", authAlice)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doRequest(r, http.MethodGet, "/rentals", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool            `json:"success"`
			Data    []rental.Rental `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 1)
		assert.Equal(t, int64(1), body.Data[0].BookID)
	})
}
