package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	usersvc "library-backend/internal/domains/user/service"
	"library-backend/internal/stubs"
)

func setupUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(usersvc.NewUserService(stubs.NewMemoryStore().Users()))

	r := gin.New()
	users := r.Group("/users")
	users.GET("", h.List)
	users.POST("/register", h.Register)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	r := setupUserRouter(t)
	payload := `{"username":"alice","password":"pw1"}`

	t.Run("registers and points at the new user", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/users/register", payload)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1/users/1", rec.Header().Get("Location"))

		// The password never appears in any form, digested or not.
		assert.NotContains(t, rec.Body.String(), "pw1")
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/users/register", payload)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/users/register", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		rec := doRequest(r, http.MethodPost, "/users/register", `{"username":"","password":"pw1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	r := setupUserRouter(t)

	rec := doRequest(r, http.MethodPost, "/users/register", `{"username":"alice","password":"pw1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(r, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password")
}
