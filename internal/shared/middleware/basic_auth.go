package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
	"library-backend/internal/shared/response"
)

const currentUserKey = "currentUser"

// BasicAuth resolves the Basic credential to an account and stores it in
// the request context. The secret is digested during decoding; only the
// digest reaches the account manager.
func BasicAuth(users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds, err := auth.DecodeBasicHeader(c.GetHeader("Authorization"))
		if err != nil {
			response.Unauthorized(c, "missing or malformed credentials")
			c.Abort()
			return
		}

		u, err := users.Authenticate(c.Request.Context(), creds.Username, creds.PasswordDigest)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				response.Unauthorized(c, "wrong user credentials")
			} else {
				response.InternalServerError(c, "authentication failed")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// AdminOnly rejects authenticated callers without the admin flag. Must run
// after BasicAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok || !u.Admin {
			response.Forbidden(c, "user is not an admin")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the account BasicAuth stored for this request.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}
