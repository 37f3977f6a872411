package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moodtrack/moodjournal/internal/domain/entity"
	"github.com/moodtrack/moodjournal/internal/domain/repository"
	"github.com/moodtrack/moodjournal/pkg/apperr"
	"github.com/moodtrack/moodjournal/pkg/helpers"
	"github.com/moodtrack/moodjournal/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "authUser"
)

// Auth extracts a bearer token from the Authorization header, verifies
// it, and resolves the embedded user id against the credential store.
// On success the sanitized user is attached to the request context; the
// middleware has no other side effects.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			reject(c, "not authorized, no token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			reject(c, "not authorized, no token")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			reject(c, "not authorized, token failed")
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			reject(c, "not authorized, user not found")
			return
		}

		c.Set(CtxUserKey, u.Sanitized())
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// UserFromContext returns the authenticated user attached by Auth.
func UserFromContext(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}

func reject(c *gin.Context, msg string) {
	response.Fail(c, http.StatusUnauthorized, msg, string(apperr.CodeUnauthorized), nil)
	c.Abort()
}
