package middleware

import (
	"net/http"
	"strings"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// Auth validates the Bearer access token on every protected route and
// resolves it to the calling user, so downstream handlers always see a user
// that still exists in the store.
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				&apierror.Response{Detail: "Not authenticated", Kind: apierror.KindUnauthorized})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			status, resp := apierror.Resolve(err)
			c.AbortWithStatusJSON(status, resp)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers whose role is not admin. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				&apierror.Response{Detail: "Admin access required", Kind: apierror.KindForbidden})
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the Gin context.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
