package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	service.AuthService
	user *model.User
	err  error
}

func (s *stubAuthService) Authenticate(context.Context, string) (*model.User, error) {
	return s.user, s.err
}

func newTestRouter(auth service.AuthService, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("", Auth(auth))
	if adminOnly {
		g.Use(RequireAdmin())
	}
	g.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CurrentUser(c).Email})
	})
	return r
}

func TestAuthMissingBearer(t *testing.T) {
	r := newTestRouter(&stubAuthService{}, false)

	for _, header := range []string{"", "Basic abc", "bearer lowercase"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectedToken(t *testing.T) {
	r := newTestRouter(&stubAuthService{err: apierror.Unauthorized("Token expired")}, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token expired", body.Detail)
}

func TestAuthResolvesUser(t *testing.T) {
	r := newTestRouter(&stubAuthService{user: &model.User{Email: "staff@luxtrack.com", Role: model.RoleStaff}}, false)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@luxtrack.com")
}

func TestRequireAdmin(t *testing.T) {
	staff := newTestRouter(&stubAuthService{user: &model.User{Role: model.RoleStaff}}, true)
	admin := newTestRouter(&stubAuthService{user: &model.User{Role: model.RoleAdmin}}, true)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good")

	w := httptest.NewRecorder()
	staff.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var body apierror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Admin access required", body.Detail)

	w = httptest.NewRecorder()
	admin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
