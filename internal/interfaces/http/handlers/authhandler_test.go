package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modportal/internal/infrastructure/auth"
	"modportal/internal/infrastructure/ratelimit"
	sharedauth "modportal/internal/shared/auth"
	"modportal/internal/shared/config"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionService("test-secret", 1)
	sessionCfg := &config.SessionConfig{
		JWTSecret:  "test-secret",
		ExpHours:   1,
		CookieName: "portal_session",
	}

	handler := NewAuthHandler(
		sharedauth.NewGuard("portal123"),
		sharedauth.NewGuard("admin123"),
		sessions,
		ratelimit.NewNoopRateLimiter(),
		ratelimit.Config{},
		sessionCfg,
	)
	return handler, sessions
}

func TestAuthHandler_Session(t *testing.T) {
	handler, sessions := newTestAuthHandler(t)

	tests := []struct {
		name      string
		role      auth.SessionRole
		wantAdmin bool
	}{
		{name: "admin session", role: auth.RoleAdmin, wantAdmin: true},
		{name: "operator session", role: auth.RoleOperator, wantAdmin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := sessions.Generate(tt.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/auth/session", nil)
			c.Request.AddCookie(&http.Cookie{Name: "portal_session", Value: token})

			handler.Session(c)

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Success bool            `json:"success"`
				Data    SessionResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, string(tt.role), resp.Data.Role)
			assert.Equal(t, tt.wantAdmin, resp.Data.IsAdmin)
		})
	}
}

func TestAuthHandler_Session_MissingCookie(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/session", nil)

	handler.Session(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Session_InvalidToken(t *testing.T) {
	handler, _ := newTestAuthHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	c.Request.AddCookie(&http.Cookie{Name: "portal_session", Value: "not-a-token"})

	handler.Session(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
