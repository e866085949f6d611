package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modportal/internal/infrastructure/auth"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

const SessionRoleKey = "session_role"

type SessionMiddleware struct {
	sessions   *auth.SessionService
	cookieName string
	logger     logger.Interface
}

func NewSessionMiddleware(sessions *auth.SessionService, cookieName string, logger logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireSession rejects requests without a valid portal session cookie.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, m.cookieName)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Warnw("rejected invalid session token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set(SessionRoleKey, claims.Role)
		c.Next()
	}
}
