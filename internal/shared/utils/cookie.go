package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionTokenCookie = "portal_session"

// SetSessionCookie sets the portal session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, name, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", "", false, true)
}

// ClearSessionCookie removes the portal session cookie.
func ClearSessionCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}

// GetTokenFromCookie retrieves a token from the named cookie, empty when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
