package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modportal/internal/infrastructure/auth"
	"modportal/internal/infrastructure/ratelimit"
	sharedauth "modportal/internal/shared/auth"
	"modportal/internal/shared/config"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

type LoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type LoginResponse struct {
	Role string `json:"role"`
}

// AuthHandler issues the portal session cookie. The portal secret grants an
// operator session; the admin secret grants an admin one. Destructive
// operations re-check the admin secret regardless of session role.
type AuthHandler struct {
	portalGuard *sharedauth.Guard
	adminGuard  *sharedauth.Guard
	sessions    *auth.SessionService
	limiter     ratelimit.RateLimiter
	limits      ratelimit.Config
	session     *config.SessionConfig
	logger      logger.Interface
}

func NewAuthHandler(
	portalGuard *sharedauth.Guard,
	adminGuard *sharedauth.Guard,
	sessions *auth.SessionService,
	limiter ratelimit.RateLimiter,
	limits ratelimit.Config,
	session *config.SessionConfig,
) *AuthHandler {
	return &AuthHandler{
		portalGuard: portalGuard,
		adminGuard:  adminGuard,
		sessions:    sessions,
		limiter:     limiter,
		limits:      limits,
		session:     session,
		logger:      logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	allowed, err := h.limiter.Allow("login:"+c.ClientIP(), h.limits)
	if err != nil {
		// A broken limiter backend must not lock everyone out.
		h.logger.Warnw("login rate limiter unavailable", "error", err)
	} else if !allowed {
		utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "secret is required")
		return
	}

	role := auth.RoleOperator
	if err := h.portalGuard.Authorize(req.Secret); err != nil {
		if err := h.adminGuard.Authorize(req.Secret); err != nil {
			h.logger.Warnw("rejected login", "ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid secret")
			return
		}
		role = auth.RoleAdmin
	}

	token, err := h.sessions.Generate(role)
	if err != nil {
		h.logger.Errorw("failed to issue session token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	utils.SetSessionCookie(c, h.session.CookieName, token, h.session.ExpHours*3600)
	utils.SuccessResponse(c, http.StatusOK, "logged in", LoginResponse{Role: string(role)})
}

// SessionResponse describes the current session for GET /auth/session. The
// frontend uses it to decide whether the admin navigation is shown.
type SessionResponse struct {
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, h.session.CookieName)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
		return
	}

	claims, err := h.sessions.Verify(token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session active", SessionResponse{
		Role:    string(claims.Role),
		IsAdmin: claims.IsAdmin(),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.session.CookieName)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}
