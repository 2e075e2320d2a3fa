package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
	"github.com/blance-app/blance_backend/internal/middleware"
	"github.com/blance-app/blance_backend/internal/platform/config"
)

const refreshCookieName = "refresh_token"

// authHandler handles signup, login, Google code exchange and token rotation.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: as, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes. Logout is the
// one route in the group that requires a valid access token.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(services.AuthService, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", rateLimit, h.register)
		auth.POST("/login", rateLimit, h.login)
		auth.POST("/google", rateLimit, h.loginWithGoogle)
		auth.POST("/refresh", rateLimit, h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

func (h *authHandler) setRefreshCookie(c *gin.Context, token string) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	if token == "" {
		maxAge = -1
	}
	c.SetCookie(refreshCookieName, token, maxAge, "/api/v1/auth", "", h.cfg.IsProduction, true)
}

func (h *authHandler) respondAuth(c *gin.Context, status int, result *portssvc.AuthResult) {
	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(status, dto.AuthResponse{
		Token:     result.AccessToken,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.User.UserID,
	})
}

// register godoc
// @Summary Register a new user
// @Description Creates an account with email and password and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.SignupRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	h.respondAuth(c, http.StatusCreated, result)
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	h.respondAuth(c, http.StatusOK, result)
}

// loginWithGoogle godoc
// @Summary Login with Google
// @Description Exchanges a Google OAuth authorization code for a session,
// @Description creating the account on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) loginWithGoogle(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.authService.LoginWithGoogle(c.Request.Context(), req.Code, h.cfg.GoogleRedirectURL)
	if err != nil {
		respondError(c, err, "Failed to log in with Google")
		return
	}
	h.respondAuth(c, http.StatusOK, result)
}

// refresh godoc
// @Summary Rotate session tokens
// @Description Issues a new access token and refresh token pair. The current
// @Description refresh token is read from the HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Session owner"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.UserID, refreshToken)
	if err != nil {
		h.setRefreshCookie(c, "")
		respondError(c, err, "Failed to refresh session")
		return
	}
	h.respondAuth(c, http.StatusOK, result)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the caller's refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	h.setRefreshCookie(c, "")
	c.Status(http.StatusNoContent)
}
