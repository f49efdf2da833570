package handler

import (
	"log/slog"
	"net/http"
	"time"

	"booktracker/internal/http-api/dto"
	"booktracker/internal/http-api/middleware"
	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	sessions    service.SessionService
	sessionTTL  time.Duration
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, sessions service.SessionService, sessionTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/logout", h.Logout)
}

// Status is a read-only identity probe with no side effects.
func (h *AuthHandler) Status(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, dto.StatusResponse{LoggedIn: false})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{LoggedIn: true, Username: user.Username})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.RegisterResponse{Success: false, Message: "invalid request body"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if service.IsRegistrationError(err) {
			c.JSON(http.StatusBadRequest, dto.RegisterResponse{Success: false, Message: err.Error()})
			return
		}
		// opaque on purpose: the real error stays server-side
		h.logger.Error("registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.RegisterResponse{Success: false, Message: "internal error"})
		return
	}

	// a successful registration logs the user in immediately
	if err := h.establishSession(c, user); err != nil {
		h.logger.Error("failed to establish session after registration", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.RegisterResponse{Success: false, Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{Success: true})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// generic message regardless of which field was wrong
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	if err := h.establishSession(c, user); err != nil {
		h.logger.Error("failed to establish session", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Username: user.Username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.logger.Warn("failed to destroy session", "error", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) establishSession(c *gin.Context, user *models.User) error {
	token, err := h.sessions.Create(c.Request.Context(), user)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
