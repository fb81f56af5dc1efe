package controllers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/models"
	"taskly-be/internal/service"
	"taskly-be/internal/session"
)

const invalidCredentialsMessage = "Invalid username or password."

type AuthController struct {
	authService service.AuthService
	sessions    *session.Manager
	logger      *log.Logger
}

func NewAuthController(authService service.AuthService, sessions *session.Manager, logger *log.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterForm handles GET /register/
func (ac *AuthController) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"username", "email", "password1", "password2"}})
}

// Register handles POST /register/. A new account is logged in straight away.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bind(c, &req) {
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	s, err := ac.sessions.Start(c, user, false)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	ac.logger.Info("user registered", "user", user.ID)
	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "Account created and logged in.",
		User:    models.NewUserResponse(user),
		Token:   s.Token,
	})
}

// LoginForm handles GET /login/
func (ac *AuthController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"username", "password"}})
}

// Login handles POST /login/
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bind(c, &req) {
		return
	}

	user, err := ac.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ac.logger.Warn("failed login", "username", req.Username, "ip", c.ClientIP())
		}
		respondError(c, ac.logger, err)
		return
	}

	s, err := ac.sessions.Start(c, user, false)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "Logged in successfully.",
		User:    models.NewUserResponse(user),
		Token:   s.Token,
	})
}

// Logout handles POST /logout/. It succeeds whether or not a session was present.
func (ac *AuthController) Logout(c *gin.Context) {
	s, _ := ac.sessions.Load(c)
	if err := ac.sessions.End(c, s); err != nil {
		ac.logger.Warn("failed to revoke session", "err", err)
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out."})
}
