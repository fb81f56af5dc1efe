package controllers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/models"
	"taskly-be/internal/service"
	"taskly-be/internal/session"
)

// ProfileController serves the account pages: password change, account
// deletion and the theme switch.
type ProfileController struct {
	authService service.AuthService
	sessions    *session.Manager
	logger      *log.Logger
}

func NewProfileController(authService service.AuthService, sessions *session.Manager, logger *log.Logger) *ProfileController {
	return &ProfileController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Show handles GET /profile/
func (pc *ProfileController) Show(c *gin.Context) {
	c.JSON(http.StatusOK, models.ProfileResponse{
		User:     models.NewUserResponse(currentUser(c)),
		DarkMode: darkMode(c),
	})
}

// ChangePassword handles POST /profile/. Other sessions of the user stop
// working; this one is re-issued so the user stays logged in.
func (pc *ProfileController) ChangePassword(c *gin.Context) {
	user := currentUser(c)
	s, _ := session.FromContext(c)

	var req models.PasswordChangeRequest
	if !bind(c, &req) {
		return
	}

	updated, err := pc.authService.ChangePassword(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, pc.logger, err)
		return
	}

	s.Version = updated.TokenVersion
	if err := pc.sessions.Save(c, s); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully.",
		"token":   s.Token,
	})
}

// ConfirmDeleteAccount handles GET /delete-account/
func (pc *ProfileController) ConfirmDeleteAccount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": models.NewUserResponse(currentUser(c))})
}

// DeleteAccount handles POST /delete-account/
func (pc *ProfileController) DeleteAccount(c *gin.Context) {
	user := currentUser(c)
	s, _ := session.FromContext(c)

	if err := pc.authService.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		respondError(c, pc.logger, err)
		return
	}
	if err := pc.sessions.End(c, s); err != nil {
		pc.logger.Warn("failed to revoke session", "err", err)
	}

	pc.logger.Info("account deleted", "user", user.ID)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Your account has been deleted."})
}

// ToggleTheme handles POST /toggle-theme/
func (pc *ProfileController) ToggleTheme(c *gin.Context) {
	s, _ := session.FromContext(c)

	s.DarkMode = !s.DarkMode
	if err := pc.sessions.Save(c, s); err != nil {
		respondError(c, pc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ThemeResponse{DarkMode: s.DarkMode})
}
