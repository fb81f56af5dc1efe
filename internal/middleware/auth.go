package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/entities"
	"taskly-be/internal/repository"
	"taskly-be/internal/session"
)

// UserFinder loads the user a session belongs to.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entities.User, error)
}

// AuthMiddleware rejects requests without a valid session. A session whose
// user is gone, or whose token version predates a password change, is
// treated as logged out and its cookie is cleared.
func AuthMiddleware(sessions *session.Manager, users UserFinder, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sessions.Load(c)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				sessions.Clear(c)
			}
			unauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), s.UserID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			sessions.Clear(c)
			unauthorized(c)
			return
		case err != nil:
			logger.Error("failed to load session user", "user", s.UserID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if user.TokenVersion != s.Version {
			sessions.Clear(c)
			unauthorized(c)
			return
		}

		session.Set(c, s, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
}
