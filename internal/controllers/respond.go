package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/entities"
	"taskly-be/internal/service"
	"taskly-be/internal/session"
	"taskly-be/internal/validation"
)

const invalidFormMessage = "Please correct the errors below."

// bind decodes the request body by content type and validates it. On
// failure it writes the 400 response and returns false.
func bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  invalidFormMessage,
				"fields": fields,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  invalidFormMessage,
			"fields": verr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentialsMessage})
	default:
		_ = c.Error(err)
		logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUser returns the user the auth middleware attached to the request.
func currentUser(c *gin.Context) *entities.User {
	user, ok := session.UserFromContext(c)
	if !ok {
		panic("controllers: handler mounted without AuthMiddleware")
	}
	return user
}

func darkMode(c *gin.Context) bool {
	s, ok := session.FromContext(c)
	return ok && s.DarkMode
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer is answered with 404, like an unknown id.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
