package session

import (
	"github.com/gin-gonic/gin"

	"taskly-be/internal/entities"
)

const (
	sessionKey = "session"
	userKey    = "user"
)

// Set attaches the authenticated session and its user to the request.
func Set(c *gin.Context, s *Session, user *entities.User) {
	c.Set(sessionKey, s)
	c.Set(userKey, user)
}

func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}

func UserFromContext(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entities.User)
	return u, ok
}
