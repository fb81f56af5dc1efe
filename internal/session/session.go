// Package session issues, loads and revokes the signed session a browser
// carries in its cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskly-be/internal/cache"
	"taskly-be/internal/entities"
	"taskly-be/internal/jwt"
)

var (
	ErrNoSession = errors.New("no session")
	ErrRevoked   = errors.New("session revoked")
)

const revokedKeyPrefix = "session:revoked:"

// Session is the per-browser state carried in the signed cookie.
type Session struct {
	ID        string
	UserID    uint
	Version   int
	DarkMode  bool
	ExpiresAt time.Time
	// Token is the signed form of the session, set by Start and Save.
	Token string
}

type CookieOptions struct {
	Name   string
	Secure bool
}

// Manager moves sessions between requests and responses. A nil revocation
// cache means logout only clears the cookie.
type Manager struct {
	tokens  *jwt.JWTService
	revoked cache.Cache
	cookie  CookieOptions
	logger  *log.Logger
}

func NewManager(tokens *jwt.JWTService, revoked cache.Cache, cookie CookieOptions, logger *log.Logger) *Manager {
	return &Manager{
		tokens:  tokens,
		revoked: revoked,
		cookie:  cookie,
		logger:  logger,
	}
}

// Start opens a fresh session for user and writes its cookie.
func (m *Manager) Start(c *gin.Context, user *entities.User, darkMode bool) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Version:   user.TokenVersion,
		DarkMode:  darkMode,
		ExpiresAt: time.Now().Add(m.tokens.TTL()),
	}
	if err := m.Save(c, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save re-signs the session with its current fields and writes the cookie.
// The session keeps its id and expiry.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	token, err := m.tokens.GenerateToken(&jwt.Claims{
		UserID:   s.UserID,
		Version:  s.Version,
		DarkMode: s.DarkMode,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        s.ID,
			ExpiresAt: gojwt.NewNumericDate(s.ExpiresAt),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}
	s.Token = token
	m.setCookie(c, token, int(time.Until(s.ExpiresAt).Seconds()))
	return nil
}

// Load reads the session from the cookie, or from an Authorization: Bearer
// header when there is no cookie.
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	token := m.tokenFromRequest(c)
	if token == "" {
		return nil, ErrNoSession
	}

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       claims.ID,
		UserID:   claims.UserID,
		Version:  claims.Version,
		DarkMode: claims.DarkMode,
		Token:    token,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}

	revoked, err := m.isRevoked(c.Request.Context(), s.ID)
	if err != nil {
		m.logger.Warn("session revocation check failed", "err", err)
	} else if revoked {
		return nil, ErrRevoked
	}
	return s, nil
}

// End revokes the session until it would have expired and clears the cookie.
func (m *Manager) End(c *gin.Context, s *Session) error {
	m.Clear(c)
	if s == nil || s.ID == "" {
		return nil
	}
	if m.revoked == nil {
		m.logger.Warn("no revocation store configured; session stays valid until expiry", "session", s.ID)
		return nil
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := m.revoked.Set(c.Request.Context(), revokedKeyPrefix+s.ID, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	m.setCookie(c, "", -1)
}

func (m *Manager) isRevoked(ctx context.Context, id string) (bool, error) {
	if m.revoked == nil || id == "" {
		return false, nil
	}
	return m.revoked.Exists(ctx, revokedKeyPrefix+id)
}

func (m *Manager) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookie.Name); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, value, maxAge, "/", "", m.cookie.Secure, true)
}
