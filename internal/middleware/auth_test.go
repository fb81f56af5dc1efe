package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"taskly-be/internal/entities"
	"taskly-be/internal/jwt"
	"taskly-be/internal/logging"
	"taskly-be/internal/mocks"
	"taskly-be/internal/repository"
	"taskly-be/internal/session"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *session.Manager, *mocks.MockUserRepository) {
	t.Helper()
	users := mocks.NewMockUserRepository(gomock.NewController(t))
	sessions := session.NewManager(
		jwt.NewJWTService("test-secret", time.Hour),
		nil,
		session.CookieOptions{Name: "sessionid"},
		logging.Discard(),
	)

	r := gin.New()
	r.Use(AuthMiddleware(sessions, users, logging.Discard()))
	r.GET("/", func(c *gin.Context) {
		user, _ := session.UserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r, sessions, users
}

// tokenFor issues a session token outside of any request.
func tokenFor(t *testing.T, sessions *session.Manager, user *entities.User) string {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	s, err := sessions.Start(c, user, false)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return s.Token
}

func request(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	ann := &entities.User{ID: 1, Username: "ann", TokenVersion: 2}

	tests := []struct {
		name        string
		sessionUser *entities.User
		token       string
		found       *entities.User
		findErr     error
		wantCode    int
	}{
		{name: "no session", wantCode: http.StatusUnauthorized},
		{name: "garbage token", token: "garbage", wantCode: http.StatusUnauthorized},
		{name: "valid", sessionUser: ann, found: ann, wantCode: http.StatusOK},
		{name: "user deleted", sessionUser: ann, findErr: repository.ErrNotFound, wantCode: http.StatusUnauthorized},
		{
			name:        "password changed since",
			sessionUser: &entities.User{ID: 1, TokenVersion: 1},
			found:       ann,
			wantCode:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sessions, users := newAuthRouter(t)
			token := tt.token
			if tt.sessionUser != nil {
				token = tokenFor(t, sessions, tt.sessionUser)
				users.EXPECT().FindByID(gomock.Any(), tt.sessionUser.ID).Return(tt.found, tt.findErr)
			}

			w := request(r, token)
			if w.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d: %s", w.Code, tt.wantCode, w.Body)
			}
		})
	}
}
