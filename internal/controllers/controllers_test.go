package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskly-be/internal/entities"
	"taskly-be/internal/jwt"
	"taskly-be/internal/logging"
	"taskly-be/internal/session"
	"taskly-be/internal/validation"
)

var testUser = &entities.User{ID: 1, Username: "ann", Email: "ann@example.com"}

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.Setup(); err != nil {
		panic(err)
	}
}

func newSessions() *session.Manager {
	return session.NewManager(
		jwt.NewJWTService("test-secret", time.Hour),
		nil,
		session.CookieOptions{Name: "sessionid"},
		logging.Discard(),
	)
}

// asUser stands in for the auth middleware.
func asUser(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Set(c, s, testUser)
		c.Next()
	}
}

func newSession() *session.Session {
	return &session.Session{ID: "sess-1", UserID: testUser.ID, ExpiresAt: time.Now().Add(time.Hour)}
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

type errorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}
