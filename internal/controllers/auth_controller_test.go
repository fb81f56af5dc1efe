package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"taskly-be/internal/entities"
	"taskly-be/internal/logging"
	"taskly-be/internal/mocks"
	"taskly-be/internal/models"
	"taskly-be/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockAuthService) {
	t.Helper()
	auth := mocks.NewMockAuthService(gomock.NewController(t))
	ac := NewAuthController(auth, newSessions(), logging.Discard())

	r := gin.New()
	r.GET("/register/", ac.RegisterForm)
	r.POST("/register/", ac.Register)
	r.GET("/login/", ac.LoginForm)
	r.POST("/login/", ac.Login)
	r.POST("/logout/", ac.Logout)
	return r, auth
}

func hasSessionCookie(w interface{ Result() *http.Response }, wantCleared bool) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name != "sessionid" {
			continue
		}
		if wantCleared {
			return c.MaxAge < 0
		}
		return c.Value != "" && c.HttpOnly
	}
	return false
}

func TestRegisterLogsIn(t *testing.T) {
	r, auth := newAuthRouter(t)

	auth.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
		Username: "ann", Email: "ann@example.com", Password1: "correct-horse", Password2: "correct-horse",
	}).Return(&entities.User{ID: 1, Username: "ann"}, nil)

	w := postForm(r, "/register/", url.Values{
		"username":  {"ann"},
		"email":     {"ann@example.com"},
		"password1": {"correct-horse"},
		"password2": {"correct-horse"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201: %s", w.Code, w.Body)
	}
	if !hasSessionCookie(w, false) {
		t.Error("register should set the session cookie")
	}

	var body models.AuthResponse
	decode(t, w, &body)
	if body.Message != "Account created and logged in." || body.User.Username != "ann" || body.Token == "" {
		t.Errorf("got %+v", body)
	}
}

func TestRegisterRejectsMismatch(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postForm(r, "/register/", url.Values{
		"username":  {"ann"},
		"email":     {"ann@example.com"},
		"password1": {"correct-horse"},
		"password2": {"wrong-horse"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
	var body errorBody
	decode(t, w, &body)
	if got := body.Fields["password2"]; len(got) != 1 || got[0] != "The two password fields didn't match." {
		t.Errorf("password2: got %v", got)
	}
}

func TestLogin(t *testing.T) {
	r, auth := newAuthRouter(t)

	auth.EXPECT().Authenticate(gomock.Any(), &models.LoginRequest{Username: "ann", Password: "correct-horse"}).
		Return(&entities.User{ID: 1, Username: "ann"}, nil)

	w := postForm(r, "/login/", url.Values{"username": {"ann"}, "password": {"correct-horse"}})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200: %s", w.Code, w.Body)
	}
	if !hasSessionCookie(w, false) {
		t.Error("login should set the session cookie")
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	r, auth := newAuthRouter(t)

	auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidCredentials)

	w := postForm(r, "/login/", url.Values{"username": {"ann"}, "password": {"nope"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
	var body errorBody
	decode(t, w, &body)
	if body.Error != "Invalid username or password." {
		t.Errorf("error: got %q", body.Error)
	}
	if hasSessionCookie(w, false) {
		t.Error("failed login must not set a session")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postForm(r, "/logout/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !hasSessionCookie(w, true) {
		t.Error("logout should clear the session cookie")
	}
}

func TestAuthForms(t *testing.T) {
	r, _ := newAuthRouter(t)
	for _, path := range []string{"/register/", "/login/"} {
		if w := get(r, path); w.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want 200", path, w.Code)
		}
	}
}
