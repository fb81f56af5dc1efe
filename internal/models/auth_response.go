package models

import (
	"time"

	"taskly-be/internal/entities"
)

// UserResponse is the public view of an account
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned after register and login. Token is the same
// value as the session cookie, for clients that send a Bearer header.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse is the profile page
type ProfileResponse struct {
	User     UserResponse `json:"user"`
	DarkMode bool         `json:"dark_mode"`
}

type ThemeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
