package entities

import "time"

// User represents an account in the database
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	TokenVersion int       `json:"-"` // Bumped on password change to invalidate older sessions
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
