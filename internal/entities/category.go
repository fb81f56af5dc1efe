package entities

import "time"

// Category groups a user's tasks. Names are only visible to their owner.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	TaskCount int64     `gorm:"->" json:"task_count"` // read-only, filled by list queries
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
