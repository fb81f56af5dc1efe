package entities

import (
	"time"

	"gorm.io/gorm"
)

// Task represents a to-do item owned by a single user.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"-"`
	CategoryID  *uint      `gorm:"index" json:"category_id"` // nil when uncategorized
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title       string     `gorm:"size:255" json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	DueDate     *Date      `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeSave keeps CompletedAt in step with Completed on every insert and update.
func (t *Task) BeforeSave(tx *gorm.DB) error {
	t.SyncCompletedAt(time.Now())
	return nil
}

// SyncCompletedAt stamps CompletedAt the first time a task is seen completed
// and clears it once the task is reopened.
func (t *Task) SyncCompletedAt(now time.Time) {
	switch {
	case t.Completed && t.CompletedAt == nil:
		t.CompletedAt = &now
	case !t.Completed:
		t.CompletedAt = nil
	}
}

// IsOverdue reports whether the task is still open past its due date.
func (t *Task) IsOverdue(today Date) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(today)
}

// IsDueSoon reports whether an open task is due between today and two days from now.
func (t *Task) IsDueSoon(today Date) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return !t.DueDate.Before(today) && !t.DueDate.After(today.AddDays(2))
}
