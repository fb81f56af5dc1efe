package repository

import (
	"strings"

	"gorm.io/gorm"

	"taskly-be/internal/entities"
)

// TaskStatus narrows a task listing by completion and due date.
type TaskStatus string

const (
	StatusAll        TaskStatus = ""
	StatusCompleted  TaskStatus = "completed"
	StatusIncomplete TaskStatus = "incomplete"
	StatusOverdue    TaskStatus = "overdue"
	StatusUpcoming   TaskStatus = "upcoming"
	// StatusDueToday is used by the dashboard; it is not a listing filter.
	StatusDueToday TaskStatus = "due_today"
)

// ParseTaskStatus maps a listing filter value to a status. Unknown values
// apply no filter.
func ParseTaskStatus(s string) TaskStatus {
	switch status := TaskStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case StatusCompleted, StatusIncomplete, StatusOverdue, StatusUpcoming:
		return status
	default:
		return StatusAll
	}
}

// TaskSort selects the ordering of a task listing.
type TaskSort string

const (
	SortCreatedAsc  TaskSort = "created_asc"
	SortCreatedDesc TaskSort = "created_desc"
	SortDueAsc      TaskSort = "due_asc"
	SortDueDesc     TaskSort = "due_desc"
)

// ParseTaskSort maps a sort key, defaulting to creation order.
func ParseTaskSort(s string) TaskSort {
	switch sort := TaskSort(strings.ToLower(strings.TrimSpace(s))); sort {
	case SortCreatedDesc, SortDueAsc, SortDueDesc:
		return sort
	default:
		return SortCreatedAsc
	}
}

// TaskQuery describes a filtered, ordered listing of one user's tasks.
type TaskQuery struct {
	Status     TaskStatus
	Search     string // case-insensitive substring of the title
	CategoryID *uint
	Sort       TaskSort
	Today      entities.Date
}

func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func withStatus(status TaskStatus, today entities.Date) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch status {
		case StatusCompleted:
			return db.Where("completed = ?", true)
		case StatusIncomplete:
			return db.Where("completed = ?", false)
		case StatusOverdue:
			return db.Where("completed = ? AND due_date < ?", false, today)
		case StatusUpcoming:
			return db.Where("completed = ? AND due_date >= ?", false, today)
		case StatusDueToday:
			return db.Where("completed = ? AND due_date = ?", false, today)
		default:
			return db
		}
	}
}

func titleContains(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		return db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}
}

func inCategory(categoryID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if categoryID == nil {
			return db
		}
		return db.Where("category_id = ?", *categoryID)
	}
}

// sortedBy orders tasks; tasks without a due date sort last either way.
func sortedBy(sort TaskSort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch sort {
		case SortCreatedDesc:
			return db.Order("created_at DESC").Order("id DESC")
		case SortDueAsc:
			return db.Order("due_date IS NULL").Order("due_date ASC").Order("id ASC")
		case SortDueDesc:
			return db.Order("due_date IS NULL").Order("due_date DESC").Order("id DESC")
		default:
			return db.Order("created_at ASC").Order("id ASC")
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
