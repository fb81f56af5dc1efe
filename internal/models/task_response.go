package models

import (
	"time"

	"taskly-be/internal/entities"
)

// TaskResponse is a task as shown in listings and detail views
type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	CompletedAt *time.Time        `json:"completed_at"`
	DueDate     *entities.Date    `json:"due_date"`
	Category    *CategoryResponse `json:"category"`
	Overdue     bool              `json:"overdue"`
	DueSoon     bool              `json:"due_soon"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewTaskResponse(t *entities.Task, today entities.Date) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		DueDate:     t.DueDate,
		Overdue:     t.IsOverdue(today),
		DueSoon:     t.IsDueSoon(today),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Category != nil {
		c := NewCategoryResponse(t.Category)
		resp.Category = &c
	}
	return resp
}

// TaskFilters echoes the listing filters back to the client.
type TaskFilters struct {
	Status   string `json:"status"`
	Search   string `json:"q"`
	Sort     string `json:"sort"`
	Category *uint  `json:"category"`
}

// TaskListResponse is the task list page
type TaskListResponse struct {
	Tasks      []TaskResponse     `json:"tasks"`
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
	Filters    TaskFilters        `json:"filters"`
	Today      entities.Date      `json:"today"`
	TodayPlus2 entities.Date      `json:"today_plus_2"`
	DarkMode   bool               `json:"dark_mode"`
}

// TaskFormResponse is what a create or edit page needs before submission.
type TaskFormResponse struct {
	Task       *TaskResponse      `json:"task,omitempty"`
	Categories []CategoryResponse `json:"categories"`
}

type TaskMessageResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

type CategoryResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	TaskCount int64  `json:"task_count"`
}

func NewCategoryResponse(c *entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, TaskCount: c.TaskCount}
}

func NewCategoryResponses(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewCategoryResponse(&categories[i])
	}
	return out
}

// DashboardStats are the aggregate counts on the dashboard
type DashboardStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
	DueToday  int64 `json:"due_today"`
}

type DashboardResponse struct {
	Stats    DashboardStats `json:"stats"`
	Today    entities.Date  `json:"today"`
	DarkMode bool           `json:"dark_mode"`
}
