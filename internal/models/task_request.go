package models

// TaskForm is the create and edit form for a task. Category 0 means none.
type TaskForm struct {
	Title       string   `form:"title" json:"title" binding:"required,max=255"`
	Description string   `form:"description" json:"description"`
	Completed   Checkbox `form:"completed" json:"completed"`
	DueDate     string   `form:"due_date" json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Category    uint     `form:"category" json:"category"`
}

// DueDateForm sets or, when empty, clears a task's due date.
type DueDateForm struct {
	DueDate string `form:"due_date" json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// TaskListQuery holds the listing filters from the query string.
type TaskListQuery struct {
	Status   string `form:"status"`
	Search   string `form:"q"`
	Sort     string `form:"sort"`
	Category string `form:"category"`
}

type CategoryForm struct {
	Name string `form:"name" json:"name" binding:"required,max=100"`
}
