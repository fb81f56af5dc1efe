package controllers

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/service"
)

type TaskController struct {
	taskService     service.TaskService
	categoryService service.CategoryService
	logger          *log.Logger
}

func NewTaskController(taskService service.TaskService, categoryService service.CategoryService, logger *log.Logger) *TaskController {
	return &TaskController{
		taskService:     taskService,
		categoryService: categoryService,
		logger:          logger,
	}
}

// List handles GET /
func (tc *TaskController) List(c *gin.Context) {
	user := currentUser(c)

	var query models.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, tc.logger, err)
		return
	}

	tasks, err := tc.taskService.List(c.Request.Context(), user.ID, &query)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}
	categories, err := tc.categoryService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	today := tc.taskService.Today()
	resp := models.TaskListResponse{
		Tasks:      make([]models.TaskResponse, len(tasks)),
		Count:      len(tasks),
		Categories: models.NewCategoryResponses(categories),
		Filters: models.TaskFilters{
			Status: query.Status,
			Search: query.Search,
			Sort:   query.Sort,
		},
		Today:      today,
		TodayPlus2: today.AddDays(2),
		DarkMode:   darkMode(c),
	}
	for i := range tasks {
		resp.Tasks[i] = models.NewTaskResponse(&tasks[i], today)
	}
	if id, err := strconv.ParseUint(query.Category, 10, 64); err == nil {
		categoryID := uint(id)
		resp.Filters.Category = &categoryID
	}

	c.JSON(http.StatusOK, resp)
}

// CreateForm handles GET /create/
func (tc *TaskController) CreateForm(c *gin.Context) {
	tc.renderForm(c, nil)
}

// Create handles POST /create/
func (tc *TaskController) Create(c *gin.Context) {
	user := currentUser(c)

	var form models.TaskForm
	if !bind(c, &form) {
		return
	}

	task, err := tc.taskService.Create(c.Request.Context(), user.ID, &form)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, models.TaskMessageResponse{
		Message: "Task created successfully.",
		Task:    models.NewTaskResponse(task, tc.taskService.Today()),
	})
}

// EditForm handles GET /update/:id/
func (tc *TaskController) EditForm(c *gin.Context) {
	task, ok := tc.load(c)
	if !ok {
		return
	}
	tc.renderForm(c, task)
}

// Update handles POST /update/:id/
func (tc *TaskController) Update(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form models.TaskForm
	if !bind(c, &form) {
		return
	}

	task, err := tc.taskService.Update(c.Request.Context(), user.ID, id, &form)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.TaskMessageResponse{
		Message: "Task updated successfully.",
		Task:    models.NewTaskResponse(task, tc.taskService.Today()),
	})
}

// ConfirmDelete handles GET /delete/:id/
func (tc *TaskController) ConfirmDelete(c *gin.Context) {
	task, ok := tc.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": models.NewTaskResponse(task, tc.taskService.Today())})
}

// Delete handles POST /delete/:id/
func (tc *TaskController) Delete(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := tc.taskService.Delete(c.Request.Context(), user.ID, id); err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Task deleted successfully."})
}

// ToggleComplete handles POST /toggle/:id/
func (tc *TaskController) ToggleComplete(c *gin.Context) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := tc.taskService.ToggleComplete(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(task, tc.taskService.Today()))
}

// UpdateDueDate handles POST /update-due-date/:id/
func (tc *TaskController) UpdateDueDate(c *gin.Context) {
	var form models.DueDateForm
	if !bind(c, &form) {
		return
	}
	tc.setDueDate(c, form.DueDate)
}

// ClearDueDate handles POST /task/:id/clear-due-date/
func (tc *TaskController) ClearDueDate(c *gin.Context) {
	tc.setDueDate(c, "")
}

func (tc *TaskController) setDueDate(c *gin.Context, dueDate string) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := tc.taskService.SetDueDate(c.Request.Context(), user.ID, id, dueDate)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(task, tc.taskService.Today()))
}

func (tc *TaskController) load(c *gin.Context) (*entities.Task, bool) {
	user := currentUser(c)
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	task, err := tc.taskService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, tc.logger, err)
		return nil, false
	}
	return task, true
}

// renderForm answers the GET side of create and edit with the category
// choices and, when editing, the current task.
func (tc *TaskController) renderForm(c *gin.Context, task *entities.Task) {
	user := currentUser(c)
	categories, err := tc.categoryService.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, tc.logger, err)
		return
	}

	resp := models.TaskFormResponse{Categories: models.NewCategoryResponses(categories)}
	if task != nil {
		tr := models.NewTaskResponse(task, tc.taskService.Today())
		resp.Task = &tr
	}
	c.JSON(http.StatusOK, resp)
}
