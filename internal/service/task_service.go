package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

//go:generate mockgen -source=task_service.go -destination=../mocks/mock_task_service.go -package=mocks

// TaskService defines the task business logic. Every call is scoped to the
// acting user.
type TaskService interface {
	List(ctx context.Context, userID uint, query *models.TaskListQuery) ([]entities.Task, error)
	Get(ctx context.Context, userID, id uint) (*entities.Task, error)
	Create(ctx context.Context, userID uint, form *models.TaskForm) (*entities.Task, error)
	Update(ctx context.Context, userID, id uint, form *models.TaskForm) (*entities.Task, error)
	Delete(ctx context.Context, userID, id uint) error
	ToggleComplete(ctx context.Context, userID, id uint) (*entities.Task, error)
	SetDueDate(ctx context.Context, userID, id uint, dueDate string) (*entities.Task, error)
	Stats(ctx context.Context, userID uint) (*models.DashboardStats, error)
	Today() entities.Date
}

type taskService struct {
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
	clock      Clock
}

// NewTaskService creates a new task service
func NewTaskService(tasks repository.TaskRepository, categories repository.CategoryRepository, clock Clock) TaskService {
	return &taskService{
		tasks:      tasks,
		categories: categories,
		clock:      clock,
	}
}

func (s *taskService) Today() entities.Date {
	return s.clock.today()
}

// List returns the user's tasks matching the listing filters. Unknown status
// and sort values fall back to no filter and creation order; a category
// value that is not a number is ignored.
func (s *taskService) List(ctx context.Context, userID uint, query *models.TaskListQuery) ([]entities.Task, error) {
	q := repository.TaskQuery{
		Status: repository.ParseTaskStatus(query.Status),
		Search: strings.TrimSpace(query.Search),
		Sort:   repository.ParseTaskSort(query.Sort),
		Today:  s.Today(),
	}
	if id, err := strconv.ParseUint(strings.TrimSpace(query.Category), 10, 64); err == nil {
		categoryID := uint(id)
		q.CategoryID = &categoryID
	}

	tasks, err := s.tasks.List(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, userID, id uint) (*entities.Task, error) {
	return s.tasks.FindByID(ctx, userID, id)
}

func (s *taskService) Create(ctx context.Context, userID uint, form *models.TaskForm) (*entities.Task, error) {
	task := &entities.Task{UserID: userID}
	if err := s.apply(ctx, task, form); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return s.tasks.FindByID(ctx, userID, task.ID)
}

func (s *taskService) Update(ctx context.Context, userID, id uint, form *models.TaskForm) (*entities.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, task, form); err != nil {
		return nil, err
	}
	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	return s.tasks.FindByID(ctx, userID, id)
}

func (s *taskService) Delete(ctx context.Context, userID, id uint) error {
	return s.tasks.Delete(ctx, userID, id)
}

// ToggleComplete flips the completion flag; the entity hook keeps
// completed_at in step.
func (s *taskService) ToggleComplete(ctx context.Context, userID, id uint) (*entities.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SetDueDate sets the due date from a YYYY-MM-DD string. An empty string
// clears it.
func (s *taskService) SetDueDate(ctx context.Context, userID, id uint, dueDate string) (*entities.Task, error) {
	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.DueDate = due
	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Stats counts the user's tasks using the same predicates as the listing filters.
func (s *taskService) Stats(ctx context.Context, userID uint) (*models.DashboardStats, error) {
	today := s.Today()
	counts := make(map[repository.TaskStatus]int64, 5)
	for _, status := range []repository.TaskStatus{
		repository.StatusAll,
		repository.StatusCompleted,
		repository.StatusIncomplete,
		repository.StatusOverdue,
		repository.StatusDueToday,
	} {
		n, err := s.tasks.Count(ctx, userID, status, today)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats: %w", err)
		}
		counts[status] = n
	}

	return &models.DashboardStats{
		Total:     counts[repository.StatusAll],
		Completed: counts[repository.StatusCompleted],
		Pending:   counts[repository.StatusIncomplete],
		Overdue:   counts[repository.StatusOverdue],
		DueToday:  counts[repository.StatusDueToday],
	}, nil
}

// apply copies a validated form onto task. The category must belong to the
// task's owner.
func (s *taskService) apply(ctx context.Context, task *entities.Task, form *models.TaskForm) error {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return fieldError("title", "This field is required.")
	}
	due, err := parseDueDate(form.DueDate)
	if err != nil {
		return err
	}

	task.Category = nil
	task.CategoryID = nil
	if form.Category != 0 {
		category, err := s.categories.FindByID(ctx, task.UserID, form.Category)
		if errors.Is(err, repository.ErrNotFound) {
			return fieldError("category", "Select a valid choice. That choice is not one of the available choices.")
		}
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		task.CategoryID = &category.ID
	}

	task.Title = title
	task.Description = form.Description
	task.Completed = bool(form.Completed)
	task.DueDate = due
	return nil
}

// save writes the task's own columns. The loaded category is detached for
// the write so it is never upserted along with the task.
func (s *taskService) save(ctx context.Context, task *entities.Task) error {
	category := task.Category
	task.Category = nil
	err := s.tasks.Update(ctx, task)
	task.Category = category
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func parseDueDate(raw string) (*entities.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := entities.ParseDate(raw)
	if err != nil {
		return nil, fieldError("due_date", "Enter a valid date.")
	}
	return &d, nil
}
