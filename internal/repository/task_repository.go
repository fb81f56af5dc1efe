package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskly-be/internal/entities"
)

//go:generate mockgen -source=task_repository.go -destination=../mocks/mock_task_repository.go -package=mocks

// TaskRepository handles owner-scoped CRUD and queries for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	FindByID(ctx context.Context, userID, id uint) (*entities.Task, error)
	List(ctx context.Context, userID uint, query TaskQuery) ([]entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, userID, id uint) error
	Count(ctx context.Context, userID uint, status TaskStatus, today entities.Date) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// updatableTaskColumns are written on every update so zero values (false, NULL) persist.
var updatableTaskColumns = []string{
	"category_id", "title", "description", "completed", "completed_at", "due_date", "updated_at",
}

func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, userID, id uint) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND id = ?", userID, id).
		First(&task).Error
	if err != nil {
		return nil, fmt.Errorf("find task: %w", translate(err))
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, userID uint, query TaskQuery) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.WithContext(ctx).
		Preload("Category").
		Scopes(
			ownedBy(userID),
			withStatus(query.Status, query.Today),
			titleContains(query.Search),
			inCategory(query.CategoryID),
			sortedBy(query.Sort),
		).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update writes the task back. The owner check is part of the WHERE clause,
// so a task belonging to someone else is reported as not found.
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Where("user_id = ?", task.UserID).
		Select(updatableTaskColumns).
		Updates(task)
	if result.Error != nil {
		return fmt.Errorf("update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&entities.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count uses the same status predicates as List.
func (r *taskRepository) Count(ctx context.Context, userID uint, status TaskStatus, today entities.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Task{}).
		Scopes(ownedBy(userID), withStatus(status, today)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}
