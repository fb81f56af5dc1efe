package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskly-be/internal/entities"
)

//go:generate mockgen -source=category_repository.go -destination=../mocks/mock_category_repository.go -package=mocks

// CategoryRepository manages a user's task categories. Every lookup is owner-scoped.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	ListByUser(ctx context.Context, userID uint) ([]entities.Category, error)
	FindByID(ctx context.Context, userID, id uint) (*entities.Category, error)
	NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)
	Rename(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, userID, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

const categoryWithTaskCount = "categories.*, (SELECT COUNT(*) FROM tasks WHERE tasks.category_id = categories.id) AS task_count"

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", translate(err))
	}
	return nil
}

func (r *categoryRepository) ListByUser(ctx context.Context, userID uint) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.WithContext(ctx).
		Select(categoryWithTaskCount).
		Where("categories.user_id = ?", userID).
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, userID, id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).
		Select(categoryWithTaskCount).
		Where("categories.user_id = ? AND categories.id = ?", userID, id).
		First(&category).Error
	if err != nil {
		return nil, fmt.Errorf("find category: %w", translate(err))
	}
	return &category, nil
}

// NameTaken reports whether the user already has another category with this name.
func (r *categoryRepository) NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Rename(ctx context.Context, category *entities.Category) error {
	result := r.db.WithContext(ctx).Model(category).
		Where("user_id = ?", category.UserID).
		Update("name", category.Name)
	if result.Error != nil {
		return fmt.Errorf("rename category: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category. Tasks that referenced it are kept and become uncategorized.
func (r *categoryRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Task{}).
			Where("user_id = ? AND category_id = ?", userID, id).
			Update("category_id", nil).Error
		if err != nil {
			return fmt.Errorf("detach tasks: %w", err)
		}
		result := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&entities.Category{})
		if result.Error != nil {
			return fmt.Errorf("delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
