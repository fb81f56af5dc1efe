package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

//go:generate mockgen -source=category_service.go -destination=../mocks/mock_category_service.go -package=mocks

// CategoryService manages the categories a user files tasks under.
type CategoryService interface {
	List(ctx context.Context, userID uint) ([]entities.Category, error)
	Get(ctx context.Context, userID, id uint) (*entities.Category, error)
	Create(ctx context.Context, userID uint, form *models.CategoryForm) (*entities.Category, error)
	Rename(ctx context.Context, userID, id uint, form *models.CategoryForm) (*entities.Category, error)
	Delete(ctx context.Context, userID, id uint) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

const duplicateCategoryMessage = "You already have a category with this name."

func (s *categoryService) List(ctx context.Context, userID uint) ([]entities.Category, error) {
	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, userID, id uint) (*entities.Category, error) {
	return s.categories.FindByID(ctx, userID, id)
}

func (s *categoryService) Create(ctx context.Context, userID uint, form *models.CategoryForm) (*entities.Category, error) {
	name, err := s.checkName(ctx, userID, form.Name, 0)
	if err != nil {
		return nil, err
	}

	category := &entities.Category{UserID: userID, Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fieldError("name", duplicateCategoryMessage)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, userID, id uint, form *models.CategoryForm) (*entities.Category, error) {
	category, err := s.categories.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	name, err := s.checkName(ctx, userID, form.Name, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Rename(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fieldError("name", duplicateCategoryMessage)
		case errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}
	return category, nil
}

// Delete removes the category; its tasks stay and lose their category.
func (s *categoryService) Delete(ctx context.Context, userID, id uint) error {
	return s.categories.Delete(ctx, userID, id)
}

func (s *categoryService) checkName(ctx context.Context, userID uint, raw string, excludeID uint) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fieldError("name", "This field is required.")
	}
	taken, err := s.categories.NameTaken(ctx, userID, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return "", fieldError("name", duplicateCategoryMessage)
	}
	return name, nil
}
