package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name  string
	Color string
	Image string
}

// CategoryService manages product categories.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, input CategoryInput) (*model.Category, error) {
	category := &model.Category{
		Name:  input.Name,
		Color: input.Color,
		Image: input.Image,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	category.Name = input.Name
	category.Color = input.Color
	category.Image = input.Image

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
