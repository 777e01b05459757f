package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Categories    []string
	Stock         int
	FrontImage    string
	BackImage     string
	GalleryImages []string
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Categories:    input.Categories,
		Stock:         input.Stock,
		FrontImage:    input.FrontImage,
		BackImage:     input.BackImage,
		GalleryImages: input.GalleryImages,
	}
	if product.Categories == nil {
		product.Categories = []string{}
	}
	if product.GalleryImages == nil {
		product.GalleryImages = []string{}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.FrontImage = input.FrontImage
	product.BackImage = input.BackImage
	if input.Categories != nil {
		product.Categories = input.Categories
	}
	if input.GalleryImages != nil {
		product.GalleryImages = input.GalleryImages
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
