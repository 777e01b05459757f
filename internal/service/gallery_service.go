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

// GalleryInput carries the writable fields of a gallery image.
type GalleryInput struct {
	URL      string
	Name     string
	PublicID string
}

// GalleryService manages the CDN-hosted media gallery records.
type GalleryService interface {
	Add(ctx context.Context, input GalleryInput) (*model.GalleryImage, error)
	Get(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	List(ctx context.Context) ([]model.GalleryImage, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*model.GalleryImage, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type galleryService struct {
	galleryRepo repository.GalleryRepository
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo repository.GalleryRepository) GalleryService {
	return &galleryService{galleryRepo: galleryRepo}
}

func (s *galleryService) Add(ctx context.Context, input GalleryInput) (*model.GalleryImage, error) {
	image := &model.GalleryImage{
		URL:      input.URL,
		Name:     input.Name,
		PublicID: input.PublicID,
	}
	if image.Name == "" {
		image.Name = "Untitled"
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("add gallery image: %w", err)
	}
	return image, nil
}

func (s *galleryService) Get(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return image, nil
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryImage, error) {
	return s.galleryRepo.List(ctx)
}

func (s *galleryService) Rename(ctx context.Context, id uuid.UUID, name string) (*model.GalleryImage, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	image.Name = name
	if err := s.galleryRepo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("rename gallery image: %w", err)
	}
	return image, nil
}

// Remove deletes the record only. Deleting the asset on the CDN is the
// client's job, using a signature from MediaSigner.
func (s *galleryService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.galleryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.galleryRepo.Delete(ctx, id)
}
