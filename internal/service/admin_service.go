package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

const bcryptCost = 10

// AdminInput carries the writable fields of an admin account. Password is
// plaintext on input and is hashed before it ever reaches the repository.
type AdminInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
	Status   string
}

// AdminList is a paginated page of admin accounts.
type AdminList struct {
	Admins     []model.AdminInfo `json:"admins"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"pages"`
}

// AdminService manages admin accounts.
type AdminService interface {
	Create(ctx context.Context, input AdminInput) (*model.AdminInfo, error)
	Get(ctx context.Context, id uuid.UUID) (*model.AdminInfo, error)
	List(ctx context.Context, page, limit int) (*AdminList, error)
	Update(ctx context.Context, id uuid.UUID, input AdminInput) (*model.AdminInfo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new admin management service.
func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

// Create registers a new admin with a hashed password. Email must be unique.
func (s *adminService) Create(ctx context.Context, input AdminInput) (*model.AdminInfo, error) {
	existing, err := s.adminRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrStoreUnavailable
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
		Status:       input.Status,
	}
	if admin.Role == "" {
		admin.Role = model.RoleSuperAdmin
	}
	if admin.Status == "" {
		admin.Status = model.StatusActive
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	info := admin.Info()
	return &info, nil
}

func (s *adminService) Get(ctx context.Context, id uuid.UUID) (*model.AdminInfo, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	info := admin.Info()
	return &info, nil
}

// List returns a page of admins ordered by creation time. Password hashes
// never appear in the projection.
func (s *adminService) List(ctx context.Context, page, limit int) (*AdminList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	admins, total, err := s.adminRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	infos := make([]model.AdminInfo, 0, len(admins))
	for i := range admins {
		infos = append(infos, admins[i].Info())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &AdminList{
		Admins:     infos,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies the non-empty fields of input. A new password is re-hashed;
// an empty one leaves the stored hash untouched.
func (s *adminService) Update(ctx context.Context, id uuid.UUID, input AdminInput) (*model.AdminInfo, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if input.Email != "" && input.Email != admin.Email {
		existing, err := s.adminRepo.FindByEmail(ctx, input.Email)
		if err == nil && existing != nil && existing.ID != admin.ID {
			return nil, apperrors.ErrEmailTaken
		}
		admin.Email = input.Email
	}
	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Role != "" {
		admin.Role = input.Role
	}
	if input.Status != "" {
		admin.Status = input.Status
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		admin.PasswordHash = string(hashed)
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}

	info := admin.Info()
	return &info, nil
}

func (s *adminService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.adminRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.adminRepo.Delete(ctx, id)
}
