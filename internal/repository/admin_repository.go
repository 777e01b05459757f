package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopadmin/internal/model"
)

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	Update(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	List(ctx context.Context, offset, limit int) ([]model.Admin, int64, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) Update(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Admin{}, "id = ?", id).Error
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context, offset, limit int) ([]model.Admin, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []model.Admin
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

// UpdateLastLogin touches only the last-login column so concurrent profile
// updates are not clobbered.
func (r *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}
