package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopadmin/internal/model"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindByNumber(ctx context.Context, number string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]model.Order, error)
	LastNumber(ctx context.Context) (string, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Order("placed_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListByCustomerEmail(ctx context.Context, email string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("placed_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// LastNumber returns the highest assigned order number, or empty string when
// no orders exist. Numbers sort lexicographically because of zero padding.
func (r *orderRepository) LastNumber(ctx context.Context) (string, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Order("number DESC").First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return order.Number, nil
}
