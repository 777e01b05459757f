package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

const firstOrderNumber = "ORD-001"

// OrderService manages customer orders and their fulfillment timeline.
type OrderService interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.OrderSummary, error)
	Update(ctx context.Context, id uuid.UUID, order *model.Order) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, notes, updatedBy string) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// Create assigns the next sequential order number and an initial timeline
// event, then persists the order.
func (s *orderService) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	number, err := s.nextNumber(ctx)
	if err != nil {
		return nil, err
	}

	order.Number = number
	if order.PlacedAt.IsZero() {
		order.PlacedAt = time.Now()
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	if len(order.Timeline) == 0 {
		order.Timeline = []model.TimelineEvent{{
			Status:    order.Status,
			Date:      order.PlacedAt,
			Completed: true,
		}}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// List projects orders into the summary shape used by the list view.
func (s *orderService) List(ctx context.Context) ([]model.OrderSummary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return summaries, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, update *model.Order) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	// Identity and number are immutable; everything else follows the update.
	update.ID = order.ID
	update.Number = order.Number
	update.CreatedAt = order.CreatedAt
	if update.PlacedAt.IsZero() {
		update.PlacedAt = order.PlacedAt
	}

	if err := s.orderRepo.Update(ctx, update); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return update, nil
}

// UpdateStatus sets the order status and appends a timeline event.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status, notes, updatedBy string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	order.Status = status
	order.Timeline = append(order.Timeline, model.TimelineEvent{
		Status:    status,
		Date:      time.Now(),
		Completed: true,
		Notes:     notes,
		UpdatedBy: updatedBy,
	})

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// nextNumber produces the next order number in the ORD-NNN sequence. Padding
// keeps numbers sortable as strings up to 999, after which they grow a digit.
func (s *orderService) nextNumber(ctx context.Context) (string, error) {
	last, err := s.orderRepo.LastNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("last order number: %w", err)
	}
	if last == "" {
		return firstOrderNumber, nil
	}

	parts := strings.SplitN(last, "-", 2)
	if len(parts) != 2 {
		return firstOrderNumber, nil
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return firstOrderNumber, nil
	}
	return fmt.Sprintf("ORD-%03d", n+1), nil
}
