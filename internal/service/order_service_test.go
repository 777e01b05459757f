package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/model"
)

// MockOrderRepository mocks the order repository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, number string) (*model.Order, error) {
	args := m.Called(ctx, number)
	if order := args.Get(0); order != nil {
		return order.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomerEmail(ctx context.Context, email string) ([]model.Order, error) {
	args := m.Called(ctx, email)
	if orders := args.Get(0); orders != nil {
		return orders.([]model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) LastNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestOrderService_Create_NumberSequence(t *testing.T) {
	tests := []struct {
		name       string
		lastNumber string
		want       string
	}{
		{"first order", "", "ORD-001"},
		{"increments", "ORD-041", "ORD-042"},
		{"keeps padding", "ORD-009", "ORD-010"},
		{"grows past padding", "ORD-999", "ORD-1000"},
		{"unparseable resets", "garbage", "ORD-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockOrderRepository)
			repo.On("LastNumber", mock.Anything).Return(tt.lastNumber, nil)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

			svc := NewOrderService(repo)
			order, err := svc.Create(context.Background(), &model.Order{
				CustomerName:  "Jane",
				CustomerEmail: "jane@x.com",
				Total:         decimal.NewFromInt(10),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, order.Number)
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Create_SeedsTimeline(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("LastNumber", mock.Anything).Return("", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	svc := NewOrderService(repo)
	order, err := svc.Create(context.Background(), &model.Order{
		CustomerName:  "Jane",
		CustomerEmail: "jane@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.False(t, order.PlacedAt.IsZero())
	require.Len(t, order.Timeline, 1)
	assert.Equal(t, "pending", order.Timeline[0].Status)
	assert.True(t, order.Timeline[0].Completed)
}

func TestOrderService_UpdateStatus_AppendsTimelineEvent(t *testing.T) {
	id := uuid.New()
	existing := &model.Order{
		ID:     id,
		Number: "ORD-007",
		Status: "pending",
		Timeline: []model.TimelineEvent{
			{Status: "pending", Date: time.Now().Add(-time.Hour), Completed: true},
		},
	}

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	svc := NewOrderService(repo)
	order, err := svc.UpdateStatus(context.Background(), id, "shipped", "left the warehouse", "admin@x.com")

	require.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
	require.Len(t, order.Timeline, 2)
	last := order.Timeline[1]
	assert.Equal(t, "shipped", last.Status)
	assert.Equal(t, "left the warehouse", last.Notes)
	assert.Equal(t, "admin@x.com", last.UpdatedBy)
	assert.True(t, last.Completed)
}

func TestOrderService_Update_KeepsIdentity(t *testing.T) {
	id := uuid.New()
	created := time.Now().Add(-24 * time.Hour)
	existing := &model.Order{ID: id, Number: "ORD-007", CreatedAt: created, PlacedAt: created}

	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	svc := NewOrderService(repo)
	updated, err := svc.Update(context.Background(), id, &model.Order{
		Number:        "ORD-999",
		CustomerName:  "Renamed",
		CustomerEmail: "jane@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "ORD-007", updated.Number)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, "Renamed", updated.CustomerName)
}

func TestOrderService_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewOrderService(repo)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.UpdateStatus(context.Background(), id, "shipped", "", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_List_ProjectsSummaries(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("List", mock.Anything).Return([]model.Order{
		{
			Number:        "ORD-002",
			CustomerName:  "Jane",
			CustomerEmail: "jane@x.com",
			Status:        "shipped",
			Total:         decimal.NewFromFloat(49.90),
			Items: []model.OrderItem{
				{Name: "Mug", Price: decimal.NewFromFloat(24.95), Quantity: 2},
			},
		},
	}, nil)

	svc := NewOrderService(repo)
	summaries, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "ORD-002", summaries[0].Number)
	assert.Equal(t, 1, summaries[0].Items)
	assert.Equal(t, []string{"Mug"}, summaries[0].Products)
}
