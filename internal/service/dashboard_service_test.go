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

	"shopadmin/internal/model"
)

// MockProductRepository mocks the product repository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// memoryCache is an in-process stand-in for the redis wrapper.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.entries[key], nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.entries[key] = value
	return nil
}

func dashboardOrders() []model.Order {
	return []model.Order{
		{
			CustomerEmail: "jane@x.com",
			Total:         decimal.NewFromFloat(100.50),
			PlacedAt:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			CustomerEmail: "jane@x.com",
			Total:         decimal.NewFromFloat(49.50),
			PlacedAt:      time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			CustomerEmail: "ali@x.com",
			Total:         decimal.NewFromInt(200),
			PlacedAt:      time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestDashboardService_Stats(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("List", mock.Anything).Return(dashboardOrders(), nil)
	productRepo := new(MockProductRepository)
	productRepo.On("Count", mock.Anything).Return(int64(7), nil)

	// A nil cache client degrades to recomputing every call.
	svc := NewDashboardService(orderRepo, productRepo, nil)
	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromFloat(350.00)), "got %s", stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, int64(7), stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveCustomers)
}

func TestDashboardService_Chart(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("List", mock.Anything).Return(dashboardOrders(), nil)
	productRepo := new(MockProductRepository)

	svc := NewDashboardService(orderRepo, productRepo, nil)
	points, err := svc.Chart(context.Background(), 2026)

	require.NoError(t, err)
	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Month)
	assert.Equal(t, "Dec", points[11].Month)

	// Only 2026 orders land in the buckets; the December 2025 one is excluded.
	assert.True(t, points[0].Revenue.Equal(decimal.NewFromFloat(100.50)))
	assert.True(t, points[2].Revenue.Equal(decimal.NewFromFloat(49.50)))
	assert.True(t, points[11].Revenue.IsZero())
	for _, i := range []int{1, 3, 4, 5, 6, 7, 8, 9, 10} {
		assert.True(t, points[i].Revenue.IsZero(), "month %d should be empty", i+1)
	}
}

func TestDashboardService_Chart_CachedPerYear(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("List", mock.Anything).Return(dashboardOrders(), nil)

	svc := &dashboardService{
		orderRepo:   orderRepo,
		productRepo: new(MockProductRepository),
		cache:       newMemoryCache(),
	}

	points2026, err := svc.Chart(context.Background(), 2026)
	require.NoError(t, err)
	require.True(t, points2026[0].Revenue.Equal(decimal.NewFromFloat(100.50)))

	// A different year within the TTL recomputes; it must not be served the
	// cached 2026 series.
	points2025, err := svc.Chart(context.Background(), 2025)
	require.NoError(t, err)
	assert.True(t, points2025[0].Revenue.IsZero())
	assert.True(t, points2025[11].Revenue.Equal(decimal.NewFromInt(200)))
	orderRepo.AssertNumberOfCalls(t, "List", 2)

	// The same year again is served from cache without a rescan.
	again, err := svc.Chart(context.Background(), 2026)
	require.NoError(t, err)
	assert.True(t, again[0].Revenue.Equal(decimal.NewFromFloat(100.50)))
	orderRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestDashboardService_Stats_CachedRead(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("List", mock.Anything).Return(dashboardOrders(), nil)
	productRepo := new(MockProductRepository)
	productRepo.On("Count", mock.Anything).Return(int64(7), nil)

	svc := &dashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       newMemoryCache(),
	}

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	second, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	orderRepo.AssertNumberOfCalls(t, "List", 1)
	productRepo.AssertNumberOfCalls(t, "Count", 1)
}
