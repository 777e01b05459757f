package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"shopadmin/internal/cache"
	"shopadmin/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = time.Minute
)

// chartCacheKey is per year so one year's series can never be served for
// another within the TTL.
func chartCacheKey(year int) string {
	return fmt.Sprintf("dashboard:chart:%d", year)
}

// DashboardStats are the headline numbers on the dashboard landing page.
type DashboardStats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	TotalProducts   int64           `json:"totalProducts"`
	ActiveCustomers int             `json:"activeCustomers"`
}

// ChartPoint is one month of the revenue chart series.
type ChartPoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardService computes dashboard aggregations, cached in redis for a
// short window so the landing page does not rescan orders on every visit.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	Chart(ctx context.Context, year int) ([]ChartPoint, error)
}

// dashboardCache is the slice of the cache wrapper the aggregations use,
// narrowed so tests can substitute an in-memory cache.
type dashboardCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type dashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cache       dashboardCache
}

// NewDashboardService creates a new dashboard aggregation service.
func NewDashboardService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cacheClient *cache.Client) DashboardService {
	return &dashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       cacheClient,
	}
}

// Stats sums revenue over all orders and counts orders, products and distinct
// customers. Served from cache when fresh.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if cached, _ := s.cache.Get(ctx, statsCacheKey); cached != nil {
		var stats DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	customers := make(map[string]struct{})
	for i := range orders {
		revenue = revenue.Add(orders[i].Total)
		customers[orders[i].CustomerEmail] = struct{}{}
	}

	stats := &DashboardStats{
		TotalRevenue:    revenue,
		TotalOrders:     len(orders),
		TotalProducts:   productCount,
		ActiveCustomers: len(customers),
	}

	if payload, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}

// Chart buckets order revenue by calendar month for the given year. Every
// month appears in the series even when it had no orders.
func (s *dashboardService) Chart(ctx context.Context, year int) ([]ChartPoint, error) {
	if cached, _ := s.cache.Get(ctx, chartCacheKey(year)); cached != nil {
		var points []ChartPoint
		if err := json.Unmarshal(cached, &points); err == nil && len(points) == 12 {
			return points, nil
		}
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	monthly := make([]decimal.Decimal, 12)
	for i := range monthly {
		monthly[i] = decimal.Zero
	}
	for i := range orders {
		placed := orders[i].PlacedAt
		if placed.Year() != year {
			continue
		}
		m := int(placed.Month()) - 1
		monthly[m] = monthly[m].Add(orders[i].Total)
	}

	points := make([]ChartPoint, 12)
	for i := 0; i < 12; i++ {
		points[i] = ChartPoint{
			Month:   time.Month(i + 1).String()[:3],
			Revenue: monthly[i],
		}
	}

	if payload, err := json.Marshal(points); err == nil {
		s.cache.Set(ctx, chartCacheKey(year), payload, statsCacheTTL)
	}
	return points, nil
}
