package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"shopadmin/internal/model"
	"shopadmin/internal/repository"
)

// Customer is a derived view: there is no customers table, every row is
// aggregated from the orders a customer email appears on.
type Customer struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Orders       int             `json:"orders"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	LastOrder    string          `json:"lastOrder"`
	OrderNumbers []string        `json:"orderNumbers"`
}

// CustomerService aggregates customers out of the order history.
type CustomerService interface {
	List(ctx context.Context) ([]Customer, error)
	OrdersFor(ctx context.Context, email string) ([]model.OrderSummary, error)
}

type customerService struct {
	orderRepo repository.OrderRepository
}

// NewCustomerService creates a new customer aggregation service.
func NewCustomerService(orderRepo repository.OrderRepository) CustomerService {
	return &customerService{orderRepo: orderRepo}
}

// List groups all orders by customer email and folds order count, spend and
// last order date per customer. Output is sorted by email for stability.
func (s *customerService) List(ctx context.Context) ([]Customer, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]*Customer)
	lastOrderAt := make(map[string]int64)

	for i := range orders {
		order := &orders[i]
		email := order.CustomerEmail

		customer, ok := byEmail[email]
		if !ok {
			customer = &Customer{
				ID:         customerID(email),
				Name:       order.CustomerName,
				Email:      email,
				Phone:      order.CustomerPhone,
				TotalSpent: decimal.Zero,
			}
			byEmail[email] = customer
		}

		customer.Orders++
		customer.TotalSpent = customer.TotalSpent.Add(order.Total)
		customer.OrderNumbers = append(customer.OrderNumbers, order.Number)

		if ts := order.PlacedAt.Unix(); ts >= lastOrderAt[email] {
			lastOrderAt[email] = ts
			customer.LastOrder = order.PlacedAt.Format("2006-01-02")
		}
	}

	customers := make([]Customer, 0, len(byEmail))
	for _, customer := range byEmail {
		customers = append(customers, *customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Email < customers[j].Email
	})
	return customers, nil
}

// OrdersFor returns the order summaries belonging to one customer email.
func (s *customerService) OrdersFor(ctx context.Context, email string) ([]model.OrderSummary, error) {
	orders, err := s.orderRepo.ListByCustomerEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return summaries, nil
}

// customerID derives a stable display identifier from the email local part.
func customerID(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
