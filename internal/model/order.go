package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a line item on an order. Items are denormalized snapshots of
// the product at purchase time.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image,omitempty"`
	SKU      string          `json:"sku,omitempty"`
	Category string          `json:"category,omitempty"`
	Weight   string          `json:"weight,omitempty"`
}

// TimelineEvent records one fulfillment step of an order.
type TimelineEvent struct {
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	Location  string    `json:"location,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// ShippingAddress is embedded on the order rather than referenced, so an
// order keeps the address it actually shipped to.
type ShippingAddress struct {
	Street       string `json:"street" gorm:"size:255"`
	Apartment    string `json:"apartment,omitempty" gorm:"size:100"`
	City         string `json:"city" gorm:"size:100"`
	State        string `json:"state" gorm:"size:100"`
	Zip          string `json:"zip" gorm:"size:20"`
	Country      string `json:"country" gorm:"size:100"`
	ContactName  string `json:"contactName,omitempty" gorm:"size:255"`
	ContactPhone string `json:"contactPhone,omitempty" gorm:"size:50"`
}

// Order is a customer order with its items and fulfillment timeline.
// Number is the human-facing sequential identifier ("ORD-042").
type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Number          string          `json:"number" gorm:"size:20;uniqueIndex;not null"`
	CustomerName    string          `json:"customerName" gorm:"size:255;not null"`
	CustomerEmail   string          `json:"customerEmail" gorm:"size:255;not null;index"`
	CustomerPhone   string          `json:"customerPhone" gorm:"size:50"`
	CustomerCompany string          `json:"customerCompany,omitempty" gorm:"size:255"`
	Status          string          `json:"status" gorm:"size:50;default:'pending';index"`
	PlacedAt        time.Time       `json:"placedAt" gorm:"index"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	Tax             decimal.Decimal `json:"tax" gorm:"type:decimal(12,2)"`
	Shipping        decimal.Decimal `json:"shipping" gorm:"type:decimal(12,2)"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:50"`
	ShippingMethod  string          `json:"shippingMethod,omitempty" gorm:"size:50"`
	TrackingNumber  string          `json:"trackingNumber,omitempty" gorm:"size:100"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	Items           []OrderItem     `json:"items" gorm:"serializer:json"`
	Timeline        []TimelineEvent `json:"timeline" gorm:"serializer:json"`
	Notes           string          `json:"notes,omitempty" gorm:"size:1000"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderSummary is the projection used by the orders list view.
type OrderSummary struct {
	Number   string          `json:"number"`
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
	Date     time.Time       `json:"date"`
	Items    int             `json:"items"`
	Products []string        `json:"products"`
}

// Summary projects the order into its list representation.
func (o *Order) Summary() OrderSummary {
	products := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		products = append(products, item.Name)
	}
	return OrderSummary{
		Number:   o.Number,
		Customer: o.CustomerName,
		Email:    o.CustomerEmail,
		Total:    o.Total,
		Status:   o.Status,
		Date:     o.PlacedAt,
		Items:    len(o.Items),
		Products: products,
	}
}
