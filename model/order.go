package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderItem struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems is stored as a single jsonb column. Items never change after the
// order is created, so there is no relational payoff in normalizing them.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return errors.New("unsupported type for OrderItems")
	}
}

type Order struct {
	DTO
	OrderNumber    string     `gorm:"unique;size:30" json:"orderNumber"`
	TrackingId     string     `gorm:"unique;size:30" json:"trackingId"`
	CustomerName   string     `json:"customerName"`
	CustomerEmail  string     `json:"customerEmail"`
	CustomerPhone  string     `json:"customerPhone"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Pincode        string     `json:"pincode"`
	Items          OrderItems `gorm:"type:jsonb" json:"items"`
	Subtotal       float64    `json:"subtotal"`
	Shipping       float64    `json:"shipping"`
	Total          float64    `json:"total"`
	Status         string     `gorm:"default:pending" json:"status"`
	PaymentMethod  string     `gorm:"default:cod" json:"paymentMethod"`
	PaymentStatus  string     `gorm:"default:pending" json:"paymentStatus"`
	Notes          string     `json:"notes"`
	TrackingNumber string     `json:"trackingNumber"`
}

type CreateOrderInput struct {
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Pincode       string      `json:"pincode"`
	Items         []OrderItem `json:"items"`
	Shipping      float64     `json:"shipping"`
	PaymentMethod string      `json:"paymentMethod"`
	Notes         string      `json:"notes"`
}

// UpdateOrderInput carries the admin's partial update. Nil means "keep the
// stored value", so a field can also be set to its zero value explicitly.
type UpdateOrderInput struct {
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"paymentStatus"`
	TrackingNumber *string `json:"trackingNumber"`
	Notes          *string `json:"notes"`
}

type TrackOrderInput struct {
	OrderNumber string `json:"orderNumber"`
	Email       string `json:"email"`
}

// TrackedOrder is the redacted projection served to unauthenticated tracking
// requests. Notes, trackingId and the carrier trackingNumber stay internal.
type TrackedOrder struct {
	OrderNumber   string     `json:"orderNumber"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	Items         OrderItems `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Shipping      float64    `json:"shipping"`
	Total         float64    `json:"total"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Pincode       string     `json:"pincode"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
