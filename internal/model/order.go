package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Statuses is the fixed lifecycle sequence; cancelled is a terminal
// alternative reachable from any non-terminal status.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

func ValidStatus(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// PriorityFromTotal maps an order total to a notification priority.
// Thresholds: <500 low, <1500 normal, <3000 high, else urgent.
func PriorityFromTotal(total decimal.Decimal) string {
	switch {
	case total.LessThan(decimal.NewFromInt(500)):
		return PriorityLow
	case total.LessThan(decimal.NewFromInt(1500)):
		return PriorityNormal
	case total.LessThan(decimal.NewFromInt(3000)):
		return PriorityHigh
	default:
		return PriorityUrgent
	}
}

type Order struct {
	ID           int             `json:"id"`
	Code         string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone,omitempty"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Priority     string          `json:"priority"`
	Notes        string          `json:"notes,omitempty"`
	IsNew        bool            `json:"is_new"`
	AdminSeen    bool            `json:"admin_seen"`
	CreatedAt    time.Time       `json:"created_at"`
}

type OrderItemInput struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CheckoutInput struct {
	CustomerName string           `json:"customer_name"`
	Phone        string           `json:"phone"`
	CardNumber   string           `json:"card_number,omitempty"`
	Items        []OrderItemInput `json:"items"`
}

type StatusUpdateInput struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
