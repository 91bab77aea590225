package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification is a transient, locally generated record describing one
// newly detected order. It lives only for the admin session.
type Notification struct {
	ID        string    `json:"id"`
	OrderKey  string    `json:"order_key"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Toast is a short-lived UI message; it drops out of the visible list
// after its TTL but does not affect unread counting.
type Toast struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	Priority  string          `json:"priority"`
	CreatedAt time.Time       `json:"created_at"`
}
