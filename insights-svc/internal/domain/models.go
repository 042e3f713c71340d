package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderWhatsApp = "order_whatsapp"
	EventOrderWaiter   = "order_waiter"
)

type OrderEventItem struct {
	DishID   string `json:"dish_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	IsAddon  bool   `json:"is_addon,omitempty"`
}

// OrderEvent is the message menu-svc publishes when an order leaves a
// guest's device.
type OrderEvent struct {
	Type      string           `json:"type"`
	Table     int              `json:"table"`
	Items     []OrderEventItem `json:"items"`
	Total     decimal.Decimal  `json:"total"`
	Timestamp time.Time        `json:"timestamp"`
}

// Known reports whether the event type is one insights counts.
func (e OrderEvent) Known() bool {
	return e.Type == EventOrderWhatsApp || e.Type == EventOrderWaiter
}

type DishPopularity struct {
	DishID   string `json:"dish_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ChannelCounts struct {
	Date     string         `json:"date"`
	Channels map[string]int `json:"channels"`
}
