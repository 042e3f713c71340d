package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Addon struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Dish struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	IsVeg       bool            `json:"is_veg"`
	Addons      []Addon         `json:"addons,omitempty"`
}

// Addon returns the add-on with the given id offered with this dish.
func (d Dish) Addon(id string) (Addon, bool) {
	for _, a := range d.Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

type Category struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Dishes []Dish `json:"dishes"`
}

// CartLine is one orderable item in a cart. Quantity is never persisted
// as zero: a line that drops to zero is removed.
type CartLine struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Note        string          `json:"note,omitempty"`
	IsVeg       bool            `json:"is_veg"`
	IsAddon     bool            `json:"is_addon,omitempty"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Identity ties a request to a device (persistent) and a browser session
// (ends with the browser).
type Identity struct {
	DeviceID  string
	SessionID string
}

type SessionView struct {
	State         string          `json:"state"`
	Table         *int            `json:"table,omitempty"`
	Lines         []CartLine      `json:"lines"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	OrderNote     string          `json:"order_note,omitempty"`
}

type WaiterConfirmation struct {
	Table        int             `json:"table"`
	Lines        []CartLine      `json:"lines"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderNote    string          `json:"order_note,omitempty"`
	OrderText    string          `json:"order_text"`
	ReviewPrompt bool            `json:"review_prompt"`
}

type OutboundLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

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

// OrderEvent is published whenever an order leaves the device, either as a
// WhatsApp message or shown to a waiter.
type OrderEvent struct {
	Type      string           `json:"type"`
	Table     int              `json:"table"`
	Items     []OrderEventItem `json:"items"`
	Total     decimal.Decimal  `json:"total"`
	Timestamp time.Time        `json:"timestamp"`
}
