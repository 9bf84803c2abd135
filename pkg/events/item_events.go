package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Domain constants
const (
	ItemDomain   = "item"
	ItemExchange = "catalog.item"
)

// Event names
const (
	ItemCreatedEvent = "item.created"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

// ItemCreatedPayload represents the payload for item.created event
type ItemCreatedPayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
