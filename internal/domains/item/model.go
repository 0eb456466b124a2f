package item

import (
	"starter-backend/internal/store"
)

// TableName is the record store table items live in.
const TableName = "items"

// Item is a product or service entry. ID and timestamps are managed by the
// store through the embedded Meta.
type Item struct {
	store.Meta
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	IsAvailable bool     `json:"is_available"`
	Tags        []string `json:"tags"`
}

// Filter narrows List results. Filters apply before pagination: Skip/Limit
// slice the already-filtered sequence.
type Filter struct {
	Category      string
	AvailableOnly bool
	Skip          int
	Limit         int
}

// Page is one page of items plus pagination bookkeeping.
type Page struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}

// Stats aggregates over the entire items table, never a filtered subset.
type Stats struct {
	TotalItems       int            `json:"total_items"`
	AvailableItems   int            `json:"available_items"`
	UnavailableItems int            `json:"unavailable_items"`
	Categories       map[string]int `json:"categories"`
	Pricing          PricingStats   `json:"pricing"`
}

// PricingStats summarizes item prices. AveragePrice is rounded to 2 decimals.
type PricingStats struct {
	TotalValue   float64 `json:"total_value"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}
