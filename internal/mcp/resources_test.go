package mcp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/domains/user"
	"starter-backend/internal/store"
)

func sampleItems() []item.Item {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []item.Item{
		{
			Meta:        store.Meta{ID: 1, CreatedAt: now, UpdatedAt: now},
			Name:        "Laptop",
			Description: "Portable computer",
			Price:       999.99,
			Category:    "electronics",
			IsAvailable: true,
			Tags:        []string{"tech"},
		},
		{
			Meta:        store.Meta{ID: 2, CreatedAt: now, UpdatedAt: now},
			Name:        "Notebook",
			Price:       4.5,
			IsAvailable: false,
		},
	}
}

func TestFormatItemsOverview(t *testing.T) {
	out := FormatItemsOverview(sampleItems())

	assert.Contains(t, out, "ITEMS DATABASE OVERVIEW")
	assert.Contains(t, out, "Total Items: 2")
	assert.Contains(t, out, "Available Items: 1")
	assert.Contains(t, out, "Total Value: $1004.49")
	assert.Contains(t, out, "Item #1: Laptop")
	assert.Contains(t, out, "- Tags: tech")
	// Empty fields render their placeholders.
	assert.Contains(t, out, "- Category: Uncategorized")
	assert.Contains(t, out, "- Description: No description")
	assert.Contains(t, out, "- Tags: None")
}

func TestFormatItemsOverviewEmpty(t *testing.T) {
	assert.Equal(t, "No items found in the database.", FormatItemsOverview(nil))
}

func TestFormatCategoryBreakdown(t *testing.T) {
	out := FormatCategoryBreakdown(sampleItems())

	assert.Contains(t, out, "ITEM CATEGORIES SUMMARY")
	assert.Contains(t, out, "Total Categories: 2")
	assert.Contains(t, out, "ELECTRONICS:")
	assert.Contains(t, out, "UNCATEGORIZED:")
	assert.Contains(t, out, "- Products: Laptop")
}

func TestFormatCategoryBreakdownTruncatesProductList(t *testing.T) {
	items := make([]item.Item, 7)
	for i := range items {
		items[i] = item.Item{
			Meta:     store.Meta{ID: i + 1},
			Name:     "p",
			Price:    1,
			Category: "bulk",
		}
	}

	out := FormatCategoryBreakdown(items)
	assert.Contains(t, out, "p, p, p, p, p...")
}

func TestFormatUsersOverview(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	users := []user.User{
		{
			Meta:     store.Meta{ID: 1, CreatedAt: now, UpdatedAt: now},
			Username: "admin",
			Email:    "admin@example.com",
			FullName: "Admin User",
			IsActive: true,
			Role:     "admin",
		},
		{
			Meta:     store.Meta{ID: 2, CreatedAt: now, UpdatedAt: now},
			Username: "ghost",
			Email:    "ghost@example.com",
			IsActive: false,
			Role:     "user",
		},
	}

	out := FormatUsersOverview(users)
	assert.Contains(t, out, "USERS DATABASE OVERVIEW")
	assert.Contains(t, out, "Total Users: 2")
	assert.Contains(t, out, "Active Users: 1")
	assert.Contains(t, out, "Role Distribution: admin: 1, user: 1")
	assert.Contains(t, out, "User #1: admin")
	assert.Contains(t, out, "- Status: Inactive")
	assert.Contains(t, out, "- Full Name: No full name")
}

func TestFormatUsersOverviewEmpty(t *testing.T) {
	assert.Equal(t, "No users found in the database.", FormatUsersOverview(nil))
}

func TestFormatDatabaseStats(t *testing.T) {
	itemStats := &item.Stats{
		TotalItems:       3,
		AvailableItems:   2,
		UnavailableItems: 1,
		Categories:       map[string]int{"tools": 2, "books": 1},
		Pricing: item.PricingStats{
			TotalValue:   60,
			AveragePrice: 20,
			MinPrice:     10,
			MaxPrice:     30,
		},
	}
	userStats := &user.Stats{
		TotalUsers:  2,
		ActiveUsers: 2,
		Roles:       map[string]int{"admin": 1, "user": 1},
	}

	out := FormatDatabaseStats(itemStats, userStats)
	assert.Contains(t, out, "DATABASE STATISTICS")
	assert.Contains(t, out, "Total Items: 3")
	assert.Contains(t, out, "Average Price: $20.00")
	assert.Contains(t, out, "  - tools: 2")
	assert.Contains(t, out, "Total Users: 2")
	assert.Contains(t, out, "  - admin: 1")
	assert.Contains(t, out, "Database Type: In-Memory")
}

func TestFormatDatabaseStatsEmptyMaps(t *testing.T) {
	out := FormatDatabaseStats(&item.Stats{}, &user.Stats{})
	assert.Contains(t, out, "  - No categories")
	assert.Contains(t, out, "  - No roles")
}

func TestEndpointsReference(t *testing.T) {
	out := EndpointsReference()
	assert.Contains(t, out, "API ENDPOINTS REFERENCE")
	assert.Contains(t, out, "GET    /api/v1/items")
	assert.Contains(t, out, "POST   /api/v1/users")
	assert.Contains(t, out, "/api/v1/items/stats/summary")
}
