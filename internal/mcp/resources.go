package mcp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/localrivet/gomcp/server"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/domains/user"
)

// registerResources attaches the read-only resources. The formatting lives in
// standalone functions so it can be tested without a running server.
func (s *ToolServer) registerResources(srv server.Server) server.Server {
	srv = srv.Resource(ResourceItemsAll, "Formatted overview of every item in the database",
		func(ctx *server.Context, args struct{}) (string, error) {
			items, err := s.items.List(serviceContext(), item.Filter{Limit: -1})
			if err != nil {
				return "", err
			}
			return FormatItemsOverview(items), nil
		})

	srv = srv.Resource(ResourceItemsCategories, "Per-category summary of items",
		func(ctx *server.Context, args struct{}) (string, error) {
			items, err := s.items.List(serviceContext(), item.Filter{Limit: -1})
			if err != nil {
				return "", err
			}
			return FormatCategoryBreakdown(items), nil
		})

	srv = srv.Resource(ResourceUsersAll, "Formatted overview of every user account",
		func(ctx *server.Context, args struct{}) (string, error) {
			users, err := s.users.List(serviceContext(), false, 0, -1)
			if err != nil {
				return "", err
			}
			return FormatUsersOverview(users), nil
		})

	srv = srv.Resource(ResourceDatabaseStats, "Combined statistics over all tables",
		func(ctx *server.Context, args struct{}) (string, error) {
			itemStats, err := s.items.Stats(serviceContext())
			if err != nil {
				return "", err
			}
			userStats, err := s.users.Stats(serviceContext())
			if err != nil {
				return "", err
			}
			return FormatDatabaseStats(itemStats, userStats), nil
		})

	srv = srv.Resource(ResourceAPIEndpoints, "Reference list of the REST API endpoints",
		func(ctx *server.Context, args struct{}) (string, error) {
			return EndpointsReference(), nil
		})

	return srv
}

// FormatItemsOverview renders all items as a text block for LLM context.
func FormatItemsOverview(items []item.Item) string {
	if len(items) == 0 {
		return "No items found in the database."
	}

	var (
		totalValue float64
		available  int
	)
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		totalValue += it.Price
		if it.IsAvailable {
			available++
		}

		tags := "None"
		if len(it.Tags) > 0 {
			tags = strings.Join(it.Tags, ", ")
		}

		blocks = append(blocks, strings.TrimSpace(fmt.Sprintf(`Item #%d: %s
- Price: $%.2f
- Category: %s
- Available: %s
- Description: %s
- Tags: %s
- Created: %s`,
			it.ID, it.Name,
			it.Price,
			orDefault(it.Category, "Uncategorized"),
			yesNo(it.IsAvailable),
			orDefault(it.Description, "No description"),
			tags,
			it.CreatedAt.Format(time.RFC3339),
		)))
	}

	var b strings.Builder
	b.WriteString("ITEMS DATABASE OVERVIEW\n")
	b.WriteString("======================\n")
	fmt.Fprintf(&b, "Total Items: %d\n", len(items))
	fmt.Fprintf(&b, "Available Items: %d\n", available)
	fmt.Fprintf(&b, "Total Value: $%.2f\n", totalValue)
	fmt.Fprintf(&b, "Last Updated: %s\n\n", items[len(items)-1].UpdatedAt.Format(time.RFC3339))
	b.WriteString("ITEM DETAILS:\n")
	b.WriteString("=============\n")
	b.WriteString(strings.Join(blocks, "\n"))
	return b.String()
}

// FormatCategoryBreakdown groups items by category and renders the summary.
func FormatCategoryBreakdown(items []item.Item) string {
	if len(items) == 0 {
		return "No items found in the database."
	}

	type bucket struct {
		count      int
		totalValue float64
		available  int
		names      []string
	}

	buckets := map[string]*bucket{}
	order := []string{}
	for _, it := range items {
		cat := orDefault(it.Category, "Uncategorized")
		bk, ok := buckets[cat]
		if !ok {
			bk = &bucket{}
			buckets[cat] = bk
			order = append(order, cat)
		}
		bk.count++
		bk.totalValue += it.Price
		if it.IsAvailable {
			bk.available++
		}
		bk.names = append(bk.names, it.Name)
	}

	blocks := make([]string, 0, len(order))
	for _, cat := range order {
		bk := buckets[cat]
		names := bk.names
		ellipsis := ""
		if len(names) > 5 {
			names = names[:5]
			ellipsis = "..."
		}
		blocks = append(blocks, strings.TrimSpace(fmt.Sprintf(`%s:
- Items: %d
- Available: %d
- Total Value: $%.2f
- Products: %s%s`,
			strings.ToUpper(cat), bk.count, bk.available, bk.totalValue,
			strings.Join(names, ", "), ellipsis,
		)))
	}

	var b strings.Builder
	b.WriteString("ITEM CATEGORIES SUMMARY\n")
	b.WriteString("======================\n")
	fmt.Fprintf(&b, "Total Categories: %d\n\n", len(buckets))
	b.WriteString("CATEGORY BREAKDOWN:\n")
	b.WriteString("==================\n")
	b.WriteString(strings.Join(blocks, "\n"))
	return b.String()
}

// FormatUsersOverview renders all user accounts as a text block.
func FormatUsersOverview(users []user.User) string {
	if len(users) == 0 {
		return "No users found in the database."
	}

	active := 0
	roles := map[string]int{}
	roleOrder := []string{}
	blocks := make([]string, 0, len(users))
	for _, u := range users {
		if u.IsActive {
			active++
		}
		if _, seen := roles[u.Role]; !seen {
			roleOrder = append(roleOrder, u.Role)
		}
		roles[u.Role]++

		blocks = append(blocks, strings.TrimSpace(fmt.Sprintf(`User #%d: %s
- Email: %s
- Full Name: %s
- Role: %s
- Status: %s
- Created: %s`,
			u.ID, u.Username,
			orDefault(u.Email, "No email"),
			orDefault(u.FullName, "No full name"),
			u.Role,
			activeStatus(u.IsActive),
			u.CreatedAt.Format(time.RFC3339),
		)))
	}

	roleParts := make([]string, 0, len(roleOrder))
	for _, role := range roleOrder {
		roleParts = append(roleParts, fmt.Sprintf("%s: %d", role, roles[role]))
	}

	var b strings.Builder
	b.WriteString("USERS DATABASE OVERVIEW\n")
	b.WriteString("======================\n")
	fmt.Fprintf(&b, "Total Users: %d\n", len(users))
	fmt.Fprintf(&b, "Active Users: %d\n", active)
	fmt.Fprintf(&b, "Role Distribution: %s\n\n", strings.Join(roleParts, ", "))
	b.WriteString("USER DETAILS:\n")
	b.WriteString("============\n")
	b.WriteString(strings.Join(blocks, "\n"))
	return b.String()
}

// FormatDatabaseStats renders the combined statistics block.
func FormatDatabaseStats(itemStats *item.Stats, userStats *user.Stats) string {
	var b strings.Builder
	b.WriteString("DATABASE STATISTICS\n")
	b.WriteString("==================\n\n")

	b.WriteString("ITEMS:\n")
	b.WriteString("------\n")
	fmt.Fprintf(&b, "Total Items: %d\n", itemStats.TotalItems)
	fmt.Fprintf(&b, "Available Items: %d\n", itemStats.AvailableItems)
	fmt.Fprintf(&b, "Unavailable Items: %d\n", itemStats.UnavailableItems)
	fmt.Fprintf(&b, "Total Value: $%.2f\n", itemStats.Pricing.TotalValue)
	fmt.Fprintf(&b, "Average Price: $%.2f\n\n", itemStats.Pricing.AveragePrice)
	b.WriteString("Categories:\n")
	b.WriteString(countLines(itemStats.Categories, "No categories"))

	b.WriteString("\nUSERS:\n")
	b.WriteString("------\n")
	fmt.Fprintf(&b, "Total Users: %d\n", userStats.TotalUsers)
	fmt.Fprintf(&b, "Active Users: %d\n", userStats.ActiveUsers)
	fmt.Fprintf(&b, "Inactive Users: %d\n\n", userStats.InactiveUsers)
	b.WriteString("Roles:\n")
	b.WriteString(countLines(userStats.Roles, "No roles"))

	b.WriteString("\nSYSTEM:\n")
	b.WriteString("------\n")
	b.WriteString("Database Type: In-Memory\n")
	b.WriteString("Tables: items, users\n")
	b.WriteString("Last Export: N/A (Live data)")
	return b.String()
}

// EndpointsReference returns a static reference of the REST surface.
func EndpointsReference() string {
	return strings.TrimSpace(`
API ENDPOINTS REFERENCE
======================

BASE URL: http://localhost:8080

HEALTH ENDPOINTS:
----------------
GET  /health           - Basic health check
GET  /health/simple    - Simple status
GET  /health/detailed  - Detailed system info

ITEM ENDPOINTS:
--------------
GET    /api/v1/items                    - Get all items (with pagination)
GET    /api/v1/items/paginated          - Get paginated items
GET    /api/v1/items/{id}               - Get specific item
POST   /api/v1/items                    - Create new item
PUT    /api/v1/items/{id}               - Update item
DELETE /api/v1/items/{id}               - Delete item
GET    /api/v1/items/search/by-category/{category} - Search by category
GET    /api/v1/items/search/by-name     - Search by name (query param)
POST   /api/v1/items/bulk               - Create multiple items
GET    /api/v1/items/stats/summary      - Item statistics

USER ENDPOINTS:
--------------
GET    /api/v1/users                    - Get all users
GET    /api/v1/users/{id}               - Get specific user
POST   /api/v1/users                    - Create new user
PUT    /api/v1/users/{id}               - Update user
DELETE /api/v1/users/{id}               - Delete user
GET    /api/v1/users/search/by-username/{username} - Find by username
GET    /api/v1/users/search/by-email/{email}       - Find by email
POST   /api/v1/users/{id}/activate      - Activate user
POST   /api/v1/users/{id}/deactivate    - Deactivate user
GET    /api/v1/users/stats/summary      - User statistics

MCP:
---
stdio - tools and resources served over standard input/output
`)
}

func countLines(counts map[string]int, empty string) string {
	if len(counts) == 0 {
		return "  - " + empty + "\n"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "  - %s: %d\n", k, counts[k])
	}
	return b.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func activeStatus(v bool) string {
	if v {
		return "Active"
	}
	return "Inactive"
}
