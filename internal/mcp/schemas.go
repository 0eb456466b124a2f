// Package mcp exposes the item/user CRUD surface as Model Context Protocol
// tools and resources. Every tool returns a result struct with an explicit
// outcome flag and an error message; callers inspect those instead of
// catching failures.
package mcp

import (
	"starter-backend/internal/domains/item"
	"starter-backend/internal/domains/user"
)

// Tool names as announced to MCP clients.
const (
	ToolGetItems    = "get_items"
	ToolGetItemByID = "get_item_by_id"
	ToolCreateItem  = "create_item"
	ToolUpdateItem  = "update_item"
	ToolDeleteItem  = "delete_item"
	ToolSearchItems = "search_items"

	ToolGetUsers    = "get_users"
	ToolGetUserByID = "get_user_by_id"
	ToolCreateUser  = "create_user"
	ToolUpdateUser  = "update_user"
	ToolDeleteUser  = "delete_user"

	ToolGetDatabaseStats = "get_database_stats"
	ToolExportDatabase   = "export_database"
)

// Resource URIs.
const (
	ResourceItemsAll        = "items://all"
	ResourceItemsCategories = "items://categories"
	ResourceUsersAll        = "users://all"
	ResourceDatabaseStats   = "database://stats"
	ResourceAPIEndpoints    = "api://endpoints"
)

// DefaultToolLimit applies when a listing tool request leaves limit unset.
const DefaultToolLimit = 10

// GetItemsRequest defines the input schema for the get_items tool.
type GetItemsRequest struct {
	Skip          int    `json:"skip,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Category      string `json:"category,omitempty"`
	AvailableOnly bool   `json:"available_only,omitempty"`
}

// GetItemsResult carries the matching items plus the effective query.
type GetItemsResult struct {
	Items []item.Item `json:"items"`
	Count int         `json:"count"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
	Error string      `json:"error,omitempty"`
}

type GetItemByIDRequest struct {
	ItemID int `json:"item_id"`
}

type GetItemByIDResult struct {
	Item  *item.Item `json:"item"`
	Found bool       `json:"found"`
	Error string     `json:"error,omitempty"`
}

type CreateItemToolRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type CreateItemResult struct {
	Item    *item.Item `json:"item"`
	Created bool       `json:"created"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type UpdateItemToolRequest struct {
	ItemID      int       `json:"item_id"`
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	IsAvailable *bool     `json:"is_available,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

type UpdateItemResult struct {
	Item    *item.Item `json:"item"`
	Updated bool       `json:"updated"`
	Error   string     `json:"error,omitempty"`
}

type DeleteItemRequest struct {
	ItemID int `json:"item_id"`
}

type DeleteItemResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SearchItemsRequest struct {
	Query string `json:"query"`
	// SearchField selects the field to match: name, category or description.
	SearchField string `json:"search_field,omitempty"`
}

type SearchItemsResult struct {
	Items       []item.Item `json:"items"`
	Count       int         `json:"count"`
	Query       string      `json:"query"`
	SearchField string      `json:"search_field"`
	ValidFields []string    `json:"valid_fields,omitempty"`
	Error       string      `json:"error,omitempty"`
}

type GetUsersRequest struct {
	Skip       int  `json:"skip,omitempty"`
	Limit      int  `json:"limit,omitempty"`
	ActiveOnly bool `json:"active_only,omitempty"`
}

type GetUsersResult struct {
	Users []user.User `json:"users"`
	Count int         `json:"count"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
	Error string      `json:"error,omitempty"`
}

type GetUserByIDRequest struct {
	UserID int `json:"user_id"`
}

type GetUserByIDResult struct {
	User  *user.User `json:"user"`
	Found bool       `json:"found"`
	Error string     `json:"error,omitempty"`
}

type CreateUserToolRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
	Role     string `json:"role,omitempty"`
}

type CreateUserResult struct {
	User    *user.User `json:"user"`
	Created bool       `json:"created"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type UpdateUserToolRequest struct {
	UserID   int     `json:"user_id"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type UpdateUserResult struct {
	User    *user.User `json:"user"`
	Updated bool       `json:"updated"`
	Error   string     `json:"error,omitempty"`
}

type DeleteUserRequest struct {
	UserID int `json:"user_id"`
}

type DeleteUserResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type GetDatabaseStatsRequest struct{}

type GetDatabaseStatsResult struct {
	Items *item.Stats `json:"items"`
	Users *user.Stats `json:"users"`
	Error string      `json:"error,omitempty"`
}

type ExportDatabaseRequest struct{}

// ExportDatabaseResult wraps the store snapshot with a per-table record
// count summary.
type ExportDatabaseResult struct {
	Success      bool           `json:"success"`
	Data         string         `json:"data,omitempty"`
	RecordCounts map[string]int `json:"record_counts,omitempty"`
	Message      string         `json:"message,omitempty"`
	Error        string         `json:"error,omitempty"`
}
