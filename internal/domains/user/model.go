package user

import (
	"starter-backend/internal/store"
)

// TableName is the record store table users live in.
const TableName = "users"

// DefaultRole is assigned when a create request carries no role.
const DefaultRole = "user"

// User is an account record. Uniqueness of Username and Email is enforced by
// the service before any insert or update; the store itself knows nothing
// about constraints beyond ID uniqueness.
type User struct {
	store.Meta
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
	Role     string `json:"role"`
}

// Stats aggregates over the entire users table. RecentUsers holds the five
// most recently inserted records.
type Stats struct {
	TotalUsers    int            `json:"total_users"`
	ActiveUsers   int            `json:"active_users"`
	InactiveUsers int            `json:"inactive_users"`
	Roles         map[string]int `json:"roles"`
	RecentUsers   []User         `json:"recent_users"`
}
