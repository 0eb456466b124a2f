package user

import "context"

// Service is the single business-logic layer for users, shared by the HTTP
// handlers and the MCP tools. Uniqueness checks live here, in front of every
// store write.
type Service interface {
	// List returns users with optional active-only filtering applied before
	// skip/limit pagination.
	List(ctx context.Context, activeOnly bool, skip, limit int) ([]User, error)

	// Get returns the user or ErrUserNotFound.
	Get(ctx context.Context, id int) (*User, error)

	// GetByUsername returns the first user with the given username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail returns the first user with the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create validates, checks username/email uniqueness against the full
	// table and inserts. Conflicts leave the table untouched.
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)

	// Update applies a partial patch. Uniqueness checks for username/email
	// exclude the record's own ID: keeping your own username is no conflict.
	Update(ctx context.Context, id int, req *UpdateUserRequest) (*User, error)

	// Delete removes the user and returns it, or ErrUserNotFound.
	Delete(ctx context.Context, id int) (*User, error)

	// Activate and Deactivate toggle IsActive via a partial update.
	Activate(ctx context.Context, id int) (*User, error)
	Deactivate(ctx context.Context, id int) (*User, error)

	// Stats aggregates over the entire table.
	Stats(ctx context.Context) (*Stats, error)
}
