package item

import "context"

// SearchFields lists the fields Search accepts.
var SearchFields = []string{"name", "category", "description"}

// Service is the single business-logic layer for items. Both the HTTP
// handlers and the MCP tools delegate here, so filtering and validation live
// in exactly one place.
type Service interface {
	// List returns items matching the filter. Category and availability
	// filters apply before Skip/Limit pagination.
	List(ctx context.Context, f Filter) ([]Item, error)

	// ListPaginated returns one page plus total and ceiling-divided page
	// count, with the same filter-before-pagination semantics.
	ListPaginated(ctx context.Context, page, size int, category string, availableOnly bool) (*Page, error)

	// Get returns the item or ErrItemNotFound.
	Get(ctx context.Context, id int) (*Item, error)

	// Create validates and inserts a new item.
	Create(ctx context.Context, req *CreateItemRequest) (*Item, error)

	// CreateBulk inserts the payloads sequentially; the whole batch is
	// validated before the first insert.
	CreateBulk(ctx context.Context, reqs []CreateItemRequest) ([]Item, error)

	// Update applies a partial patch. Validation happens before the store is
	// touched; ErrItemNotFound when the ID is absent.
	Update(ctx context.Context, id int, req *UpdateItemRequest) (*Item, error)

	// Delete removes the item and returns it, or ErrItemNotFound.
	Delete(ctx context.Context, id int) (*Item, error)

	// Search does a case-insensitive substring match on the given field
	// (name, category or description) across the full table.
	Search(ctx context.Context, query, field string) ([]Item, error)

	// SearchByCategory is an exact-match lookup over the full table.
	SearchByCategory(ctx context.Context, category string) ([]Item, error)

	// Stats aggregates over the entire table.
	Stats(ctx context.Context) (*Stats, error)
}
