package mcp

import (
	"context"
	"errors"

	"github.com/localrivet/gomcp/server"
	"github.com/rs/zerolog/log"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/domains/user"
	"starter-backend/internal/store"
)

var (
	ErrServerNotInitialized = errors.New("mcp server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// ToolServer wires the shared services into an MCP server. Tool failures are
// reported inside the result payload so clients always get a well-formed
// response; the returned error is reserved for transport-level problems.
type ToolServer struct {
	name      string
	items     item.Service
	users     user.Service
	db        *store.Database
	mcpServer server.Server
}

// NewToolServer creates a ToolServer on top of the shared services.
func NewToolServer(name string, items item.Service, users user.Service, db *store.Database) *ToolServer {
	return &ToolServer{
		name:  name,
		items: items,
		users: users,
		db:    db,
	}
}

// Initialize registers all tools and resources. Must be called before Start.
func (s *ToolServer) Initialize() error {
	if s.items == nil || s.users == nil || s.db == nil {
		return ErrMissingDependencies
	}

	srv := server.NewServer(s.name)

	srv = srv.Tool(ToolGetItems, "List items with optional category and availability filters", s.handleGetItems)
	srv = srv.Tool(ToolGetItemByID, "Get a specific item by its ID", s.handleGetItemByID)
	srv = srv.Tool(ToolCreateItem, "Create a new item in the database", s.handleCreateItem)
	srv = srv.Tool(ToolUpdateItem, "Update fields of an existing item", s.handleUpdateItem)
	srv = srv.Tool(ToolDeleteItem, "Delete an item from the database", s.handleDeleteItem)
	srv = srv.Tool(ToolSearchItems, "Search items by name, category or description", s.handleSearchItems)

	srv = srv.Tool(ToolGetUsers, "List users with optional active-only filter", s.handleGetUsers)
	srv = srv.Tool(ToolGetUserByID, "Get a specific user by their ID", s.handleGetUserByID)
	srv = srv.Tool(ToolCreateUser, "Create a new user account", s.handleCreateUser)
	srv = srv.Tool(ToolUpdateUser, "Update fields of an existing user", s.handleUpdateUser)
	srv = srv.Tool(ToolDeleteUser, "Delete a user from the database", s.handleDeleteUser)

	srv = srv.Tool(ToolGetDatabaseStats, "Get statistics about all database tables", s.handleGetDatabaseStats)
	srv = srv.Tool(ToolExportDatabase, "Export the full database as a JSON snapshot", s.handleExportDatabase)

	srv = s.registerResources(srv)

	s.mcpServer = srv
	log.Info().Str("server", s.name).Int("tool_count", 13).Msg("MCP tool server initialized")
	return nil
}

// Start serves MCP over stdio until the client closes stdin.
func (s *ToolServer) Start() error {
	if s.mcpServer == nil {
		return ErrServerNotInitialized
	}

	log.Info().Str("server", s.name).Msg("starting MCP server on stdio")
	return s.mcpServer.AsStdio().Run()
}

// serviceContext is the context handed to the shared services from MCP
// handlers; the gomcp request context is not a context.Context.
func serviceContext() context.Context {
	return context.Background()
}

func (s *ToolServer) handleGetItems(ctx *server.Context, req GetItemsRequest) (GetItemsResult, error) {
	if req.Limit <= 0 {
		req.Limit = DefaultToolLimit
	}

	items, err := s.items.List(serviceContext(), item.Filter{
		Category:      req.Category,
		AvailableOnly: req.AvailableOnly,
		Skip:          req.Skip,
		Limit:         req.Limit,
	})
	if err != nil {
		return GetItemsResult{Items: []item.Item{}, Skip: req.Skip, Limit: req.Limit, Error: err.Error()}, nil
	}

	return GetItemsResult{
		Items: items,
		Count: len(items),
		Skip:  req.Skip,
		Limit: req.Limit,
	}, nil
}

func (s *ToolServer) handleGetItemByID(ctx *server.Context, req GetItemByIDRequest) (GetItemByIDResult, error) {
	it, err := s.items.Get(serviceContext(), req.ItemID)
	if err != nil {
		return GetItemByIDResult{Found: false, Error: err.Error()}, nil
	}
	return GetItemByIDResult{Item: it, Found: true}, nil
}

func (s *ToolServer) handleCreateItem(ctx *server.Context, req CreateItemToolRequest) (CreateItemResult, error) {
	created, err := s.items.Create(serviceContext(), &item.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
		Tags:        req.Tags,
	})
	if err != nil {
		return CreateItemResult{Created: false, Error: err.Error()}, nil
	}

	log.Info().Int("item_id", created.ID).Str("name", created.Name).Msg("item created via MCP")
	return CreateItemResult{
		Item:    created,
		Created: true,
		Message: "Item '" + created.Name + "' created successfully",
	}, nil
}

func (s *ToolServer) handleUpdateItem(ctx *server.Context, req UpdateItemToolRequest) (UpdateItemResult, error) {
	patch := item.UpdateItemRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
		Tags:        req.Tags,
	}
	if patch.IsEmpty() {
		return UpdateItemResult{Updated: false, Error: "no fields provided to update"}, nil
	}

	updated, err := s.items.Update(serviceContext(), req.ItemID, &patch)
	if err != nil {
		return UpdateItemResult{Updated: false, Error: err.Error()}, nil
	}
	return UpdateItemResult{Item: updated, Updated: true}, nil
}

func (s *ToolServer) handleDeleteItem(ctx *server.Context, req DeleteItemRequest) (DeleteItemResult, error) {
	deleted, err := s.items.Delete(serviceContext(), req.ItemID)
	if err != nil {
		return DeleteItemResult{Deleted: false, Error: err.Error()}, nil
	}

	log.Info().Int("item_id", req.ItemID).Msg("item deleted via MCP")
	return DeleteItemResult{
		Deleted: true,
		Message: "Item '" + deleted.Name + "' deleted successfully",
	}, nil
}

func (s *ToolServer) handleSearchItems(ctx *server.Context, req SearchItemsRequest) (SearchItemsResult, error) {
	field := req.SearchField
	if field == "" {
		field = "name"
	}

	items, err := s.items.Search(serviceContext(), req.Query, field)
	if err != nil {
		result := SearchItemsResult{
			Items:       []item.Item{},
			Query:       req.Query,
			SearchField: field,
			Error:       err.Error(),
		}
		if errors.Is(err, item.ErrInvalidSearchField) {
			result.ValidFields = item.SearchFields
		}
		return result, nil
	}

	return SearchItemsResult{
		Items:       items,
		Count:       len(items),
		Query:       req.Query,
		SearchField: field,
	}, nil
}

func (s *ToolServer) handleGetUsers(ctx *server.Context, req GetUsersRequest) (GetUsersResult, error) {
	if req.Limit <= 0 {
		req.Limit = DefaultToolLimit
	}

	users, err := s.users.List(serviceContext(), req.ActiveOnly, req.Skip, req.Limit)
	if err != nil {
		return GetUsersResult{Users: []user.User{}, Skip: req.Skip, Limit: req.Limit, Error: err.Error()}, nil
	}

	return GetUsersResult{
		Users: users,
		Count: len(users),
		Skip:  req.Skip,
		Limit: req.Limit,
	}, nil
}

func (s *ToolServer) handleGetUserByID(ctx *server.Context, req GetUserByIDRequest) (GetUserByIDResult, error) {
	u, err := s.users.Get(serviceContext(), req.UserID)
	if err != nil {
		return GetUserByIDResult{Found: false, Error: err.Error()}, nil
	}
	return GetUserByIDResult{User: u, Found: true}, nil
}

func (s *ToolServer) handleCreateUser(ctx *server.Context, req CreateUserToolRequest) (CreateUserResult, error) {
	created, err := s.users.Create(serviceContext(), &user.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
		Role:     req.Role,
	})
	if err != nil {
		return CreateUserResult{Created: false, Error: err.Error()}, nil
	}

	log.Info().Int("user_id", created.ID).Str("username", created.Username).Msg("user created via MCP")
	return CreateUserResult{
		User:    created,
		Created: true,
		Message: "User '" + created.Username + "' created successfully",
	}, nil
}

func (s *ToolServer) handleUpdateUser(ctx *server.Context, req UpdateUserToolRequest) (UpdateUserResult, error) {
	patch := user.UpdateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
		Role:     req.Role,
	}
	if patch.IsEmpty() {
		return UpdateUserResult{Updated: false, Error: "no fields provided to update"}, nil
	}

	updated, err := s.users.Update(serviceContext(), req.UserID, &patch)
	if err != nil {
		return UpdateUserResult{Updated: false, Error: err.Error()}, nil
	}
	return UpdateUserResult{User: updated, Updated: true}, nil
}

func (s *ToolServer) handleDeleteUser(ctx *server.Context, req DeleteUserRequest) (DeleteUserResult, error) {
	deleted, err := s.users.Delete(serviceContext(), req.UserID)
	if err != nil {
		return DeleteUserResult{Deleted: false, Error: err.Error()}, nil
	}

	log.Info().Int("user_id", req.UserID).Msg("user deleted via MCP")
	return DeleteUserResult{
		Deleted: true,
		Message: "User '" + deleted.Username + "' deleted successfully",
	}, nil
}

func (s *ToolServer) handleGetDatabaseStats(ctx *server.Context, req GetDatabaseStatsRequest) (GetDatabaseStatsResult, error) {
	itemStats, err := s.items.Stats(serviceContext())
	if err != nil {
		return GetDatabaseStatsResult{Error: err.Error()}, nil
	}

	userStats, err := s.users.Stats(serviceContext())
	if err != nil {
		return GetDatabaseStatsResult{Error: err.Error()}, nil
	}

	return GetDatabaseStatsResult{Items: itemStats, Users: userStats}, nil
}

func (s *ToolServer) handleExportDatabase(ctx *server.Context, req ExportDatabaseRequest) (ExportDatabaseResult, error) {
	data, err := s.db.Export()
	if err != nil {
		return ExportDatabaseResult{Success: false, Error: err.Error()}, nil
	}

	counts := s.db.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}

	log.Info().Int("total_records", total).Msg("database exported via MCP")
	return ExportDatabaseResult{
		Success:      true,
		Data:         string(data),
		RecordCounts: counts,
		Message:      "Database exported successfully",
	}, nil
}
