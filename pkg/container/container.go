// Package container wires the application dependencies in one place so the
// HTTP and MCP entry points share a single store and service layer.
package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"starter-backend/internal/config"
	"starter-backend/internal/domains/item"
	itemhandler "starter-backend/internal/domains/item/handler"
	itemservice "starter-backend/internal/domains/item/service"
	"starter-backend/internal/domains/user"
	userhandler "starter-backend/internal/domains/user/handler"
	userservice "starter-backend/internal/domains/user/service"
	"starter-backend/internal/store"
)

type Container struct {
	Config *config.Config

	// Store layer
	DB    *store.Database
	Items *store.Table[item.Item, *item.Item]
	Users *store.Table[user.User, *user.User]

	// Services
	ItemService item.Service
	UserService user.Service

	// HTTP handlers
	ItemHandler *itemhandler.ItemHandler
	UserHandler *userhandler.UserHandler
}

// NewContainer builds the dependency graph: config, store, tables, services,
// handlers, in that order. Seeding runs once here so both servers see the
// same starting data.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db := store.NewDatabase()
	items := store.TableOf[item.Item](db, item.TableName)
	users := store.TableOf[user.User](db, user.TableName)

	c := &Container{
		Config: cfg,
		DB:     db,
		Items:  items,
		Users:  users,
	}

	c.ItemService = itemservice.NewService(items)
	c.UserService = userservice.NewService(users)

	c.ItemHandler = itemhandler.NewItemHandler(c.ItemService)
	c.UserHandler = userhandler.NewUserHandler(c.UserService)

	if cfg.Seed.Enabled {
		c.seedSampleData()
	}

	log.Info().
		Str("app", cfg.App.Name).
		Bool("seeded", cfg.Seed.Enabled).
		Msg("container initialized")
	return c, nil
}

// seedSampleData loads the demo records so a fresh checkout has something to
// query immediately.
func (c *Container) seedSampleData() {
	sampleItems := []item.Item{
		{
			Name:        "Sample Product 1",
			Description: "This is a sample product for demonstration",
			Price:       29.99,
			Category:    "electronics",
			IsAvailable: true,
			Tags:        []string{"sample", "demo", "electronics"},
		},
		{
			Name:        "Sample Service 1",
			Description: "This is a sample service for demonstration",
			Price:       99.99,
			Category:    "services",
			IsAvailable: true,
			Tags:        []string{"sample", "demo", "services"},
		},
		{
			Name:        "Sample Product 2",
			Description: "Another sample product",
			Price:       49.99,
			Category:    "books",
			IsAvailable: false,
			Tags:        []string{"sample", "demo", "books"},
		},
	}
	for _, it := range sampleItems {
		c.Items.Insert(it)
	}

	sampleUsers := []user.User{
		{
			Username: "admin",
			Email:    "admin@example.com",
			FullName: "Admin User",
			IsActive: true,
			Role:     "admin",
		},
		{
			Username: "demo_user",
			Email:    "demo@example.com",
			FullName: "Demo User",
			IsActive: true,
			Role:     user.DefaultRole,
		},
	}
	for _, u := range sampleUsers {
		c.Users.Insert(u)
	}

	log.Debug().
		Int("items", c.Items.Count()).
		Int("users", c.Users.Count()).
		Msg("sample data seeded")
}

// Cleanup releases resources held by the container. The in-memory store has
// nothing to close; the hook exists so entry points shut down uniformly.
func (c *Container) Cleanup() {
	log.Info().Msg("container cleanup complete")
}
