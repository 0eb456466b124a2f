// Combined entry point: the REST API and the MCP server run in one process
// over one shared store, so changes made through either surface are visible
// to the other immediately.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"starter-backend/internal/mcp"
	"starter-backend/internal/shared/middleware"
	"starter-backend/pkg/container"
	"starter-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	// stdout carries the MCP protocol stream, so all logging goes to stderr.
	logger.InitWithOutput(env, os.Stderr)

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer appContainer.Cleanup()

	router := setupRouter(appContainer)
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", appContainer.Config.App.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start HTTP server")
		}
	}()

	toolServer := mcp.NewToolServer(
		appContainer.Config.MCP.ServerName,
		appContainer.ItemService,
		appContainer.UserService,
		appContainer.DB,
	)
	if err := toolServer.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize MCP server")
	}

	// Blocks until the MCP client closes stdin; then the HTTP side drains.
	if err := toolServer.Start(); err != nil {
		log.Error().Err(err).Msg("MCP server exited with error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
	log.Info().Msg("combined server exited")
}

func setupRouter(c *container.Container) *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": c.Config.App.Name})
	})

	v1 := router.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.GET("", c.ItemHandler.List)
			items.POST("", c.ItemHandler.Create)
			items.GET("/paginated", c.ItemHandler.ListPaginated)
			items.POST("/bulk", c.ItemHandler.CreateBulk)
			items.GET("/search/by-name", c.ItemHandler.SearchByName)
			items.GET("/search/by-category/:category", c.ItemHandler.SearchByCategory)
			items.GET("/stats/summary", c.ItemHandler.Stats)
			items.GET("/:id", c.ItemHandler.Get)
			items.PUT("/:id", c.ItemHandler.Update)
			items.DELETE("/:id", c.ItemHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", c.UserHandler.List)
			users.POST("", c.UserHandler.Create)
			users.GET("/search/by-username/:username", c.UserHandler.GetByUsername)
			users.GET("/search/by-email/:email", c.UserHandler.GetByEmail)
			users.GET("/stats/summary", c.UserHandler.Stats)
			users.GET("/:id", c.UserHandler.Get)
			users.PUT("/:id", c.UserHandler.Update)
			users.DELETE("/:id", c.UserHandler.Delete)
			users.POST("/:id/activate", c.UserHandler.Activate)
			users.POST("/:id/deactivate", c.UserHandler.Deactivate)
		}
	}

	return router
}
