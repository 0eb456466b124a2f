package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"starter-backend/internal/shared/middleware"
	"starter-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	// Unknown fields in request bodies are rejected, not silently dropped.
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", apiOverviewHandler(c))
	router.GET("/health", healthCheckHandler(c))
	router.GET("/health/simple", simpleHealthHandler())
	router.GET("/health/detailed", detailedHealthHandler(c))

	v1 := router.Group("/api/v1")
	{
		setupItemRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

func setupItemRoutes(v1 *gin.RouterGroup, c *container.Container) {
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
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
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

func apiOverviewHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"docs": gin.H{
				"health": "/health",
				"items":  "/api/v1/items",
				"users":  "/api/v1/users",
			},
		})
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func simpleHealthHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func detailedHealthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"database": gin.H{
				"type":   "in-memory",
				"tables": c.DB.Counts(),
			},
		})
	}
}
