// Standalone MCP server: tools and resources over stdio against a fresh
// in-memory store. Logging goes to stderr so stdout stays protocol-only.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"starter-backend/internal/mcp"
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
	logger.InitWithOutput(env, os.Stderr)

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer appContainer.Cleanup()

	toolServer := mcp.NewToolServer(
		appContainer.Config.MCP.ServerName,
		appContainer.ItemService,
		appContainer.UserService,
		appContainer.DB,
	)
	if err := toolServer.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize MCP server")
	}

	if err := toolServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("MCP server exited with error")
	}
}
