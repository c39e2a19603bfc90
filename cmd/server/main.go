// ABOUTME: Main entry point for the Gluteny MCP server with stdio transport
// ABOUTME: Initializes config, store, session, and MCP server with all tools
package main

import (
	"log"

	"github.com/gluteny/gluteny/internal/config"
	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/llm"
	"github.com/gluteny/gluteny/internal/mcp"
	"github.com/gluteny/gluteny/internal/storage"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	session, err := core.NewSession(store)
	if err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}

	var coach *llm.CoachClient
	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - the ask_coach tool will only answer date queries")
	} else {
		coach, err = llm.NewCoachClient(cfg.OpenAIKey, cfg.ChatModel, cfg.Timeout)
		if err != nil {
			log.Fatalf("Failed to initialize coach client: %v", err)
		}
	}

	server := mcpserver.NewMCPServer(
		"Gluteny Nutrition Coach",
		"1.0.0",
	)

	mcp.RegisterTools(server, session, coach)

	log.Println("Starting Gluteny MCP server (stdio)")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
