// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to use the Gluteny core via stdio
package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/gluteny/gluteny/internal/config"
	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/llm"
	"github.com/gluteny/gluteny/internal/mcp"
	"github.com/gluteny/gluteny/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Gluteny as an MCP (Model Context Protocol) server, exposing meal
logging, memory context, symptom insight, and date queries via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  gluteny mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "gluteny": {
  #       "command": "gluteny",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

// runMCP starts the MCP server.
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	session, err := core.NewSession(store)
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}

	var coach *llm.CoachClient
	if os.Getenv("OPENAI_API_KEY") == "" {
		if !quiet {
			log.Println("Warning: OPENAI_API_KEY not set - the ask_coach tool will only answer date queries")
		}
	} else {
		coach, err = llm.NewCoachClient(cfg.OpenAIKey, cfg.ChatModel, cfg.Timeout)
		if err != nil {
			return fmt.Errorf("initializing coach client: %w", err)
		}
	}

	server := mcpserver.NewMCPServer(
		"Gluteny Nutrition Coach",
		"1.0.0",
	)

	mcp.RegisterTools(server, session, coach)

	if !quiet {
		log.Println("Gluteny MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
