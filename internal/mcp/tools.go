// ABOUTME: MCP tool definitions and registration for the Gluteny server
// ABOUTME: Exposes the core data-access and insight-query interface to LLM agents
package mcp

import (
	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/llm"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, session *core.Session, coach *llm.CoachClient) *Handlers {
	handlers := &Handlers{
		session: session,
		coach:   coach,
	}

	// 1. log_meal - Append one meal (and symptom) record
	server.AddTool(mcp.Tool{
		Name:        "log_meal",
		Description: "Log a meal for a user, optionally with symptoms and notes. Symptom entries correlate with meals by calendar date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
				"meal": map[string]interface{}{
					"type":        "string",
					"description": "Meal description, e.g. '2 rotis, paneer, salad'",
				},
				"meal_type": map[string]interface{}{
					"type":        "string",
					"description": "One of Breakfast, Lunch, Dinner, Snack",
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Calendar date YYYY-MM-DD (default: today)",
				},
				"symptoms": map[string]interface{}{
					"type":        "string",
					"description": "Comma-joined symptom labels (optional)",
				},
				"notes": map[string]interface{}{
					"type":        "string",
					"description": "Additional notes (optional)",
				},
			},
			Required: []string{"user", "meal", "meal_type"},
		},
	}, handlers.LogMeal)

	// 2. get_memory_context - Bounded context window for a user
	server.AddTool(mcp.Tool{
		Name:        "get_memory_context",
		Description: "Get the bounded memory context for a user: up to 5 recent meals plus the latest report summary lines.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
			},
			Required: []string{"user"},
		},
	}, handlers.GetMemoryContext)

	// 3. get_meal_symptom_insight - Symptom correlation advisory
	server.AddTool(mcp.Tool{
		Name:        "get_meal_symptom_insight",
		Description: "Get the symptom-to-meal correlation insight for a user. Always returns advisory text, never fails.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
			},
			Required: []string{"user"},
		},
	}, handlers.GetMealSymptomInsight)

	// 4. query_meals_by_date - Deterministic date answer path
	server.AddTool(mcp.Tool{
		Name:        "query_meals_by_date",
		Description: "Answer a 'what did I eat on X' question deterministically from the meal log. Returns no_date_found when the text has no parsable date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Free text possibly containing a date (ISO or '28 March')",
				},
			},
			Required: []string{"user", "text"},
		},
	}, handlers.QueryMealsByDate)

	// 5. ask_coach - LLM-backed coaching reply
	server.AddTool(mcp.Tool{
		Name:        "ask_coach",
		Description: "Ask the Gluteny coach a question. The reply is grounded in the user's profile, recent meals, and symptom insights.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
				"question": map[string]interface{}{
					"type":        "string",
					"description": "The user's question",
				},
			},
			Required: []string{"user", "question"},
		},
	}, handlers.AskCoach)

	// 6. manage_users - list, add, delete
	server.AddTool(mcp.Tool{
		Name:        "list_users",
		Description: "List all known users.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListUsers)

	server.AddTool(mcp.Tool{
		Name:        "add_user",
		Description: "Create or overwrite a user profile narrative.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
				"profile": map[string]interface{}{
					"type":        "string",
					"description": "Free-text profile narrative (height, weight, conditions, ...)",
				},
			},
			Required: []string{"user", "profile"},
		},
	}, handlers.AddUser)

	server.AddTool(mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user: removes the profile, chat history, and every meal and symptom record. Irreversible.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user": map[string]interface{}{
					"type":        "string",
					"description": "User name",
				},
			},
			Required: []string{"user"},
		},
	}, handlers.DeleteUser)

	// 7. append_report - report memory blob
	server.AddTool(mcp.Tool{
		Name:        "append_report",
		Description: "Append uploaded health-report text to the shared report memory.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Report text to remember",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.AppendReport)

	return handlers
}
