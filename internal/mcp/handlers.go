// ABOUTME: MCP tool handler implementations for the Gluteny server
// ABOUTME: Every core failure degrades to advisory text; nothing crashes the session
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/llm"
	"github.com/gluteny/gluteny/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	session *core.Session
	coach   *llm.CoachClient // nil when no API key is configured
}

// LogMeal handles the log_meal tool.
func (h *Handlers) LogMeal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	meal, err := request.RequireString("meal")
	if err != nil {
		return mcp.NewToolResultError("meal argument is required and must be a string"), nil
	}
	mealTypeArg, err := request.RequireString("meal_type")
	if err != nil {
		return mcp.NewToolResultError("meal_type argument is required and must be a string"), nil
	}
	mealType, err := models.ParseMealType(mealTypeArg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid meal_type: %v", err)), nil
	}

	now := time.Now()
	date := request.GetString("date", now.Format(models.DateLayout))

	rec := models.MealRecord{
		Timestamp: now,
		Date:      date,
		Name:      user,
		Meal:      strings.TrimSpace(meal),
		MealType:  mealType,
		Symptoms:  request.GetString("symptoms", ""),
		Notes:     strings.TrimSpace(request.GetString("notes", "")),
	}
	if err := h.session.LogMeal(rec); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to log meal: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Meal and symptoms logged for %s on %s", user, date)), nil
}

// GetMemoryContext handles the get_memory_context tool.
func (h *Handlers) GetMemoryContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	return mcp.NewToolResultText(h.session.MemoryContext(user)), nil
}

// GetMealSymptomInsight handles the get_meal_symptom_insight tool.
func (h *Handlers) GetMealSymptomInsight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	return mcp.NewToolResultText(h.session.InsightText(user)), nil
}

// QueryMealsByDate handles the query_meals_by_date tool.
func (h *Handlers) QueryMealsByDate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	answer, ok := h.session.ResolveDateQuery(user, text)
	if !ok {
		return mcp.NewToolResultText("no_date_found"), nil
	}
	return mcp.NewToolResultText(answer), nil
}

// AskCoach handles the ask_coach tool. Date-embedded questions are
// answered deterministically; everything else goes to the LLM with the
// assembled context. An upstream failure yields a one-shot advisory.
func (h *Handlers) AskCoach(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	if answer, ok := h.session.ResolveDateQuery(user, question); ok {
		h.recordTurn(user, question, answer)
		return mcp.NewToolResultText(answer), nil
	}

	if h.coach == nil {
		return mcp.NewToolResultError("no OpenAI API key configured; only date queries can be answered"), nil
	}

	answer, err := h.coach.Ask(ctx, h.session.CoachPrompt(user), question)
	if err != nil {
		return mcp.NewToolResultText(core.ChatFallbackAdvisory(err)), nil
	}

	h.recordTurn(user, question, answer)
	return mcp.NewToolResultText(answer), nil
}

// ListUsers handles the list_users tool.
func (h *Handlers) ListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	users := h.session.Users()
	if len(users) == 0 {
		return mcp.NewToolResultText("No users found."), nil
	}
	return mcp.NewToolResultText(strings.Join(users, "\n")), nil
}

// AddUser handles the add_user tool.
func (h *Handlers) AddUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}
	profile, err := request.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile argument is required and must be a string"), nil
	}

	if err := h.session.SaveUser(user, profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save user: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Profile saved for %s", user)), nil
}

// DeleteUser handles the delete_user tool.
func (h *Handlers) DeleteUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user, err := request.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user argument is required and must be a string"), nil
	}

	if err := h.session.DeleteUser(user); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete user: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s and all associated records", user)), nil
}

// AppendReport handles the append_report tool.
func (h *Handlers) AppendReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	if err := h.session.Store().AppendReport(text); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to append report: %v", err)), nil
	}
	return mcp.NewToolResultText("Report text added to memory"), nil
}

func (h *Handlers) recordTurn(user, question, answer string) {
	h.session.AppendHistory(user, models.NewChatMessage(models.RoleUser, question))
	h.session.AppendHistory(user, models.NewChatMessage(models.RoleCoach, answer))
}
