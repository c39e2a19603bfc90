// ABOUTME: CLI command to ask the coach a question
// ABOUTME: Date queries resolve deterministically; everything else goes to the LLM
package commands

import (
	"fmt"

	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/llm"
	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [user] [question]",
		Short: "Ask Gluteny a question",
		Long: `Ask the coach a question.

Questions containing a date ("what did I eat on 28 March") are answered
directly from the meal log. Everything else goes to the LLM with the
user's profile, recent meals, and symptom insight as context.

Examples:
  gluteny ask "Ankita" "what did i eat on 2025-03-28"
  gluteny ask "Ankita" "why do I feel bloated after breakfast?"`,
		Args: cobra.ExactArgs(2),
		RunE: runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}
	user, question := args[0], args[1]
	if err := requireUser(session, user); err != nil {
		return err
	}

	// Deterministic path first: a resolvable date never hits the LLM.
	if answer, ok := session.ResolveDateQuery(user, question); ok {
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	}

	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set; only date queries can be answered offline")
	}

	coach, err := llm.NewCoachClient(cfg.OpenAIKey, cfg.ChatModel, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("initializing coach client: %w", err)
	}

	answer, err := coach.Ask(cmd.Context(), session.CoachPrompt(user), question)
	if err != nil {
		// One-shot advisory; no retry, conversation state unaffected.
		fmt.Fprintln(cmd.OutOrStdout(), core.ChatFallbackAdvisory(err))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
