// ABOUTME: Coach prompt composition: persona preamble plus the three context strings
// ABOUTME: This is the seam between the core and the excluded chat-presentation layer
package core

import (
	"fmt"
	"strings"
)

const coachPreamble = `You are a proactive, friendly, and observant nutritionist assistant named Gluteny.

Your role is to help the user build better food habits, avoid discomfort, and feel good through diet adjustments.`

const coachGuidelines = `Guidelines for you, Gluteny:
- If you notice patterns (e.g., symptoms repeatedly appearing after certain meals), kindly point them out and suggest gentle, user-friendly alternatives.
- Ask thoughtful follow-up questions based on recent meals or symptoms.
- Keep your tone warm, conversational, and human-like, like a coach who truly cares.`

// BuildCoachPrompt assembles the system prompt for the LLM coach from
// the user's profile narrative, memory context, and symptom insight.
func BuildCoachPrompt(profileContext, memoryContext, insightText string) string {
	sections := []string{
		coachPreamble,
		"User Profile:\n" + profileContext,
		"Meal History:\n" + memoryContext,
		"Symptom Correlation Insights:\n" + insightText,
		coachGuidelines,
	}
	return strings.Join(sections, "\n\n---\n\n")
}

// CoachPrompt builds the full system prompt for a user from session state.
func (s *Session) CoachPrompt(user string) string {
	return BuildCoachPrompt(s.BaseContext(user), s.MemoryContext(user), s.InsightText(user))
}

// ChatFallbackAdvisory is the one-shot message surfaced when the
// upstream LLM call fails. Conversation state is otherwise unaffected.
func ChatFallbackAdvisory(err error) string {
	return fmt.Sprintf("Sorry, I couldn't reach the nutrition service right now (%v). Please try again in a moment.", err)
}
