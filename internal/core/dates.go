// ABOUTME: Date-query resolver answering "what did I eat on X" deterministically
// ABOUTME: Detects ISO and day-plus-month-name dates; no match falls through to chat
package core

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gluteny/gluteny/internal/models"
)

var mealQueryPattern = regexp.MustCompile(`(?i)what did i eat on ([\w\s-]+)`)

// ExtractQueryDate detects an embedded meal-query date in free text.
// Two forms are supported: ISO (2025-03-28) and day plus month name
// (28 March), the latter defaulting to the current year. Returns false
// when no parsable date is present so the caller falls through to the
// general chat path.
func ExtractQueryDate(text string) (time.Time, bool) {
	if match := mealQueryPattern.FindStringSubmatch(text); match != nil {
		return parseDateText(match[1])
	}
	// Bare date text counts as a query too.
	return parseDateText(text)
}

func parseDateText(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if t, err := time.Parse(models.DateLayout, text); err == nil {
		return t, true
	}
	for _, layout := range []string{"2 January", "2 Jan", "January 2", "Jan 2"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t.AddDate(time.Now().Year(), 0, 0), true
		}
	}
	return time.Time{}, false
}

// ResolveDateQuery answers a date-embedded question from the record
// store, bypassing the LLM. ok is false when the text holds no date.
// A date with no records yields an advisory inviting the user to log
// the day, not an error.
func (s *Session) ResolveDateQuery(user, text string) (answer string, ok bool) {
	queryDate, found := ExtractQueryDate(text)
	if !found {
		return "", false
	}

	dateStr := queryDate.Format(models.DateLayout)
	meals, err := s.store.QueryMeals(user, func(rec models.MealRecord) bool {
		return rec.Date == dateStr
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: date query could not read the meal log: %v\n", err)
		meals = nil
	}

	display := queryDate.Format("January 2, 2006")
	if len(meals) == 0 {
		return fmt.Sprintf("It seems like there is no meal history available for you on %s.\nWould you like to tell me what you ate on that day so I can provide you with some personalized feedback or recommendations?", display), true
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Here's what you had on %s:\n", display))
	for _, meal := range meals {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", meal.MealType, meal.Meal))
	}
	return strings.TrimSpace(sb.String()), true
}
