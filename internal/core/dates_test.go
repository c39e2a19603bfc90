// ABOUTME: Tests for the deterministic date-query resolver
// ABOUTME: Covers both date forms, the fall-through, and the no-history advisory

package core

import (
	"strings"
	"testing"
	"time"

	"github.com/gluteny/gluteny/internal/models"
)

func TestExtractQueryDate_ISO(t *testing.T) {
	got, ok := ExtractQueryDate("what did i eat on 2025-03-28")
	if !ok {
		t.Fatal("ExtractQueryDate() ok = false")
	}
	if got.Format(models.DateLayout) != "2025-03-28" {
		t.Errorf("date = %s, want 2025-03-28", got.Format(models.DateLayout))
	}
}

func TestExtractQueryDate_DayMonthName(t *testing.T) {
	got, ok := ExtractQueryDate("What did I eat on 28 March")
	if !ok {
		t.Fatal("ExtractQueryDate() ok = false")
	}
	want := time.Date(time.Now().Year(), time.March, 28, 0, 0, 0, 0, time.UTC)
	if got.Month() != want.Month() || got.Day() != want.Day() || got.Year() != want.Year() {
		t.Errorf("date = %v, want %v", got, want)
	}
}

func TestExtractQueryDate_BareDateText(t *testing.T) {
	got, ok := ExtractQueryDate("2025-03-28")
	if !ok {
		t.Fatal("ExtractQueryDate() on bare date ok = false")
	}
	if got.Format(models.DateLayout) != "2025-03-28" {
		t.Errorf("date = %s, want 2025-03-28", got.Format(models.DateLayout))
	}
}

func TestExtractQueryDate_NoDate(t *testing.T) {
	inputs := []string{
		"what should I eat for dinner?",
		"I feel bloated today",
		"what did i eat on my birthday",
		"",
	}
	for _, input := range inputs {
		if _, ok := ExtractQueryDate(input); ok {
			t.Errorf("ExtractQueryDate(%q) ok = true, want false", input)
		}
	}
}

func TestResolveDateQuery_FoundMeals(t *testing.T) {
	s := testSession(t)

	logMeal(t, s, "Ankita", "2025-03-28", "Oats", models.Breakfast, "")
	logMeal(t, s, "Ankita", "2025-03-28", "Salad", models.Lunch, "")
	logMeal(t, s, "Ankita", "2025-03-29", "Pasta", models.Dinner, "")

	answer, ok := s.ResolveDateQuery("Ankita", "what did i eat on 2025-03-28")
	if !ok {
		t.Fatal("ResolveDateQuery() ok = false")
	}
	if !strings.HasPrefix(answer, "Here's what you had on March 28, 2025:") {
		t.Errorf("answer = %q, want display-date heading", answer)
	}
	if !strings.Contains(answer, "- Breakfast: Oats") || !strings.Contains(answer, "- Lunch: Salad") {
		t.Errorf("answer = %q, missing logged meals", answer)
	}
	if strings.Contains(answer, "Pasta") {
		t.Errorf("answer = %q, includes meal from another date", answer)
	}
}

func TestResolveDateQuery_NoHistoryAdvisory(t *testing.T) {
	s := testSession(t)

	answer, ok := s.ResolveDateQuery("Ankita", "what did i eat on 2025-03-28")
	if !ok {
		t.Fatal("ResolveDateQuery() ok = false")
	}
	if !strings.Contains(answer, "no meal history available for you on March 28, 2025") {
		t.Errorf("answer = %q, want no-history advisory", answer)
	}
	if !strings.Contains(answer, "Would you like to tell me what you ate") {
		t.Errorf("answer = %q, missing follow-up invitation", answer)
	}
}

func TestResolveDateQuery_NoDateFallsThrough(t *testing.T) {
	s := testSession(t)

	answer, ok := s.ResolveDateQuery("Ankita", "what should I eat for dinner?")
	if ok {
		t.Errorf("ResolveDateQuery() ok = true with answer %q, want fall-through", answer)
	}
}

func TestResolveDateQuery_ScopedToUser(t *testing.T) {
	s := testSession(t)

	logMeal(t, s, "Raj", "2025-03-28", "Pizza", models.Dinner, "")

	answer, ok := s.ResolveDateQuery("Ankita", "what did i eat on 2025-03-28")
	if !ok {
		t.Fatal("ResolveDateQuery() ok = false")
	}
	if strings.Contains(answer, "Pizza") {
		t.Errorf("answer = %q, leaked another user's meal", answer)
	}
}
