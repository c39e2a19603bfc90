// ABOUTME: Correlation engine joining meal and symptom records by calendar date
// ABOUTME: Produces a frequency-ranked symptom-to-meal mapping or a tagged InsightError
package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gluteny/gluteny/internal/models"
)

// Fixed advisory strings. The chat assistant must always receive some
// context, so every failure mode renders to one of these, never an
// unhandled error.
const (
	AdvisoryNotEnoughData = "Not enough data yet to analyze meal and symptom correlations."
	AdvisoryNoOverlap     = "No overlapping meal and symptom data found yet."
)

// InsightErrorKind tags the distinct non-fatal insight failure modes.
type InsightErrorKind int

const (
	NoMealLog InsightErrorKind = iota
	NoSymptomLog
	NoOverlap
	MalformedRow
)

// InsightError is a non-fatal, advisory-bearing insight failure.
// Callers can switch on Kind instead of matching message text.
type InsightError struct {
	Kind  InsightErrorKind
	Cause error
}

func (e *InsightError) Error() string {
	return e.Advisory()
}

func (e *InsightError) Unwrap() error {
	return e.Cause
}

// Advisory renders the human-readable string for this failure mode.
func (e *InsightError) Advisory() string {
	switch e.Kind {
	case NoMealLog, NoSymptomLog:
		return AdvisoryNotEnoughData
	case NoOverlap:
		return AdvisoryNoOverlap
	default:
		return fmt.Sprintf("Error analyzing symptom insight: %v", e.Cause)
	}
}

// topMealsPerSymptom caps how many associated meals each symptom reports.
const topMealsPerSymptom = 2

// MealSymptomInsight computes the symptom-to-meal association mapping
// for a user. Meal and symptom records are joined by shared calendar
// date: every meal on a date is a candidate trigger for every symptom
// logged on that date. Multiple meals and symptom entries on one date
// join as a full cross product, so a symptom can associate with meals
// eaten at any time that day. Do not narrow this join.
func (s *Session) MealSymptomInsight(user string) (*models.SymptomInsight, error) {
	if !s.store.HasMealLog() {
		return nil, &InsightError{Kind: NoMealLog}
	}
	if !s.store.HasSymptomLog() {
		return nil, &InsightError{Kind: NoSymptomLog}
	}

	meals, err := s.store.QueryMeals(user, nil)
	if err != nil {
		return nil, &InsightError{Kind: MalformedRow, Cause: err}
	}
	symptoms, err := s.store.QuerySymptoms(user, nil)
	if err != nil {
		return nil, &InsightError{Kind: MalformedRow, Cause: err}
	}

	mealsByDate := make(map[string][]models.MealRecord)
	for _, meal := range meals {
		mealsByDate[meal.Date] = append(mealsByDate[meal.Date], meal)
	}

	// symptom label -> associated meals, appended in record order so
	// counting stays stable across identical queries.
	triggered := make(map[string][]string)
	var order []string
	for _, sym := range symptoms {
		dayMeals := mealsByDate[sym.Date]
		if len(dayMeals) == 0 {
			continue
		}
		for _, label := range models.SymptomLabels(sym.Symptoms) {
			if _, seen := triggered[label]; !seen {
				order = append(order, label)
			}
			for _, meal := range dayMeals {
				triggered[label] = append(triggered[label], strings.ToLower(meal.Meal))
			}
		}
	}

	if len(order) == 0 {
		return nil, &InsightError{Kind: NoOverlap}
	}

	insight := &models.SymptomInsight{}
	for _, label := range order {
		insight.Associations = append(insight.Associations, models.SymptomAssociation{
			Symptom: label,
			Meals:   rankMeals(triggered[label], topMealsPerSymptom),
		})
	}
	return insight, nil
}

// InsightText renders the insight for prompt assembly. Failure modes
// degrade to their advisory strings rather than erroring; calling this
// twice with no intervening writes yields identical output.
func (s *Session) InsightText(user string) string {
	insight, err := s.MealSymptomInsight(user)
	if err != nil {
		var ie *InsightError
		if errors.As(err, &ie) {
			return ie.Advisory()
		}
		return fmt.Sprintf("Error analyzing symptom insight: %v", err)
	}
	return insight.Render()
}

// rankMeals counts occurrences and returns the top n meals by count,
// descending, ties broken by first appearance.
func rankMeals(mealsList []string, n int) []models.MealAssociation {
	counts := make(map[string]int)
	var firstSeen []string
	for _, meal := range mealsList {
		if counts[meal] == 0 {
			firstSeen = append(firstSeen, meal)
		}
		counts[meal]++
	}

	ranked := make([]models.MealAssociation, 0, len(firstSeen))
	for _, meal := range firstSeen {
		ranked = append(ranked, models.MealAssociation{Meal: meal, Count: counts[meal]})
	}
	// Stable sort keeps first-seen order among equal counts.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
