// ABOUTME: MealRecord and SymptomRecord represent one logged event each
// ABOUTME: Records are immutable once written; symptoms travel as a comma-joined string
package models

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp and calendar-date formats used across the flat-file logs.
const (
	TimestampLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
)

// MealType classifies a logged meal.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
	Snack     MealType = "Snack"
)

// ParseMealType validates a meal type label.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case Breakfast, Lunch, Dinner, Snack:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// MealRecord is one logged meal event, optionally tagged with symptoms
// and notes. Date is the calendar date the meal belongs to, which may
// differ from the timestamp's date when the user logs retroactively.
type MealRecord struct {
	Timestamp time.Time
	Date      string
	Name      string
	Meal      string
	MealType  MealType
	Symptoms  string
	Notes     string
}

// SymptomRecord is one logged symptom event. Symptom entries correlate
// with meals by shared calendar date, not by a direct link.
type SymptomRecord struct {
	Timestamp time.Time
	Date      string
	Name      string
	Symptoms  string
	Notes     string
}

// SymptomLabels splits a comma-joined symptoms string into trimmed
// labels. Labels stay case-sensitive; empty entries are dropped.
func SymptomLabels(symptoms string) []string {
	var labels []string
	for _, part := range strings.Split(symptoms, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// JoinSymptoms is the inverse of SymptomLabels for writing to disk.
func JoinSymptoms(labels []string) string {
	return strings.Join(labels, ", ")
}
