// ABOUTME: SymptomInsight is the derived symptom-to-meal association mapping
// ABOUTME: Computed fresh from the record store on each query, never persisted
package models

import (
	"fmt"
	"strings"
)

// MealAssociation pairs a meal description with how often it co-occurred
// with a symptom on the same calendar date.
type MealAssociation struct {
	Meal  string
	Count int
}

// SymptomAssociation holds the top meals associated with one symptom.
type SymptomAssociation struct {
	Symptom string
	Meals   []MealAssociation
}

// SymptomInsight maps each symptom to its most frequently co-occurring
// meals. Symptoms keep first-seen order so repeated queries over the
// same data render identically.
type SymptomInsight struct {
	Associations []SymptomAssociation
}

// Association returns the entry for a symptom label, or nil.
func (si *SymptomInsight) Association(symptom string) *SymptomAssociation {
	for i := range si.Associations {
		if si.Associations[i].Symptom == symptom {
			return &si.Associations[i]
		}
	}
	return nil
}

// Render formats the insight for the coach prompt.
func (si *SymptomInsight) Render() string {
	var sb strings.Builder
	for _, assoc := range si.Associations {
		sb.WriteString(fmt.Sprintf("**%s** has occurred after meals like:\n", assoc.Symptom))
		for _, meal := range assoc.Meals {
			sb.WriteString(fmt.Sprintf("- %s (%d times)\n", meal.Meal, meal.Count))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
