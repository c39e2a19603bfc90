// ABOUTME: Meal and symptom log operations over the CSV tables
// ABOUTME: Append-only records with user-scoped queries and delete-all
package storage

import (
	"fmt"
	"time"

	"github.com/gluteny/gluteny/internal/models"
)

var (
	mealColumns  = []string{"timestamp", "date", "name", "meal", "meal_type", "symptoms", "notes"}
	mealRequired = []string{"timestamp", "date", "name", "meal", "meal_type"}

	symptomColumns  = []string{"timestamp", "date", "name", "symptoms", "notes"}
	symptomRequired = []string{"timestamp", "date", "name", "symptoms"}
)

// AppendMeal adds one meal record to the log.
func (s *Store) AppendMeal(rec models.MealRecord) error {
	if _, err := models.ParseMealType(string(rec.MealType)); err != nil {
		return fmt.Errorf("invalid meal record: %w", err)
	}
	return s.meals.appendRow(map[string]string{
		"timestamp": rec.Timestamp.Format(models.TimestampLayout),
		"date":      rec.Date,
		"name":      rec.Name,
		"meal":      rec.Meal,
		"meal_type": string(rec.MealType),
		"symptoms":  rec.Symptoms,
		"notes":     rec.Notes,
	})
}

// AppendSymptoms adds one symptom record to the log.
func (s *Store) AppendSymptoms(rec models.SymptomRecord) error {
	return s.symptoms.appendRow(map[string]string{
		"timestamp": rec.Timestamp.Format(models.TimestampLayout),
		"date":      rec.Date,
		"name":      rec.Name,
		"symptoms":  rec.Symptoms,
		"notes":     rec.Notes,
	})
}

// QueryMeals returns all of a user's meal records matching pred, in the
// store's natural (append) order. A nil pred matches everything. An
// absent log yields an empty result, not an error.
func (s *Store) QueryMeals(user string, pred func(models.MealRecord) bool) ([]models.MealRecord, error) {
	rows, err := s.meals.readAll()
	if err != nil {
		return nil, err
	}
	var records []models.MealRecord
	for _, row := range rows {
		if row["name"] != user {
			continue
		}
		rec := mealFromRow(row)
		if pred == nil || pred(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// QuerySymptoms returns all of a user's symptom records matching pred.
func (s *Store) QuerySymptoms(user string, pred func(models.SymptomRecord) bool) ([]models.SymptomRecord, error) {
	rows, err := s.symptoms.readAll()
	if err != nil {
		return nil, err
	}
	var records []models.SymptomRecord
	for _, row := range rows {
		if row["name"] != user {
			continue
		}
		rec := symptomFromRow(row)
		if pred == nil || pred(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// DeleteUser removes all meal and symptom records for the user from
// both logs. Irreversible; other users' records are untouched.
func (s *Store) DeleteUser(user string) error {
	byUser := func(row map[string]string) bool { return row["name"] == user }
	if err := s.meals.deleteWhere(byUser); err != nil {
		return fmt.Errorf("failed to delete meal records: %w", err)
	}
	if err := s.symptoms.deleteWhere(byUser); err != nil {
		return fmt.Errorf("failed to delete symptom records: %w", err)
	}
	return nil
}

func mealFromRow(row map[string]string) models.MealRecord {
	return models.MealRecord{
		Timestamp: parseTimestamp(row["timestamp"]),
		Date:      row["date"],
		Name:      row["name"],
		Meal:      row["meal"],
		MealType:  models.MealType(row["meal_type"]),
		Symptoms:  row["symptoms"],
		Notes:     row["notes"],
	}
}

func symptomFromRow(row map[string]string) models.SymptomRecord {
	return models.SymptomRecord{
		Timestamp: parseTimestamp(row["timestamp"]),
		Date:      row["date"],
		Name:      row["name"],
		Symptoms:  row["symptoms"],
		Notes:     row["notes"],
	}
}

// parseTimestamp is lenient: a drifted or blank timestamp reads as the
// zero time rather than poisoning the whole row.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(models.TimestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
