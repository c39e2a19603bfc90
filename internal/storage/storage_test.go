// ABOUTME: Tests for the flat-file record store
// ABOUTME: Covers append, schema drift, corrupt reset, query, and user-scoped delete

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gluteny/gluteny/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func mealRecord(name, date, meal string, mealType models.MealType, symptoms string) models.MealRecord {
	ts, _ := time.Parse(models.TimestampLayout, date+"T08:15:00")
	return models.MealRecord{
		Timestamp: ts,
		Date:      date,
		Name:      name,
		Meal:      meal,
		MealType:  mealType,
		Symptoms:  symptoms,
	}
}

func TestNewStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "gluteny")

	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("data directory was not created")
	}
}

func TestAppendMeal_CreatesFileWithHeader(t *testing.T) {
	store := testStore(t)

	rec := mealRecord("Ankita", "2025-03-28", "Oats, almond milk, apple", models.Breakfast, "Bloating")
	if err := store.AppendMeal(rec); err != nil {
		t.Fatalf("AppendMeal() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.DataDir(), mealLogFile))
	if err != nil {
		t.Fatalf("reading meal log: %v", err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	if first != strings.Join(mealColumns, ",") {
		t.Errorf("header = %q, want %q", first, strings.Join(mealColumns, ","))
	}
}

func TestAppendMeal_RejectsUnknownMealType(t *testing.T) {
	store := testStore(t)

	rec := mealRecord("Ankita", "2025-03-28", "Oats", "Brunch", "")
	if err := store.AppendMeal(rec); err == nil {
		t.Error("AppendMeal() with invalid meal type should error")
	}
}

func TestQueryMeals_AbsentLogReturnsEmpty(t *testing.T) {
	store := testStore(t)

	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("got %d meals, want 0", len(meals))
	}
}

func TestQueryMeals_FiltersByUserAndPredicate(t *testing.T) {
	store := testStore(t)

	records := []models.MealRecord{
		mealRecord("Ankita", "2025-03-28", "Oats", models.Breakfast, ""),
		mealRecord("Ankita", "2025-03-29", "Salad", models.Lunch, ""),
		mealRecord("Raj", "2025-03-28", "Rice, rajma", models.Lunch, ""),
	}
	for _, rec := range records {
		if err := store.AppendMeal(rec); err != nil {
			t.Fatalf("AppendMeal() error = %v", err)
		}
	}

	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("got %d meals for Ankita, want 2", len(meals))
	}

	byDate, err := store.QueryMeals("Ankita", func(rec models.MealRecord) bool {
		return rec.Date == "2025-03-28"
	})
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(byDate) != 1 || byDate[0].Meal != "Oats" {
		t.Errorf("date predicate returned %+v, want single Oats record", byDate)
	}
}

func TestQueryMeals_BackfillsMissingColumns(t *testing.T) {
	dir := t.TempDir()

	// Old-schema file without symptoms and notes columns.
	oldLog := "timestamp,date,name,meal,meal_type\n" +
		"2025-03-27T09:00:00,2025-03-27,Ankita,Poha,Breakfast\n"
	if err := os.WriteFile(filepath.Join(dir, mealLogFile), []byte(oldLog), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("got %d meals, want 1", len(meals))
	}
	if meals[0].Symptoms != "" {
		t.Errorf("Symptoms = %q, want empty string for pre-existing row", meals[0].Symptoms)
	}
	if meals[0].Notes != "" {
		t.Errorf("Notes = %q, want empty string for pre-existing row", meals[0].Notes)
	}
}

func TestNewStore_MigratesOldSchemaOnce(t *testing.T) {
	dir := t.TempDir()

	oldLog := "timestamp,date,name,meal,meal_type\n" +
		"2025-03-27T09:00:00,2025-03-27,Ankita,Poha,Breakfast\n"
	path := filepath.Join(dir, mealLogFile)
	if err := os.WriteFile(path, []byte(oldLog), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	if first != strings.Join(mealColumns, ",") {
		t.Errorf("migrated header = %q, want full schema %q", first, strings.Join(mealColumns, ","))
	}
}

func TestAppendMeal_ToOldSchemaFileDoesNotFail(t *testing.T) {
	dir := t.TempDir()

	oldLog := "timestamp,date,name,meal,meal_type\n" +
		"2025-03-27T09:00:00,2025-03-27,Ankita,Poha,Breakfast\n"
	if err := os.WriteFile(filepath.Join(dir, mealLogFile), []byte(oldLog), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	rec := mealRecord("Ankita", "2025-03-28", "Oats", models.Breakfast, "Bloating")
	if err := store.AppendMeal(rec); err != nil {
		t.Fatalf("AppendMeal() error = %v", err)
	}

	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(meals))
	}
	if meals[0].Symptoms != "" {
		t.Errorf("pre-existing row Symptoms = %q, want \"\"", meals[0].Symptoms)
	}
	if meals[1].Symptoms != "Bloating" {
		t.Errorf("new row Symptoms = %q, want %q", meals[1].Symptoms, "Bloating")
	}
}

func TestAppendMeal_ResetsCorruptFile(t *testing.T) {
	dir := t.TempDir()

	// A bare quote makes the CSV structurally unparsable.
	corrupt := "timestamp,date,name,meal,meal_type,symptoms,notes\n" +
		"2025-03-27T09:00:00,2025-03-27,\"Ankita,Poha\"x,Breakfast,,\n"
	if err := os.WriteFile(filepath.Join(dir, mealLogFile), []byte(corrupt), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	rec := mealRecord("Ankita", "2025-03-28", "Oats", models.Breakfast, "")
	if err := store.AppendMeal(rec); err != nil {
		t.Fatalf("AppendMeal() on corrupt file error = %v", err)
	}

	// Prior content discarded, in-flight write preserved.
	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() after reset error = %v", err)
	}
	if len(meals) != 1 || meals[0].Meal != "Oats" {
		t.Errorf("after reset got %+v, want single Oats record", meals)
	}
}

func TestDeleteUser_RemovesOnlyThatUser(t *testing.T) {
	store := testStore(t)

	if err := store.AppendMeal(mealRecord("Ankita", "2025-03-28", "Oats", models.Breakfast, "Bloating")); err != nil {
		t.Fatal(err)
	}
	if err := store.AppendMeal(mealRecord("Raj", "2025-03-28", "Rice", models.Lunch, "")); err != nil {
		t.Fatal(err)
	}
	if err := store.AppendSymptoms(models.SymptomRecord{
		Date: "2025-03-28", Name: "Ankita", Symptoms: "Bloating",
	}); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteUser("Ankita"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	meals, err := store.QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("Ankita still has %d meal records after delete", len(meals))
	}

	symptoms, err := store.QuerySymptoms("Ankita", nil)
	if err != nil {
		t.Fatalf("QuerySymptoms() error = %v", err)
	}
	if len(symptoms) != 0 {
		t.Errorf("Ankita still has %d symptom records after delete", len(symptoms))
	}

	others, err := store.QueryMeals("Raj", nil)
	if err != nil {
		t.Fatalf("QueryMeals() error = %v", err)
	}
	if len(others) != 1 {
		t.Errorf("Raj's records affected by Ankita's delete: got %d, want 1", len(others))
	}
}

func TestDeleteUser_NoLogIsNoop(t *testing.T) {
	store := testStore(t)

	if err := store.DeleteUser("Nobody"); err != nil {
		t.Errorf("DeleteUser() on empty store error = %v", err)
	}
}
