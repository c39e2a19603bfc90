// ABOUTME: Tests for the session state object
// ABOUTME: Covers user lifecycle, symptom mirroring on meal log, and chat history

package core

import (
	"strings"
	"testing"
	"time"

	"github.com/gluteny/gluteny/internal/models"
	"github.com/gluteny/gluteny/internal/storage"
)

func testSession(t *testing.T) *Session {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	session, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return session
}

func logMeal(t *testing.T, s *Session, name, date, meal string, mealType models.MealType, symptoms string) {
	t.Helper()
	ts, _ := time.Parse(models.TimestampLayout, date+"T08:00:00")
	err := s.LogMeal(models.MealRecord{
		Timestamp: ts,
		Date:      date,
		Name:      name,
		Meal:      meal,
		MealType:  mealType,
		Symptoms:  symptoms,
	})
	if err != nil {
		t.Fatalf("LogMeal() error = %v", err)
	}
}

func TestSaveUser_AndUsers(t *testing.T) {
	s := testSession(t)

	if got := s.Users(); len(got) != 0 {
		t.Fatalf("Users() on fresh session = %v, want empty", got)
	}

	if err := s.SaveUser("Raj", "no sensitivities"); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}
	if err := s.SaveUser("Ankita", "gluten sensitive"); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}

	got := s.Users()
	if len(got) != 2 || got[0] != "Ankita" || got[1] != "Raj" {
		t.Errorf("Users() = %v, want [Ankita Raj]", got)
	}
	if !s.HasUser("Ankita") {
		t.Error("HasUser(Ankita) = false")
	}
	if s.Profile("Ankita") != "gluten sensitive" {
		t.Errorf("Profile(Ankita) = %q", s.Profile("Ankita"))
	}
}

func TestSaveUser_PersistsAcrossSessions(t *testing.T) {
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	first, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.SaveUser("Ankita", "gluten sensitive"); err != nil {
		t.Fatal(err)
	}

	second, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if second.Profile("Ankita") != "gluten sensitive" {
		t.Errorf("profile did not persist: %q", second.Profile("Ankita"))
	}
}

func TestBaseContext(t *testing.T) {
	s := testSession(t)

	got := s.BaseContext("Ankita")
	if !strings.Contains(got, "Ankita is a new user") {
		t.Errorf("BaseContext() for unknown user = %q", got)
	}

	if err := s.SaveUser("Ankita", "gluten sensitive"); err != nil {
		t.Fatal(err)
	}
	if got := s.BaseContext("Ankita"); got != "gluten sensitive" {
		t.Errorf("BaseContext() = %q, want profile text", got)
	}
}

func TestLogMeal_MirrorsSymptomRecord(t *testing.T) {
	s := testSession(t)

	logMeal(t, s, "Ankita", "2025-03-28", "Oats", models.Breakfast, "Bloating")
	logMeal(t, s, "Ankita", "2025-03-29", "Salad", models.Lunch, "")

	symptoms, err := s.Store().QuerySymptoms("Ankita", nil)
	if err != nil {
		t.Fatalf("QuerySymptoms() error = %v", err)
	}
	if len(symptoms) != 1 {
		t.Fatalf("got %d symptom records, want 1", len(symptoms))
	}
	if symptoms[0].Symptoms != "Bloating" || symptoms[0].Date != "2025-03-28" {
		t.Errorf("mirrored record = %+v", symptoms[0])
	}
}

func TestDeleteUser_CascadesEverything(t *testing.T) {
	s := testSession(t)

	if err := s.SaveUser("Ankita", "gluten sensitive"); err != nil {
		t.Fatal(err)
	}
	logMeal(t, s, "Ankita", "2025-03-28", "Oats", models.Breakfast, "Bloating")
	s.AppendHistory("Ankita", models.NewChatMessage(models.RoleUser, "hello"))

	if err := s.DeleteUser("Ankita"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if s.HasUser("Ankita") {
		t.Error("profile survived delete")
	}
	if len(s.History("Ankita")) != 0 {
		t.Error("chat history survived delete")
	}
	meals, err := s.Store().QueryMeals("Ankita", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(meals) != 0 {
		t.Errorf("%d meal records survived delete", len(meals))
	}
}

func TestAppendHistory_KeepsOrder(t *testing.T) {
	s := testSession(t)

	s.AppendHistory("Ankita", models.NewChatMessage(models.RoleUser, "first"))
	s.AppendHistory("Ankita", models.NewChatMessage(models.RoleCoach, "second"))

	history := s.History("Ankita")
	if len(history) != 2 {
		t.Fatalf("got %d messages, want 2", len(history))
	}
	if history[0].Content != "first" || history[1].Content != "second" {
		t.Errorf("history order = [%q, %q]", history[0].Content, history[1].Content)
	}
	if len(s.History("Raj")) != 0 {
		t.Error("history leaked across users")
	}
}
