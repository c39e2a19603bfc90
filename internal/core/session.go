// ABOUTME: Session is the explicit application-state object for one user session
// ABOUTME: Owns the store handle, profile map, and per-user chat history
package core

import (
	"fmt"
	"sort"

	"github.com/gluteny/gluteny/internal/models"
	"github.com/gluteny/gluteny/internal/storage"
)

// Session carries all mutable state for one hosting session. Callers
// construct it once and pass it into every core operation; nothing
// here is a process-wide singleton.
type Session struct {
	store    *storage.Store
	profiles map[string]string
	history  map[string][]models.ChatMessage
}

// NewSession loads profiles from the store and returns a ready session.
func NewSession(store *storage.Store) (*Session, error) {
	profiles, err := store.LoadProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &Session{
		store:    store,
		profiles: profiles,
		history:  make(map[string][]models.ChatMessage),
	}, nil
}

// Store exposes the underlying record store.
func (s *Session) Store() *storage.Store {
	return s.store
}

// Users lists known user names, sorted for stable display.
func (s *Session) Users() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasUser reports whether a profile exists for the name.
func (s *Session) HasUser(name string) bool {
	_, ok := s.profiles[name]
	return ok
}

// Profile returns the stored profile narrative for a user, or "".
func (s *Session) Profile(name string) string {
	return s.profiles[name]
}

// SaveUser creates or fully overwrites a user's profile narrative.
func (s *Session) SaveUser(name, profile string) error {
	s.profiles[name] = profile
	return s.store.SaveProfiles(s.profiles)
}

// DeleteUser removes the user's profile, chat history, and every meal
// and symptom record. Irreversible.
func (s *Session) DeleteUser(name string) error {
	delete(s.profiles, name)
	delete(s.history, name)
	if err := s.store.SaveProfiles(s.profiles); err != nil {
		return err
	}
	return s.store.DeleteUser(name)
}

// BaseContext returns the profile narrative for prompt assembly, or a
// new-user placeholder when none exists.
func (s *Session) BaseContext(name string) string {
	if profile, ok := s.profiles[name]; ok {
		return profile
	}
	return fmt.Sprintf("%s is a new user. Please ask questions to help personalize health suggestions.", name)
}

// LogMeal appends a meal record and, when the record carries symptoms,
// the matching symptom record. Records are immutable once written.
func (s *Session) LogMeal(rec models.MealRecord) error {
	if err := s.store.AppendMeal(rec); err != nil {
		return err
	}
	if rec.Symptoms == "" {
		return nil
	}
	return s.store.AppendSymptoms(models.SymptomRecord{
		Timestamp: rec.Timestamp,
		Date:      rec.Date,
		Name:      rec.Name,
		Symptoms:  rec.Symptoms,
		Notes:     rec.Notes,
	})
}

// History returns the chat history for a user in order.
func (s *Session) History(user string) []models.ChatMessage {
	return s.history[user]
}

// AppendHistory records one chat turn for a user.
func (s *Session) AppendHistory(user string, msg models.ChatMessage) {
	s.history[user] = append(s.history[user], msg)
}
