// ABOUTME: ChatMessage represents one turn in a user's coaching conversation
// ABOUTME: History lives in the session object and is dropped when a user is deleted
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chat roles.
const (
	RoleUser  = "user"
	RoleCoach = "coach"
)

// ChatMessage is a single chat turn.
type ChatMessage struct {
	MessageID string
	Role      string
	Content   string
	Timestamp time.Time
}

// NewChatMessage creates a timestamped chat message with a fresh ID.
func NewChatMessage(role, content string) ChatMessage {
	return ChatMessage{
		MessageID: fmt.Sprintf("msg_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8]),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
