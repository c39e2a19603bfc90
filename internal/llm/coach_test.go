// ABOUTME: Tests for the coach client constructor
// ABOUTME: Network calls are not exercised here

package llm

import (
	"testing"
	"time"
)

func TestNewCoachClient_RequiresKey(t *testing.T) {
	if _, err := NewCoachClient("", "gpt-3.5-turbo", 0); err == nil {
		t.Error("NewCoachClient() with empty key should error")
	}
}

func TestNewCoachClient_Defaults(t *testing.T) {
	c, err := NewCoachClient("sk-test", "", 0)
	if err != nil {
		t.Fatalf("NewCoachClient() error = %v", err)
	}
	if c.model != DefaultChatModel {
		t.Errorf("model = %q, want %q", c.model, DefaultChatModel)
	}
	if c.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", c.timeout)
	}
}

func TestNewCoachClient_Explicit(t *testing.T) {
	c, err := NewCoachClient("sk-test", "gpt-4o-mini", 5*time.Second)
	if err != nil {
		t.Fatalf("NewCoachClient() error = %v", err)
	}
	if c.model != "gpt-4o-mini" {
		t.Errorf("model = %q", c.model)
	}
	if c.timeout != 5*time.Second {
		t.Errorf("timeout = %v", c.timeout)
	}
}
