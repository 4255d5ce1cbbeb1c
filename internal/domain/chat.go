package domain

import (
	"errors"
	"time"

	"portfolio-assistant/internal/language"
)

// Role is the author of a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var (
	// ErrCredentialMissing marks a completion credential that is not configured.
	ErrCredentialMissing = errors.New("domain: completion credential missing")
	// ErrEmptyCompletion is a successful response without any content.
	ErrEmptyCompletion = errors.New("domain: completion has no content")
)

// ChatMessage is the provider-agnostic chat message shape sent to the
// completion service.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn is one entry of a conversation transcript. Turns are values and are
// never changed after creation.
type Turn struct {
	ID        string        `json:"id"`
	Role      Role          `json:"role"`
	Content   string        `json:"content"`
	Timestamp time.Time     `json:"timestamp"`
	Language  language.Code `json:"language,omitempty"`
	// Degraded marks assistant turns produced by the offline answer table.
	Degraded bool `json:"degraded,omitempty"`
}

// Message reduces the turn to what the completion service sees.
func (t Turn) Message() ChatMessage {
	return ChatMessage{Role: t.Role, Content: t.Content}
}
