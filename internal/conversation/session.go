package conversation

import (
	"context"
	"errors"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
)

// ErrNotFound is returned by stores for unknown or expired sessions.
var ErrNotFound = errors.New("conversation: session not found")

// State tracks where a session is in the send cycle.
type State string

const (
	StateIdle      State = "idle"
	StateSending   State = "sending"
	StateSucceeded State = "succeeded"
	StateDegraded  State = "degraded"
)

// Session is one chat: its transcript plus the language the user selected.
type Session struct {
	ID       string
	Language language.Code
	History  *History
	State    State
	// Epoch counts clears. Stores use it to tell current turns from turns
	// left over from before the last clear.
	Epoch int
}

func NewSession(id string, lang language.Code, seed ...domain.Turn) *Session {
	return &Session{
		ID:       id,
		Language: lang.OrDefault(),
		History:  NewHistory(seed...),
		State:    StateIdle,
	}
}

// Store persists sessions between requests.
type Store interface {
	// Load returns ErrNotFound for unknown ids.
	Load(ctx context.Context, id string) (*Session, error)
	// Create persists a new session together with its current turns.
	Create(ctx context.Context, s *Session) error
	// Append persists turns that were just added to s.History, along with
	// the session's selected language.
	Append(ctx context.Context, s *Session, turns ...domain.Turn) error
	// Reset persists a cleared session. s.History already holds the seed and
	// s.Epoch has been advanced.
	Reset(ctx context.Context, s *Session) error
}
