package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
)

const defaultMemorySessions = 1024

type record struct {
	language language.Code
	epoch    int
	turns    []domain.Turn
}

// MemoryStore keeps the most recently used sessions in process memory. Load
// hands out rehydrated copies, so two requests never share a History.
type MemoryStore struct {
	cache *lru.Cache
}

func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = defaultMemorySessions
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("conversation: new lru: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	v, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	rec := v.(record)
	s := NewSession(id, rec.language, rec.turns...)
	s.Epoch = rec.epoch
	return s, nil
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	if err := validate(s); err != nil {
		return err
	}
	m.put(s)
	return nil
}

// Append stores the whole transcript; turns is only meaningful to stores that
// write incrementally.
func (m *MemoryStore) Append(_ context.Context, s *Session, _ ...domain.Turn) error {
	if err := validate(s); err != nil {
		return err
	}
	m.put(s)
	return nil
}

func (m *MemoryStore) Reset(_ context.Context, s *Session) error {
	if err := validate(s); err != nil {
		return err
	}
	m.put(s)
	return nil
}

func (m *MemoryStore) Len() int { return m.cache.Len() }

func (m *MemoryStore) put(s *Session) {
	m.cache.Add(s.ID, record{
		language: s.Language,
		epoch:    s.Epoch,
		turns:    s.History.Snapshot(),
	})
}

func validate(s *Session) error {
	if s == nil || s.History == nil {
		return errors.New("conversation: session must not be nil")
	}
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("conversation: session id must not be empty")
	}
	return nil
}
