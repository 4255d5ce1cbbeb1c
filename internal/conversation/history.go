// Package conversation owns chat transcripts and the sessions that hold them.
package conversation

import "portfolio-assistant/internal/domain"

// History is an ordered, append-only transcript. It is not safe for
// concurrent use; a session has one logical writer at a time.
type History struct {
	turns []domain.Turn
}

func NewHistory(turns ...domain.Turn) *History {
	h := &History{}
	h.turns = append(h.turns, turns...)
	return h
}

func (h *History) Append(turns ...domain.Turn) {
	h.turns = append(h.turns, turns...)
}

func (h *History) Len() int { return len(h.turns) }

// Snapshot returns a copy of every turn, oldest first.
func (h *History) Snapshot() []domain.Turn {
	return clone(h.turns)
}

// Window returns a copy of the last n turns, oldest first.
func (h *History) Window(n int) []domain.Turn {
	if n <= 0 {
		return []domain.Turn{}
	}
	if n > len(h.turns) {
		n = len(h.turns)
	}
	return clone(h.turns[len(h.turns)-n:])
}

// Since returns a copy of the turns appended after the first n.
func (h *History) Since(n int) []domain.Turn {
	if n < 0 {
		n = 0
	}
	if n >= len(h.turns) {
		return []domain.Turn{}
	}
	return clone(h.turns[n:])
}

// Last returns the newest turn.
func (h *History) Last() (domain.Turn, bool) {
	if len(h.turns) == 0 {
		return domain.Turn{}, false
	}
	return h.turns[len(h.turns)-1], true
}

// Truncate drops every turn after the first n. It rolls back an append whose
// request failed; it is never used to trim old context.
func (h *History) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(h.turns) {
		return
	}
	clear(h.turns[n:])
	h.turns = h.turns[:n]
}

// Reset discards the transcript and starts over with seed.
func (h *History) Reset(seed ...domain.Turn) {
	h.turns = clone(seed)
}

func clone(turns []domain.Turn) []domain.Turn {
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}
