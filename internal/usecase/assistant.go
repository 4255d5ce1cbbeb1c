package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"portfolio-assistant/internal/conversation"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
	"portfolio-assistant/internal/locale"
)

const defaultMaxMessage = 500

// Responder produces the assistant's answer for one user turn.
type Responder interface {
	Send(ctx context.Context, hist *conversation.History, userText string, lang language.Code) (string, error)
}

type SendInput struct {
	SessionID string
	Message   string
	// Language is an explicit choice. Empty means detect from the message.
	Language string
}

type SendOutput struct {
	Reply        string
	SessionID    string
	Language     language.Code
	Outcome      conversation.State
	ErrorCode    ErrorCode
	Notice       string
	QuickReplies []locale.QuickReply
}

// SessionView is a read-only copy of a session.
type SessionView struct {
	SessionID    string
	Language     language.Code
	Turns        []domain.Turn
	QuickReplies []locale.QuickReply
}

// Assistant runs the chat flow for a session: language resolution, the
// completion attempt, the offline fallback and persistence.
type Assistant struct {
	store     conversation.Store
	responder Responder
	detector  *language.Detector
	logger    *slog.Logger
	maxLen    int
}

func NewAssistant(store conversation.Store, responder Responder, detector *language.Detector, logger *slog.Logger, maxMessageLen int) (*Assistant, error) {
	if store == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if responder == nil {
		return nil, errors.New("usecase: responder must not be nil")
	}
	if detector == nil {
		detector = language.NewDetector(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if maxMessageLen <= 0 {
		maxMessageLen = defaultMaxMessage
	}
	return &Assistant{
		store:     store,
		responder: responder,
		detector:  detector,
		logger:    logger,
		maxLen:    maxMessageLen,
	}, nil
}

// Send never surfaces completion failures: they become a degraded reply with
// ErrorCode set. Errors are returned only for bad input or store failures.
func (a *Assistant) Send(ctx context.Context, in SendInput) (SendOutput, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return SendOutput{}, newError(ErrorInvalidInput, "empty_message", nil)
	}
	if utf8.RuneCountInString(msg) > a.maxLen {
		return SendOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}
	explicit, err := parseLanguage(in.Language)
	if err != nil {
		return SendOutput{}, err
	}

	var s *conversation.Session
	created := false
	if id := strings.TrimSpace(in.SessionID); id != "" {
		s, err = a.load(ctx, id)
		if err != nil {
			return SendOutput{}, err
		}
	}

	lang := explicit
	if lang == "" {
		var hint language.Code
		if s != nil {
			hint = s.Language
		}
		lang = a.replyLanguage(msg, hint)
	}
	if s == nil {
		s = conversation.NewSession(newUUID(), lang, newTurn(domain.RoleAssistant, locale.Welcome(lang), lang))
		created = true
	} else if explicit != "" {
		s.Language = explicit
	}

	before := s.History.Len()
	s.State = conversation.StateSending
	out := SendOutput{SessionID: s.ID, Language: lang}

	reply, err := a.responder.Send(ctx, s.History, msg, lang)
	if err != nil {
		code := CodeOf(err)
		a.logger.Warn("serving offline answer", "session_id", s.ID, "code", code, "language", lang, "err", err)

		// A failed send leaves only the degraded turn behind.
		s.History.Truncate(before)
		turn := newTurn(domain.RoleAssistant, degradedContent(msg, lang), lang)
		turn.Degraded = true
		s.History.Append(turn)

		s.State = conversation.StateDegraded
		out.Reply = turn.Content
		out.ErrorCode = code
		out.Notice = locale.ErrorPrefix(failureFor(code), lang)
	} else {
		s.State = conversation.StateSucceeded
		out.Reply = reply
	}
	out.Outcome = s.State

	if created {
		err = a.store.Create(ctx, s)
	} else {
		err = a.store.Append(ctx, s, s.History.Since(before)...)
	}
	if err != nil {
		a.logger.Error("failed to persist session", "session_id", s.ID, "err", err)
		return SendOutput{}, newError(ErrorInternal, "session_write_error", err)
	}
	s.State = conversation.StateIdle

	out.QuickReplies = quickReplies(s)
	return out, nil
}

// Open starts a session seeded with the welcome turn.
func (a *Assistant) Open(ctx context.Context, lang string) (SessionView, error) {
	code, err := parseLanguage(lang)
	if err != nil {
		return SessionView{}, err
	}
	code = code.OrDefault()
	s := conversation.NewSession(newUUID(), code, newTurn(domain.RoleAssistant, locale.Welcome(code), code))
	if err := a.store.Create(ctx, s); err != nil {
		a.logger.Error("failed to create session", "session_id", s.ID, "err", err)
		return SessionView{}, newError(ErrorInternal, "session_write_error", err)
	}
	return view(s), nil
}

func (a *Assistant) History(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := a.load(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		return SessionView{}, err
	}
	return view(s), nil
}

// Clear resets the transcript to a single welcome turn. A non-empty lang also
// changes the session's selected language first.
func (a *Assistant) Clear(ctx context.Context, sessionID, lang string) (SessionView, error) {
	code, err := parseLanguage(lang)
	if err != nil {
		return SessionView{}, err
	}
	s, err := a.load(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		return SessionView{}, err
	}
	if code != "" {
		s.Language = code
	}
	s.Epoch++
	s.History.Reset(newTurn(domain.RoleAssistant, locale.Welcome(s.Language), s.Language))
	if err := a.store.Reset(ctx, s); err != nil {
		a.logger.Error("failed to reset session", "session_id", s.ID, "err", err)
		return SessionView{}, newError(ErrorInternal, "session_write_error", err)
	}
	return view(s), nil
}

func (a *Assistant) load(ctx context.Context, id string) (*conversation.Session, error) {
	if id == "" {
		return nil, newError(ErrorInvalidInput, "missing_session_id", nil)
	}
	s, err := a.store.Load(ctx, id)
	if errors.Is(err, conversation.ErrNotFound) {
		return nil, newError(ErrorNotFound, "session_not_found", err)
	}
	if err != nil {
		a.logger.Error("failed to load session", "session_id", id, "err", err)
		return nil, newError(ErrorInternal, "session_load_error", err)
	}
	return s, nil
}

// replyLanguage detects the language of msg. Text without any signal keeps
// the session's language.
func (a *Assistant) replyLanguage(msg string, hint language.Code) language.Code {
	if ranked := a.detector.Rank(msg); len(ranked) == 0 || ranked[0].Value == 0 {
		return hint.OrDefault()
	}
	return a.detector.DetectWithHint(msg, hint)
}

func parseLanguage(raw string) (language.Code, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	code, err := language.Parse(raw)
	if err != nil {
		return "", newError(ErrorInvalidInput, "unsupported_language", err)
	}
	return code, nil
}

// quickReplies are offered only before the user has said anything.
func quickReplies(s *conversation.Session) []locale.QuickReply {
	if s.History.Len() != 1 {
		return nil
	}
	return locale.QuickReplies(s.Language)
}

func view(s *conversation.Session) SessionView {
	return SessionView{
		SessionID:    s.ID,
		Language:     s.Language,
		Turns:        s.History.Snapshot(),
		QuickReplies: quickReplies(s),
	}
}

var newUUID = func() string {
	return uuid.NewString()
}
