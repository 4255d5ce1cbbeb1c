package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"portfolio-assistant/internal/conversation"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
)

const (
	defaultContextWindow = 10
	defaultTimeout       = 25 * time.Second
)

// LLMClient is the completion service. EnsureCredential resolves the API
// credential so a missing one is reported before any request is attempted.
type LLMClient interface {
	EnsureCredential(ctx context.Context) error
	Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// providerError is implemented by integration errors that carry the
// provider's structured error body.
type providerError interface {
	ProviderCode() string
	ProviderMessage() string
}

// ModelPreference is the ordered list of candidate models plus the index of
// the last one that worked. It is shared by every session in the process.
type ModelPreference struct {
	mu         sync.Mutex
	candidates []string
	start      int
}

func NewModelPreference(models []string) (*ModelPreference, error) {
	var candidates []string
	for _, m := range models {
		if m = strings.TrimSpace(m); m != "" {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New("usecase: at least one model is required")
	}
	return &ModelPreference{candidates: candidates}, nil
}

func (p *ModelPreference) Candidates() []string {
	return append([]string(nil), p.candidates...)
}

func (p *ModelPreference) Start() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.start
}

func (p *ModelPreference) Remember(i int) {
	if i < 0 || i >= len(p.candidates) {
		return
	}
	p.mu.Lock()
	p.start = i
	p.mu.Unlock()
}

func (p *ModelPreference) Reset() { p.Remember(0) }

// Gateway sends one user turn to the completion service, walking the model
// list until a candidate answers.
type Gateway struct {
	llm      LLMClient
	composer *Composer
	models   *ModelPreference
	window   int
	timeout  time.Duration
	logger   *slog.Logger
}

func NewGateway(llm LLMClient, composer *Composer, models *ModelPreference, window int, timeout time.Duration, logger *slog.Logger) (*Gateway, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if composer == nil {
		return nil, errors.New("usecase: composer must not be nil")
	}
	if models == nil {
		return nil, errors.New("usecase: model preference must not be nil")
	}
	if window <= 0 {
		window = defaultContextWindow
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		llm:      llm,
		composer: composer,
		models:   models,
		window:   window,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Send appends the user turn and, on success, the assistant reply to hist.
// On any error hist is left exactly as it was.
func (g *Gateway) Send(ctx context.Context, hist *conversation.History, userText string, lang language.Code) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", newError(ErrorInvalidInput, "empty_message", nil)
	}
	if err := g.llm.EnsureCredential(ctx); err != nil {
		if errors.Is(err, domain.ErrCredentialMissing) {
			return "", newError(ErrorConfiguration, "credential_missing", err)
		}
		return "", newError(ErrorConfiguration, "credential_unavailable", err)
	}
	lang = lang.OrDefault()

	before := hist.Len()
	hist.Append(newTurn(domain.RoleUser, userText, lang))

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := g.messages(hist, lang)
	candidates := g.models.Candidates()
	var lastErr error
	for i := g.models.Start(); i < len(candidates); i++ {
		model := candidates[i]
		content, err := g.llm.Chat(ctx, model, messages)
		if err == nil && strings.TrimSpace(content) == "" {
			err = domain.ErrEmptyCompletion
		}
		if err == nil {
			g.models.Remember(i)
			hist.Append(newTurn(domain.RoleAssistant, content, lang))
			g.logger.Info("completion succeeded", "model", model, "language", lang)
			return content, nil
		}

		code := classify(ctx, err)
		g.logger.Warn("completion failed", "model", model, "code", code, "err", err)
		if code == ErrorModelUnavailable {
			lastErr = err
			continue
		}
		hist.Truncate(before)
		return "", newError(code, reasonFor(code), err)
	}

	hist.Truncate(before)
	g.models.Reset()
	return "", newError(ErrorAllModelsExhausted, "all_models_exhausted", lastErr)
}

func (g *Gateway) messages(hist *conversation.History, lang language.Code) []domain.ChatMessage {
	window := hist.Window(g.window)
	out := make([]domain.ChatMessage, 0, len(window)+1)
	out = append(out, domain.ChatMessage{Role: domain.RoleSystem, Content: g.composer.Compose(lang)})
	for _, t := range window {
		out = append(out, t.Message())
	}
	return out
}

// classify maps a failed attempt to an error code. Only ErrorModelUnavailable
// lets the loop move on to the next candidate.
func classify(ctx context.Context, err error) ErrorCode {
	if errors.Is(err, domain.ErrEmptyCompletion) {
		return ErrorModelUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ErrorNetwork
	}

	var code, message string
	var pe providerError
	if errors.As(err, &pe) {
		code, message = pe.ProviderCode(), pe.ProviderMessage()
	}
	var sc httpStatusCoder
	if errors.As(err, &sc) {
		status := sc.HTTPStatusCode()
		switch {
		case status == http.StatusNotFound || namesUnavailableModel(code, message):
			return ErrorModelUnavailable
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return ErrorAuthentication
		case status == http.StatusTooManyRequests:
			return ErrorRateLimited
		default:
			return ErrorUpstream
		}
	}

	var ne net.Error
	if errors.As(err, &ne) {
		return ErrorNetwork
	}
	return ErrorUpstream
}

// namesUnavailableModel reports whether the provider rejected the model
// itself rather than the request. A bare invalid_request_error is not enough.
func namesUnavailableModel(code, message string) bool {
	switch strings.ToLower(code) {
	case "model_not_found", "model_decommissioned", "model_not_available":
		return true
	}
	msg := strings.ToLower(message)
	if !strings.Contains(msg, "model") {
		return false
	}
	for _, s := range []string{"decommissioned", "not found", "does not exist", "not supported", "no longer supported"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func reasonFor(code ErrorCode) string {
	switch code {
	case ErrorAuthentication:
		return "completion_unauthorized"
	case ErrorRateLimited:
		return "completion_rate_limited"
	case ErrorNetwork:
		return "completion_unreachable"
	default:
		return "completion_error"
	}
}

var now = func() time.Time { return time.Now().UTC() }

var newTurnID = func() string { return ulid.Make().String() }

func newTurn(role domain.Role, content string, lang language.Code) domain.Turn {
	return domain.Turn{
		ID:        newTurnID(),
		Role:      role,
		Content:   content,
		Timestamp: now(),
		Language:  lang,
	}
}
