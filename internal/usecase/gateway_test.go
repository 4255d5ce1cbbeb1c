package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/conversation"
	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/language"
)

type statusErr struct {
	status  int
	code    string
	message string
}

func (e *statusErr) Error() string           { return fmt.Sprintf("status %d: %s", e.status, e.message) }
func (e *statusErr) HTTPStatusCode() int     { return e.status }
func (e *statusErr) ProviderCode() string    { return e.code }
func (e *statusErr) ProviderMessage() string { return e.message }

type chatResult struct {
	answer string
	err    error
}

type fakeLLM struct {
	mu        sync.Mutex
	credErr   error
	byModel   map[string]chatResult
	block     bool
	calls     []string
	lastBatch []domain.ChatMessage
}

func (f *fakeLLM) EnsureCredential(context.Context) error { return f.credErr }

func (f *fakeLLM) Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, model)
	f.lastBatch = append([]domain.ChatMessage(nil), messages...)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	r, ok := f.byModel[model]
	if !ok {
		return "", errors.New("no response configured for " + model)
	}
	return r.answer, r.err
}

func (f *fakeLLM) reset() {
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}

var testModels = []string{"model-a", "model-b", "model-c"}

func notFound(model string) error {
	return &statusErr{status: http.StatusNotFound, code: "model_not_found", message: "The model `" + model + "` does not exist"}
}

func newTestGateway(t *testing.T, llm LLMClient, timeout time.Duration) (*Gateway, *ModelPreference) {
	t.Helper()
	composer, err := NewComposer(knowledge.Default())
	require.NoError(t, err)
	prefs, err := NewModelPreference(testModels)
	require.NoError(t, err)
	gw, err := NewGateway(llm, composer, prefs, 10, timeout, nil)
	require.NoError(t, err)
	return gw, prefs
}

func welcomeHistory() *conversation.History {
	return conversation.NewHistory(domain.Turn{ID: "w", Role: domain.RoleAssistant, Content: "welcome"})
}

func TestNewGateway_RequiresDependencies(t *testing.T) {
	composer, err := NewComposer(knowledge.Default())
	require.NoError(t, err)
	prefs, err := NewModelPreference(testModels)
	require.NoError(t, err)

	_, err = NewGateway(nil, composer, prefs, 0, 0, nil)
	require.Error(t, err)
	_, err = NewGateway(&fakeLLM{}, nil, prefs, 0, 0, nil)
	require.Error(t, err)
	_, err = NewGateway(&fakeLLM{}, composer, nil, 0, 0, nil)
	require.Error(t, err)

	_, err = NewModelPreference([]string{" ", ""})
	require.Error(t, err)
}

func TestGateway_SendSuccessAppendsBothTurns(t *testing.T) {
	llm := &fakeLLM{byModel: map[string]chatResult{"model-a": {answer: "Hello there"}}}
	gw, prefs := newTestGateway(t, llm, time.Second)
	hist := welcomeHistory()

	reply, err := gw.Send(context.Background(), hist, "hi", language.English)
	require.NoError(t, err)
	require.Equal(t, "Hello there", reply)
	require.Equal(t, []string{"model-a"}, llm.calls)
	require.Equal(t, 0, prefs.Start())

	turns := hist.Snapshot()
	require.Len(t, turns, 3)
	require.Equal(t, domain.RoleUser, turns[1].Role)
	require.Equal(t, "hi", turns[1].Content)
	require.Equal(t, domain.RoleAssistant, turns[2].Role)
	require.Equal(t, "Hello there", turns[2].Content)
	require.False(t, turns[2].Degraded)

	require.Equal(t, domain.RoleSystem, llm.lastBatch[0].Role)
	require.Contains(t, llm.lastBatch[0].Content, "Always respond in English.")
}

func TestGateway_FallsThroughUnavailableModelsAndRemembers(t *testing.T) {
	llm := &fakeLLM{byModel: map[string]chatResult{
		"model-a": {err: notFound("model-a")},
		"model-b": {err: &statusErr{status: http.StatusBadRequest, code: "invalid_request_error", message: "The model `model-b` has been decommissioned"}},
		"model-c": {answer: "from c"},
	}}
	gw, prefs := newTestGateway(t, llm, time.Second)
	hist := welcomeHistory()

	reply, err := gw.Send(context.Background(), hist, "hi", language.English)
	require.NoError(t, err)
	require.Equal(t, "from c", reply)
	require.Equal(t, testModels, llm.calls)
	require.Equal(t, 2, prefs.Start())

	llm.reset()
	_, err = gw.Send(context.Background(), hist, "again", language.English)
	require.NoError(t, err)
	require.Equal(t, []string{"model-c"}, llm.calls, "next send starts at the remembered model")
	require.Equal(t, 5, hist.Len())
}

func TestGateway_EmptyCompletionTriesNextModel(t *testing.T) {
	llm := &fakeLLM{byModel: map[string]chatResult{
		"model-a": {answer: "  "},
		"model-b": {answer: "ok"},
	}}
	gw, prefs := newTestGateway(t, llm, time.Second)

	reply, err := gw.Send(context.Background(), welcomeHistory(), "hi", language.English)
	require.NoError(t, err)
	require.Equal(t, "ok", reply)
	require.Equal(t, 1, prefs.Start())
}

func TestGateway_ExhaustionRollsBackAndResets(t *testing.T) {
	llm := &fakeLLM{byModel: map[string]chatResult{
		"model-a": {err: notFound("model-a")},
		"model-b": {err: notFound("model-b")},
		"model-c": {err: notFound("model-c")},
	}}
	gw, prefs := newTestGateway(t, llm, time.Second)
	prefs.Remember(1)
	hist := welcomeHistory()

	_, err := gw.Send(context.Background(), hist, "hi", language.English)
	require.Error(t, err)
	require.Equal(t, ErrorAllModelsExhausted, CodeOf(err))
	require.Equal(t, []string{"model-b", "model-c"}, llm.calls, "no wraparound to earlier candidates")
	require.Equal(t, 1, hist.Len())
	require.Equal(t, 0, prefs.Start())
}

func TestGateway_TerminalFailuresStopImmediately(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"unauthorized", &statusErr{status: http.StatusUnauthorized, code: "invalid_api_key", message: "Invalid API Key"}, ErrorAuthentication},
		{"forbidden", &statusErr{status: http.StatusForbidden}, ErrorAuthentication},
		{"rate limited", &statusErr{status: http.StatusTooManyRequests, message: "Rate limit reached for model"}, ErrorRateLimited},
		{"bad request", &statusErr{status: http.StatusBadRequest, code: "invalid_request_error", message: "messages too long"}, ErrorUpstream},
		{"server error", &statusErr{status: http.StatusInternalServerError}, ErrorUpstream},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ErrorNetwork},
		{"unknown", errors.New("boom"), ErrorUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &fakeLLM{byModel: map[string]chatResult{"model-a": {err: tc.err}}}
			gw, prefs := newTestGateway(t, llm, time.Second)
			hist := welcomeHistory()

			_, err := gw.Send(context.Background(), hist, "hi", language.English)
			require.Error(t, err)
			require.Equal(t, tc.want, CodeOf(err))
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, []string{"model-a"}, llm.calls)
			require.Equal(t, 1, hist.Len())
			require.Equal(t, 0, prefs.Start())
		})
	}
}

func TestGateway_MissingCredentialNeverCallsModel(t *testing.T) {
	llm := &fakeLLM{credErr: fmt.Errorf("groq: %w", domain.ErrCredentialMissing)}
	gw, _ := newTestGateway(t, llm, time.Second)
	hist := welcomeHistory()

	_, err := gw.Send(context.Background(), hist, "hi", language.English)
	require.Error(t, err)
	require.Equal(t, ErrorConfiguration, CodeOf(err))
	var ue *Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "credential_missing", ue.Reason)
	require.Empty(t, llm.calls)
	require.Equal(t, 1, hist.Len())

	llm.credErr = errors.New("ssm throttled")
	_, err = gw.Send(context.Background(), hist, "hi", language.English)
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "credential_unavailable", ue.Reason)
}

func TestGateway_TimeoutIsNetworkFailure(t *testing.T) {
	llm := &fakeLLM{block: true}
	gw, _ := newTestGateway(t, llm, 20*time.Millisecond)
	hist := welcomeHistory()

	_, err := gw.Send(context.Background(), hist, "hi", language.English)
	require.Error(t, err)
	require.Equal(t, ErrorNetwork, CodeOf(err))
	require.Equal(t, 1, hist.Len())
	require.Len(t, llm.calls, 1)
}

func TestGateway_SendsOnlyRecentWindow(t *testing.T) {
	llm := &fakeLLM{byModel: map[string]chatResult{"model-a": {answer: "ok"}}}
	gw, _ := newTestGateway(t, llm, time.Second)
	hist := conversation.NewHistory()
	for i := 0; i < 15; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		hist.Append(domain.Turn{Role: role, Content: fmt.Sprintf("t%d", i)})
	}

	_, err := gw.Send(context.Background(), hist, "latest", language.Spanish)
	require.NoError(t, err)

	batch := llm.lastBatch
	require.Len(t, batch, 11)
	require.Equal(t, domain.RoleSystem, batch[0].Role)
	require.Contains(t, batch[0].Content, "- Target language: es")
	require.Equal(t, "t6", batch[1].Content)
	require.Equal(t, "latest", batch[10].Content)
	require.Equal(t, domain.RoleUser, batch[10].Role)
}

func TestGateway_RejectsEmptyText(t *testing.T) {
	llm := &fakeLLM{}
	gw, _ := newTestGateway(t, llm, time.Second)

	_, err := gw.Send(context.Background(), welcomeHistory(), "   ", language.English)
	require.Equal(t, ErrorInvalidInput, CodeOf(err))
	require.Empty(t, llm.calls)
}
