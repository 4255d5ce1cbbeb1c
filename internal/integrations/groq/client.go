// Package groq talks to an OpenAI-compatible chat completions endpoint,
// Groq's by default.
package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	tokenParameter = "groq-token"
	temperature    = 0.7
	topP           = 1
	maxTokens      = 1024
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("groq: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("groq: status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error           { return e.Err }
func (e *StatusError) HTTPStatusCode() int     { return e.StatusCode }
func (e *StatusError) ProviderCode() string    { return e.Code }
func (e *StatusError) ProviderMessage() string { return e.Message }

// Client resolves its API key lazily: from the static key when one is set,
// otherwise from Parameter Store. A successfully resolved key is reused for
// the life of the process; failures are retried on the next call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	getter     paramstore.Getter

	mu  sync.Mutex
	api *openai.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u := strings.TrimSpace(baseURL); u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithAPIKey sets a static key and skips Parameter Store.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// WithParamStore reads the key from the groq-token parameter.
func WithParamStore(g paramstore.Getter) Option {
	return func(c *Client) {
		c.getter = g
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) EnsureCredential(ctx context.Context) error {
	_, err := c.client(ctx)
	return err
}

func (c *Client) Chat(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	if strings.TrimSpace(model) == "" {
		return "", errors.New("groq: model must not be empty")
	}
	api, err := c.client(ctx)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
		Stream:      false,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	resp, err := api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices in response: %w", domain.ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) client(ctx context.Context) (*openai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}
	key, err := c.resolveKey(ctx)
	if err != nil {
		return nil, err
	}
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.httpClient
	c.api = openai.NewClientWithConfig(cfg)
	return c.api, nil
}

func (c *Client) resolveKey(ctx context.Context) (string, error) {
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	if c.getter == nil {
		return "", fmt.Errorf("groq: no api key configured: %w", domain.ErrCredentialMissing)
	}
	key, err := paramstore.Token(ctx, c.getter, tokenParameter)
	if errors.Is(err, paramstore.ErrNotFound) {
		return "", fmt.Errorf("groq: %v: %w", err, domain.ErrCredentialMissing)
	}
	if err != nil {
		return "", fmt.Errorf("groq: fetch api key: %w", err)
	}
	return key, nil
}

func wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{
			StatusCode: apiErr.HTTPStatusCode,
			Code:       providerCode(apiErr),
			Message:    apiErr.Message,
			Err:        err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := string(reqErr.Body)
		if msg == "" && reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &StatusError{StatusCode: reqErr.HTTPStatusCode, Message: msg, Err: err}
	}
	return fmt.Errorf("groq: request failed: %w", err)
}

// providerCode prefers the error code and falls back to the error type.
func providerCode(e *openai.APIError) string {
	if s, ok := e.Code.(string); ok && s != "" {
		return s
	}
	return e.Type
}
