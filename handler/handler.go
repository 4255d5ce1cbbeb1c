// Package handler adapts API Gateway proxy events to the chat assistant.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/newsapi"
	"portfolio-assistant/internal/language"
	"portfolio-assistant/internal/locale"
	"portfolio-assistant/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

type Assistant interface {
	Send(ctx context.Context, in usecase.SendInput) (usecase.SendOutput, error)
	Open(ctx context.Context, lang string) (usecase.SessionView, error)
	History(ctx context.Context, sessionID string) (usecase.SessionView, error)
	Clear(ctx context.Context, sessionID, lang string) (usecase.SessionView, error)
}

type NewsFeed interface {
	Latest(ctx context.Context, category newsapi.Category) (newsapi.Feed, error)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Language  string `json:"language"`
}

type languageRequest struct {
	Language string `json:"language"`
}

type chatResponse struct {
	Reply        string              `json:"reply"`
	SessionID    string              `json:"sessionId"`
	Language     language.Code       `json:"language"`
	Outcome      string              `json:"outcome"`
	ErrorCode    string              `json:"errorCode,omitempty"`
	Notice       string              `json:"notice,omitempty"`
	QuickReplies []locale.QuickReply `json:"quickReplies"`
}

type sessionResponse struct {
	SessionID    string              `json:"sessionId"`
	Language     language.Code       `json:"language"`
	Turns        []domain.Turn       `json:"turns"`
	QuickReplies []locale.QuickReply `json:"quickReplies"`
	UI           locale.UI           `json:"ui"`
}

type languageEntry struct {
	language.Info
	UI locale.UI `json:"ui"`
}

type languagesResponse struct {
	Default   language.Code   `json:"default"`
	Languages []languageEntry `json:"languages"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type Handler struct {
	assistant Assistant
	news      NewsFeed
	logger    *slog.Logger
}

// NewHandler wires the routes. news may be nil, in which case /news answers
// 503.
func NewHandler(assistant Assistant, news NewsFeed, logger *slog.Logger) (*Handler, error) {
	if assistant == nil {
		return nil, errors.New("handler: assistant must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{assistant: assistant, news: news, logger: logger}, nil
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = newUUID()
	}
	logger := h.logger.With("correlation_id", correlationID, "method", req.HTTPMethod, "path", req.Path)

	resp := h.route(ctx, logger, req)
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	resp.Headers[correlationHeader] = correlationID
	logger.Info("request handled", "status", resp.StatusCode)
	return resp, nil
}

func (h *Handler) route(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	segs := segments(req.Path)
	method := strings.ToUpper(req.HTTPMethod)

	switch {
	case method == http.MethodPost && match(segs, "chat"):
		return h.chat(ctx, logger, req)
	case method == http.MethodPost && match(segs, "chat", "sessions"):
		return h.open(ctx, logger, req)
	case method == http.MethodGet && len(segs) == 3 && match(segs[:2], "chat", "sessions"):
		return h.history(ctx, logger, segs[2])
	case method == http.MethodPost && len(segs) == 4 && match(segs[:2], "chat", "sessions") && segs[3] == "clear":
		return h.clear(ctx, logger, req, segs[2])
	case method == http.MethodGet && match(segs, "languages"):
		return h.languages()
	case method == http.MethodGet && match(segs, "news"):
		return h.latestNews(ctx, logger, req)
	default:
		return jsonResponse(http.StatusNotFound, errorResponse{Error: string(usecase.ErrorNotFound), Reason: "unknown_route"})
	}
}

func (h *Handler) chat(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body chatRequest
	if err := decodeBody(req, &body, false); err != nil {
		return invalidBody()
	}
	out, err := h.assistant.Send(ctx, usecase.SendInput{
		SessionID: body.SessionID,
		Message:   body.Message,
		Language:  body.Language,
	})
	if err != nil {
		return errorToResponse(logger, err)
	}
	if out.ErrorCode != "" {
		logger.Warn("served offline answer", "session_id", out.SessionID, "code", out.ErrorCode)
	}
	resp := jsonResponse(http.StatusOK, chatResponse{
		Reply:        out.Reply,
		SessionID:    out.SessionID,
		Language:     out.Language,
		Outcome:      string(out.Outcome),
		ErrorCode:    string(out.ErrorCode),
		Notice:       out.Notice,
		QuickReplies: nonNil(out.QuickReplies),
	})
	resp.Headers["Content-Language"] = string(out.Language)
	return resp
}

// open falls back to Accept-Language when the body names no language.
func (h *Handler) open(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var body languageRequest
	if err := decodeBody(req, &body, true); err != nil {
		return invalidBody()
	}
	lang := body.Language
	if strings.TrimSpace(lang) == "" {
		if code, ok := language.MatchAcceptLanguage(headerValue(req.Headers, "Accept-Language")); ok {
			lang = string(code)
		}
	}
	view, err := h.assistant.Open(ctx, lang)
	if err != nil {
		return errorToResponse(logger, err)
	}
	return sessionToResponse(http.StatusCreated, view)
}

func (h *Handler) history(ctx context.Context, logger *slog.Logger, id string) events.APIGatewayProxyResponse {
	view, err := h.assistant.History(ctx, id)
	if err != nil {
		return errorToResponse(logger, err)
	}
	return sessionToResponse(http.StatusOK, view)
}

func (h *Handler) clear(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest, id string) events.APIGatewayProxyResponse {
	var body languageRequest
	if err := decodeBody(req, &body, true); err != nil {
		return invalidBody()
	}
	view, err := h.assistant.Clear(ctx, id, body.Language)
	if err != nil {
		return errorToResponse(logger, err)
	}
	return sessionToResponse(http.StatusOK, view)
}

func (h *Handler) languages() events.APIGatewayProxyResponse {
	out := languagesResponse{Default: language.Default}
	for _, info := range language.All() {
		out.Languages = append(out.Languages, languageEntry{Info: info, UI: locale.Strings(info.Code)})
	}
	return jsonResponse(http.StatusOK, out)
}

func (h *Handler) latestNews(ctx context.Context, logger *slog.Logger, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if h.news == nil {
		return jsonResponse(http.StatusServiceUnavailable, errorResponse{Error: string(usecase.ErrorConfiguration), Reason: "news_disabled"})
	}
	category, err := newsapi.ParseCategory(req.QueryStringParameters["category"])
	if err != nil {
		return jsonResponse(http.StatusBadRequest, errorResponse{Error: string(usecase.ErrorInvalidInput), Reason: "unknown_category"})
	}
	feed, err := h.news.Latest(ctx, category)
	switch {
	case errors.Is(err, newsapi.ErrNoAPIKey):
		logger.Error("news feed not configured", "err", err)
		return jsonResponse(http.StatusServiceUnavailable, errorResponse{Error: string(usecase.ErrorConfiguration), Reason: "news_key_missing"})
	case err != nil:
		logger.Error("news feed failed", "category", category, "err", err)
		return jsonResponse(http.StatusBadGateway, errorResponse{Error: string(usecase.ErrorUpstream), Reason: "news_unavailable"})
	}
	return jsonResponse(http.StatusOK, feed)
}

func sessionToResponse(status int, v usecase.SessionView) events.APIGatewayProxyResponse {
	resp := jsonResponse(status, sessionResponse{
		SessionID:    v.SessionID,
		Language:     v.Language,
		Turns:        v.Turns,
		QuickReplies: nonNil(v.QuickReplies),
		UI:           locale.Strings(v.Language),
	})
	resp.Headers["Content-Language"] = string(v.Language)
	return resp
}

func errorToResponse(logger *slog.Logger, err error) events.APIGatewayProxyResponse {
	var ue *usecase.Error
	if !errors.As(err, &ue) {
		logger.Error("unexpected error", "err", err)
		return jsonResponse(http.StatusInternalServerError, errorResponse{Error: string(usecase.ErrorInternal)})
	}
	status := statusFor(ue.Code)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", ue.Code, "reason", ue.Reason, "err", err)
	}
	return jsonResponse(status, errorResponse{Error: string(ue.Code), Reason: ue.Reason})
}

func statusFor(code usecase.ErrorCode) int {
	switch code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest
	case usecase.ErrorNotFound:
		return http.StatusNotFound
	case usecase.ErrorRateLimited:
		return http.StatusTooManyRequests
	case usecase.ErrorUpstream, usecase.ErrorAllModelsExhausted, usecase.ErrorAuthentication, usecase.ErrorNetwork, usecase.ErrorModelUnavailable:
		return http.StatusBadGateway
	case usecase.ErrorConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func invalidBody() events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusBadRequest, errorResponse{Error: string(usecase.ErrorInvalidInput), Reason: "invalid_body"})
}

// decodeBody unmarshals the request body into v. An empty body is accepted
// only when optional is set.
func decodeBody(req events.APIGatewayProxyRequest, v any, optional bool) error {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return err
		}
		raw = decoded
	}
	if strings.TrimSpace(string(raw)) == "" {
		if optional {
			return nil
		}
		return errors.New("empty body")
	}
	return json.Unmarshal(raw, v)
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	buf, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		buf = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(buf),
	}
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func segments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func match(segs []string, want ...string) bool {
	if len(segs) != len(want) {
		return false
	}
	for i := range want {
		if segs[i] != want[i] {
			return false
		}
	}
	return true
}

func nonNil(q []locale.QuickReply) []locale.QuickReply {
	if q == nil {
		return []locale.QuickReply{}
	}
	return q
}

var newUUID = func() string {
	return uuid.NewString()
}
