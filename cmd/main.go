package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"portfolio-assistant/handler"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/conversation"
	"portfolio-assistant/internal/integrations/groq"
	"portfolio-assistant/internal/integrations/newsapi"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/language"
	"portfolio-assistant/internal/repository"
	"portfolio-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// ---- AWS-backed clients, only when configured ----
	var (
		params *paramstore.Client
		store  conversation.Store
	)
	if cfg.NeedsAWS() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			fatal("failed to load AWS config", err)
		}
		if cfg.ParamPrefix != "" {
			params, err = paramstore.New(awsssm.NewFromConfig(awsCfg), cfg.ParamPrefix)
			if err != nil {
				fatal("failed to create SSM client", err)
			}
		}
		if cfg.StateTable != "" {
			store, err = repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable)
			if err != nil {
				fatal("failed to create session repository", err)
			}
		}
	}
	if store == nil {
		store, err = conversation.NewMemoryStore(cfg.SessionCacheSize)
		if err != nil {
			fatal("failed to create in-memory session store", err)
		}
		logger.Info("sessions are kept in memory", "size", cfg.SessionCacheSize)
	}

	kb, err := loadKnowledge(ctx, logger, params, cfg.KnowledgeParameter)
	if err != nil {
		fatal("failed to load knowledge base", err)
	}

	// ---- Completion ----
	groqOpts := []groq.Option{groq.WithBaseURL(cfg.CompletionBaseURL), groq.WithAPIKey(cfg.GroqAPIKey)}
	newsOpts := []newsapi.Option{
		newsapi.WithBaseURL(cfg.NewsBaseURL),
		newsapi.WithAPIKey(cfg.NewsAPIKey),
		newsapi.WithCacheTTL(cfg.NewsCacheTTL),
	}
	if params != nil {
		groqOpts = append(groqOpts, groq.WithParamStore(params))
		newsOpts = append(newsOpts, newsapi.WithParamStore(params))
	}
	llm := groq.NewClient(groqOpts...)

	composer, err := usecase.NewComposer(kb)
	if err != nil {
		fatal("failed to create prompt composer", err)
	}
	models, err := usecase.NewModelPreference(cfg.CompletionModels)
	if err != nil {
		fatal("failed to create model preference", err)
	}
	gateway, err := usecase.NewGateway(llm, composer, models, cfg.ContextWindow, cfg.CompletionTimeout, logger)
	if err != nil {
		fatal("failed to create completion gateway", err)
	}
	assistant, err := usecase.NewAssistant(store, gateway, language.NewDetector(nil), logger, cfg.MaxMessageLength)
	if err != nil {
		fatal("failed to create assistant", err)
	}

	// ---- News ----
	news, err := newsapi.NewClient(newsOpts...)
	if err != nil {
		fatal("failed to create news client", err)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(assistant, news, logger)
	if err != nil {
		fatal("failed to create handler", err)
	}

	lambda.Start(h.Handle)
}

// loadKnowledge prefers a profile stored in Parameter Store and falls back to
// the embedded one.
func loadKnowledge(ctx context.Context, logger *slog.Logger, params *paramstore.Client, name string) (knowledge.Base, error) {
	if params == nil || name == "" {
		return knowledge.Default(), nil
	}
	raw, err := params.GetParameter(ctx, name)
	if errors.Is(err, paramstore.ErrNotFound) {
		return knowledge.Default(), nil
	}
	if err != nil {
		logger.Warn("knowledge base parameter unavailable, using embedded profile", "err", err)
		return knowledge.Default(), nil
	}
	return knowledge.Parse([]byte(raw))
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
