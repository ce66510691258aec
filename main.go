package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/keenanbraz/merch-digest-bot/internal/ai"
	"github.com/keenanbraz/merch-digest-bot/internal/cache"
	"github.com/keenanbraz/merch-digest-bot/internal/command"
	"github.com/keenanbraz/merch-digest-bot/internal/config"
	"github.com/keenanbraz/merch-digest-bot/internal/digest"
	"github.com/keenanbraz/merch-digest-bot/internal/rules"
	"github.com/keenanbraz/merch-digest-bot/internal/server"
	"github.com/keenanbraz/merch-digest-bot/internal/sources"
	"github.com/keenanbraz/merch-digest-bot/internal/telegram"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ruleset := rules.Load(cfg.RulesConfigPath)
	if err := ruleset.Validate(); err != nil {
		slog.Error("invalid ruleset", "error", err)
		os.Exit(1)
	}

	digestCache := cache.New(cfg.DigestCacheTTL)
	defer digestCache.Close()

	fetcher := sources.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, ruleset.QueryTerms)

	pipeline := digest.NewPipeline(ruleset, digest.Options{
		MinScore:            cfg.MinRelevanceScore,
		TrendingCap:         cfg.TrendingCap,
		DomainFilter:        cfg.DomainFilterEnabled,
		ImportantInjuryOnly: cfg.ImportantInjuryOnly,
	})

	builder := digest.NewBuilder(fetcher, pipeline)
	if cfg.OpenAIAPIKey != "" {
		builder.WithSummarizer(ai.NewOpenAIClient(cfg.OpenAIAPIKey))
		slog.Info("ai summary enabled")
	}

	parser := command.NewParser(cfg.DefaultLeague, cfg.DefaultLookbackDays)
	handler := server.NewHandler(parser, builder, digestCache, cfg.NewsAPIKey != "", cfg.FetchTimeout)

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			slog.Warn("telegram broadcast disabled", "error", err)
		} else {
			handler.WithNotifier(notifier)
			slog.Info("telegram broadcast enabled", "chat_id", cfg.TelegramChatID)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: server.NewRouter(handler),
	}

	go func() {
		slog.Info("starting merch digest bot", "port", cfg.ServerPort, "league", cfg.DefaultLeague)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("merch digest bot stopped gracefully")
}

func setupLogging(level string) {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
