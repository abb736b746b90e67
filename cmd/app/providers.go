package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faq-assistant/internal/domain/faq"
	"github.com/yanqian/faq-assistant/internal/infra/catalogsource"
	"github.com/yanqian/faq-assistant/internal/infra/config"
	"github.com/yanqian/faq-assistant/internal/infra/llm/gemini"
	"github.com/yanqian/faq-assistant/pkg/metrics"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		Model: cfg.LLM.Model,
	}
}

func provideTokenEstimator(cfg *config.Config, logger *slog.Logger) *metrics.Estimator {
	estimator, err := metrics.NewEstimator(cfg.LLM.TokenizerEncoding)
	if err != nil {
		logger.Warn("tokenizer unavailable, estimating tokens by word count", "encoding", cfg.LLM.TokenizerEncoding, "error", err)
	}
	return estimator
}

func provideGeminiClient(cfg *config.Config, estimator *metrics.Estimator, logger *slog.Logger) (*gemini.Client, func(), error) {
	client, err := gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, gemini.Options{
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, estimator, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("gemini client close failed", "error", err)
		}
	}
	return client, cleanup, nil
}

func provideEntrySource(cfg *config.Config, logger *slog.Logger) faq.EntrySource {
	fallback := faq.StaticSource(faq.DefaultEntries())
	if path := strings.TrimSpace(cfg.FAQ.CatalogPath); path != "" {
		logger.Info("faq catalog file enabled", "path", path)
		return catalogsource.NewFileSource(path)
	}
	dsn := strings.TrimSpace(cfg.FAQ.Postgres.DSN)
	if dsn == "" {
		logger.Info("faq catalog source not set, using built-in entries")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using built-in entries", "error", err)
		return fallback
	}
	if cfg.FAQ.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.FAQ.Postgres.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using built-in entries", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using built-in entries", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("faq postgres catalog enabled")
	return catalogsource.NewPostgresSource(pool)
}

func provideCatalog(src faq.EntrySource, logger *slog.Logger) (*faq.Catalog, error) {
	if closer, ok := src.(interface{ Close() }); ok {
		defer closer.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	catalog, err := faq.LoadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Info("faq catalog loaded", "entries", catalog.Len(), "ids", catalog.IDs())
	return catalog, nil
}
