package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/letterdex/internal/config"
	"github.com/kailas-cloud/letterdex/internal/corpus"
	logpkg "github.com/kailas-cloud/letterdex/internal/logger"
	"github.com/kailas-cloud/letterdex/internal/metrics"
	"github.com/kailas-cloud/letterdex/internal/repository/index"
	chiTransport "github.com/kailas-cloud/letterdex/internal/transport/chi"
	healthuc "github.com/kailas-cloud/letterdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/letterdex/internal/usecase/search"
	"github.com/kailas-cloud/letterdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting letterdex API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("corpus_file", cfg.Corpus.File),
	)

	// Register metrics explicitly (no init())
	if err := metrics.RegisterSearchMetrics(nil); err != nil {
		logger.Fatal("Failed to register search metrics", zap.Error(err))
	}
	if err := metrics.RegisterHTTPMetrics(nil); err != nil {
		logger.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	docs, err := corpus.Load(cfg.Corpus)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}

	start := time.Now()
	idx := index.Build(docs)
	metrics.SetIndexSize(idx.CorpusLen(), idx.Len())
	logger.Info("Index built",
		zap.Int("corpus", idx.CorpusLen()),
		zap.Int("distinct", idx.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	searchSvc := searchuc.New(idx)

	healthSvc := healthuc.New(idx)
	if cfg.Corpus.File != "" {
		healthSvc.WithCheck("corpus_file", corpus.FileChecker{Path: cfg.Corpus.File})
	}

	server := chiTransport.NewServer(searchSvc, idx, healthSvc, chiTransport.Limits{
		DefaultN: cfg.Search.DefaultN,
		MaxN:     cfg.Search.MaxN,
		MinScore: cfg.Search.MinScore,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
