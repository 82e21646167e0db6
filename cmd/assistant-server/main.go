// cmd/assistant-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"proposal-assistant/internal/chat"
	"proposal-assistant/internal/common/config"
	"proposal-assistant/internal/common/database"
	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/observability"
	"proposal-assistant/internal/generator"
	"proposal-assistant/internal/knowledge"
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/pipeline"
	"proposal-assistant/internal/proposales"
	"proposal-assistant/internal/server"
	"proposal-assistant/internal/session"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant server...")

	resolved, err := cfg.ProposalAPI.Resolve()
	if err != nil {
		zapLog.Fatal("proposal API configuration invalid", zap.Error(err))
	}

	obs := observability.New("assistant-server")
	defer obs.Shutdown()

	// --- Redis session store, with retry ---
	redisClient, err := database.NewRedis(cfg.Session)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	defer redisClient.Close()

	err = retryWithBackoff(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}

	// --- Domain wiring ---
	pack := knowledge.Default()
	gateway := proposales.NewClient(resolved, config.GetDuration(cfg.ProposalAPI.Timeout), log)
	llmClient := llm.NewClient(cfg.OpenAI, log)
	gen := generator.New(llmClient, pack, log)
	runner := pipeline.New(gen, gateway, pack, log)

	store := session.NewStore(redisClient, time.Duration(cfg.Session.TTL)*time.Second, log)
	registry := chat.NewRegistry(gateway, runner, log)
	orchestrator := chat.NewOrchestrator(llmClient, registry, store, log)

	handlers := server.NewHandlers(gen, gateway, runner, orchestrator, log)
	srv := server.New(handlers, obs, log)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Assistant server stopped gracefully")
}
