package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/config"
	_ "github.com/suncom1029-bot/ai-todo-manager/docs" // Swagger docs
	extractionHTTP "github.com/suncom1029-bot/ai-todo-manager/internal/extraction/delivery/http"
	extractionUC "github.com/suncom1029-bot/ai-todo-manager/internal/extraction/usecase"
	"github.com/suncom1029-bot/ai-todo-manager/internal/httpserver"
	"github.com/suncom1029-bot/ai-todo-manager/internal/middleware"
	summaryHTTP "github.com/suncom1029-bot/ai-todo-manager/internal/summary/delivery/http"
	summaryUC "github.com/suncom1029-bot/ai-todo-manager/internal/summary/usecase"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository/taskstore"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/datemath"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/gauth"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/llmprovider"
	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// @title       AI Todo Manager API
// @description Natural-language task extraction and period summaries backed by LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Todo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store URL: %s", cfg.TaskStore.URL)

	// 3. Temporal resolver
	resolver, err := datemath.NewResolver(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 5. Task store repository
	storeClient := taskstore.NewClient(cfg.TaskStore.URL, cfg.TaskStore.AccessToken)
	taskRepo := taskstore.New(storeClient, logger)

	// 6. Auth + rate limiting middleware
	verifier := gauth.NewGoogleVerifier(cfg.Auth.VerifyTimeout)
	mw, err := middleware.New(logger, verifier, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize middleware: ", err)
		return
	}

	// 7. Use cases and delivery
	extractionHandler := extractionHTTP.New(logger, extractionUC.New(logger, llmManager, resolver))
	summaryHandler := summaryHTTP.New(logger, summaryUC.New(logger, taskRepo, llmManager, resolver))

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		ExtractionHandler: extractionHandler,
		SummaryHandler:    summaryHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
