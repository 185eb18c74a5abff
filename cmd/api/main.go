// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pitchdeck-ai/platform/internal/config"
	"github.com/pitchdeck-ai/platform/internal/export"
	"github.com/pitchdeck-ai/platform/internal/handler"
	"github.com/pitchdeck-ai/platform/internal/llm"
	"github.com/pitchdeck-ai/platform/internal/middleware"
	natsclient "github.com/pitchdeck-ai/platform/internal/nats"
	"github.com/pitchdeck-ai/platform/internal/service"
	"github.com/pitchdeck-ai/platform/internal/store"
	"github.com/pitchdeck-ai/platform/pkg/logger"
	"github.com/pitchdeck-ai/platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "pitchdeck-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Open the deck store
	deckStore, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open deck store", zap.Error(err))
		os.Exit(1)
	}
	defer deckStore.Close()

	// Connect to NATS
	natsClient, err := natsclient.Connect(ctx, natsclient.Config{
		URL:      cfg.NATSURL,
		CAFile:   cfg.NATSCAFile,
		CertFile: cfg.NATSCertFile,
		KeyFile:  cfg.NATSKeyFile,
		Token:    cfg.NATSToken,
	}, log)
	if err != nil {
		log.Error("failed to connect to NATS", zap.Error(err))
		os.Exit(1)
	}
	defer natsClient.Close()

	// Ensure JetStream stream exists
	streamManager := natsclient.NewStreamManager(natsClient)
	if err := streamManager.EnsureStream(ctx); err != nil {
		log.Error("failed to ensure stream", zap.Error(err))
		os.Exit(1)
	}

	// Initialize LLM client; a missing key leaves the client nil and the
	// services fall back to canned responses
	llmClient := newLLMClient(cfg, log)

	// Initialize services
	conversationSvc := service.NewConversationService(streamManager, log)
	deckSvc := service.NewDeckService(deckStore, log)
	versionSvc := service.NewVersionService(deckStore, log)
	generateSvc := service.NewGenerateService(llmClient, log)
	chatSvc := service.NewChatService(streamManager, conversationSvc, deckSvc, llmClient, log)

	pptxRenderer := export.NewPPTXRenderer(cfg.ExportServiceURL, cfg.ExportRequestTimeout)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsClient)
	conversationHandler := handler.NewConversationHandler(conversationSvc, log)
	chatHandler := handler.NewChatHandler(chatSvc, conversationSvc, log)
	deckHandler := handler.NewDeckHandler(deckSvc, generateSvc, log)
	versionHandler := handler.NewVersionHandler(versionSvc, log)
	generateHandler := handler.NewGenerateHandler(generateSvc, log)
	exportHandler := handler.NewExportHandler(pptxRenderer, log)
	templateHandler := handler.NewTemplateHandler()

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Conversations and chat streaming
		r.Route("/conversations", func(r chi.Router) {
			r.Use(middleware.RequireScope(middleware.ScopeChat))

			r.Post("/", conversationHandler.Create)
			r.Get("/", conversationHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", conversationHandler.Get)
				r.Delete("/", conversationHandler.Delete)

				r.Get("/messages", chatHandler.ListMessages)

				r.Get("/stream", chatHandler.Stream)
				r.Post("/stream", chatHandler.StreamMessage)
			})
		})

		// Decks
		r.Route("/decks", func(r chi.Router) {
			r.Use(middleware.RequireScope(middleware.ScopeDecks))

			r.Get("/", deckHandler.List)
			r.Post("/generate", deckHandler.Generate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deckHandler.Get)
				r.Put("/", deckHandler.Update)
				r.Delete("/", deckHandler.Delete)
			})
		})

		// Slide version history
		r.Route("/slides/{slideID}/versions", func(r chi.Router) {
			r.Use(middleware.RequireScope(middleware.ScopeDecks))

			r.Post("/", versionHandler.Save)
			r.Get("/", versionHandler.List)
			r.Post("/{versionID}/restore", versionHandler.Restore)
		})

		// Content generation
		r.Route("/generate", func(r chi.Router) {
			r.Use(middleware.RequireScope(middleware.ScopeDecks))

			r.Post("/outline", generateHandler.Outline)
			r.Post("/slide-content", generateHandler.SlideContent)
			r.Post("/script", generateHandler.Script)
			r.Post("/slide-script", generateHandler.SlideScript)
			r.Post("/slide-assist", generateHandler.SlideAssist)
			r.Post("/search-images", generateHandler.SearchImages)
		})

		// Export
		r.With(middleware.RequireScope(middleware.ScopeExport)).Post("/export", exportHandler.Export)

		// Industry templates
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templateHandler.List)
			r.Get("/{industry}", templateHandler.Get)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// newLLMClient picks a provider from configuration. The default provider
// wins when its key is present, otherwise any configured key is used.
func newLLMClient(cfg *config.Config, log *logger.Logger) llm.Client {
	type candidate struct {
		provider llm.Provider
		key      string
	}

	candidates := []candidate{
		{llm.ProviderOpenAI, cfg.OpenAIAPIKey},
		{llm.ProviderAnthropic, cfg.AnthropicAPIKey},
	}
	if cfg.DefaultLLM == string(llm.ProviderAnthropic) {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	for _, c := range candidates {
		if c.key == "" {
			continue
		}
		client, err := llm.NewClient(c.provider, c.key)
		if err != nil {
			log.Warn("failed to create LLM client",
				zap.String("provider", string(c.provider)),
				zap.Error(err),
			)
			continue
		}
		log.Info("LLM client ready", zap.String("provider", client.Name()))
		return client
	}

	log.Warn("no LLM credential configured, using canned responses")
	return nil
}
