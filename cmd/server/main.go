package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studymate/internal/api"
	"studymate/internal/api/handlers"
	"studymate/internal/config"
	"studymate/internal/gemini"
	"studymate/internal/llm"
	"studymate/internal/openaicompat"
	"studymate/internal/pdf"

	"github.com/gin-gonic/gin"
)

func init() {
	// Load environment variables before anything reads them
	config.LoadDotEnv()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, closeGenerator, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.Provider, err)
	}
	defer closeGenerator()

	router := gin.New()
	router.Use(gin.Logger(), api.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	handler := handlers.NewHandler(pdf.NewExtractor(), generator, cfg.MaxUploadBytes)
	api.SetupRoutes(router, handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on port %s (model: %s)", cfg.Port, generator.ModelName())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}

// newGenerator builds the model client selected by cfg.Provider.
// The returned close function releases provider resources.
func newGenerator(ctx context.Context, cfg config.Config) (llm.Generator, func(), error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := openaicompat.NewClient(cfg.OpenAIKey, cfg.OpenAIEndpoint, cfg.OpenAIModel)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}
}
