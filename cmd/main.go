package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"magicprompt_server/config"
	"magicprompt_server/internal/ai"
	"magicprompt_server/internal/api"
	"magicprompt_server/internal/logger"
	"magicprompt_server/internal/wizard"
)

func main() {
	// Load .env before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer zlog.Sync()

	timeout := time.Duration(cfg.RemoteTimeoutSeconds) * time.Second

	// Without a configured provider every stage answers from its local
	// fallback generator, so startup never fails on a missing key.
	var completer ai.Completer
	switch cfg.Provider {
	case "gemini":
		gem, err := ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, timeout, zlog)
		if err != nil {
			zlog.Warnw("gemini provider unavailable, serving local fallbacks", "err", err)
		} else {
			completer = gem
			zlog.Infow("completion provider ready", "provider", "gemini", "model", cfg.GeminiModel)
		}
	case "openai":
		oai, err := ai.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, timeout, zlog)
		if err != nil {
			zlog.Warnw("openai provider unavailable, serving local fallbacks", "err", err)
		} else {
			completer = oai
			zlog.Infow("completion provider ready", "provider", "openai", "model", cfg.OpenAIModel)
		}
	default:
		zlog.Infow("no completion provider configured, serving local fallbacks")
	}

	svc := wizard.NewService(completer, zlog)
	handler := api.NewAPIHandler(svc, zlog)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, handler, cfg.StaticDir)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Timeouts guard against slow clients.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Infow("starting API server", "addr", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("API server listen error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("forced shutdown", "err", err)
	}
}
