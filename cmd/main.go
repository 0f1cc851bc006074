package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/growthwpmaxx/face-ai-relay/internal/config"
	"github.com/growthwpmaxx/face-ai-relay/internal/face"
	"github.com/growthwpmaxx/face-ai-relay/internal/gemini"
	"github.com/growthwpmaxx/face-ai-relay/internal/logging"
	"github.com/growthwpmaxx/face-ai-relay/internal/server"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.APIKey == "" {
		// keep serving: every relay call answers 500 until the key is set and the process restarted
		logrus.Error("GEMINI_API_KEY is not configured")
	}

	// --- Face module wiring ---
	geminiClient := gemini.NewClient(cfg.BaseURL, cfg.APIKey)
	faceService := face.NewService(geminiClient, cfg.VisionModel, cfg.ChatModel)
	faceHandler := face.NewHandler(faceService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(cfg.AllowedOrigins, faceHandler),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      gemini.Timeout + 30*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gemini.Timeout+time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}
