package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callping/internal/config"
	"callping/internal/domain/call"
	"callping/internal/infra/sms"
	"callping/internal/infra/template"
	"callping/internal/router"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	// ==========================================
	// Dependency Injection (Manual Wiring)
	// ==========================================

	// Template Engine
	engine := template.NewEngine()

	// Twilio Provider
	provider := sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)

	// Credentials gate: live delivery only when all Twilio settings are present
	creds := call.Credentials{
		AccountID:  cfg.Twilio.AccountSID,
		Secret:     cfg.Twilio.AuthToken,
		FromNumber: cfg.Twilio.FromNumber,
	}
	if creds.Configured() {
		slog.Info("twilio credentials configured, live delivery enabled", "from", cfg.Twilio.FromNumber)
	} else {
		slog.Warn("twilio credentials not configured, running in dry-run mode")
	}

	// Service
	callService := call.NewService(engine, provider, creds)

	// Handler
	callHandler := call.NewHandler(callService)

	// Router
	r := router.New(cfg, callHandler)

	// ==========================================
	// HTTP Server with Graceful Shutdown
	// ==========================================

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
