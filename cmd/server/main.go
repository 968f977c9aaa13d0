package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"firm_site_go/config"
	"firm_site_go/middleware"
	"firm_site_go/server"
	"firm_site_go/services"
	"firm_site_go/services/i18n"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := services.NewLogger(cfg)

	if err := i18n.Load(); err != nil {
		logger.WithError(err).Fatal("Failed to load locales")
	}

	// Cache-busting versions for static assets
	middleware.InitAssetVersions("static", middleware.StaticAssets...)

	submitter := services.NewWebhookSubmitter(cfg.ContactWebhookURL, cfg.WebhookTimeout)
	srv := server.New(cfg, logger, submitter)

	go func() {
		if err := srv.Start(); err != nil {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout(cfg))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
}
