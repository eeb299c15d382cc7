// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/container"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/presentation/http/server"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	// Step 1: Initialize channeled logging
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Logging initialized")

	// Step 2: Ensure the content and upload directories exist
	for _, dir := range []string{config.ContentDir, config.UploadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	logger.Startup().Info("Storage directories ready", "contentDir", config.ContentDir, "uploadDir", config.UploadDir)

	// Step 3: Create dependency injection container
	perfTracker := performance.NewTracker()
	appContainer := container.NewContainer(logger, perfTracker)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 4: Touch each content area so seed files exist before traffic.
	if err := warmStores(appContainer); err != nil {
		return fmt.Errorf("store initialization failed: %w", err)
	}
	logger.Startup().Info("Content stores initialized")

	// Step 5: Start HTTP server
	port := config.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// warmStores forces first-read seeding for every content area
func warmStores(c *container.Container) error {
	if _, err := c.ProjectService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.NewsService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.BlogService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.CareerService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.MediaService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.ClientService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.PageService.ListRaw(); err != nil {
		return err
	}
	if _, err := c.ContactService.List(); err != nil {
		return err
	}
	if _, err := c.UploadService.List(); err != nil {
		return err
	}
	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
