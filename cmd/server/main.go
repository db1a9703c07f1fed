package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/elus/internal/handlers"
	"github.com/alimgiray/elus/internal/repositories"
	"github.com/alimgiray/elus/internal/services"
	"github.com/alimgiray/elus/pkg/config"
	"github.com/alimgiray/elus/pkg/database"
	"github.com/alimgiray/elus/pkg/logger"
	"github.com/gin-gonic/gin"
)

// store is what the router needs from either backend
type store interface {
	repositories.PersonStore
	handlers.Pinger
}

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Log.Level)
	gin.SetMode(cfg.Server.Mode)

	// Initialize store
	var personStore store
	switch cfg.Database.Backend {
	case config.BackendMemory:
		personStore = repositories.NewMemoryPersonRepository()
		logger.Info("Using in-memory store")
	default:
		if err := database.Init(cfg.Database.URL); err != nil {
			logger.Fatalf("Failed to initialize database %s: %v", cfg.Database.URL, err)
		}
		defer database.Close()
		personStore = repositories.NewPersonRepository(database.DB)
	}

	// Initialize dependencies
	personService := services.NewPersonService(personStore)
	exportService := services.NewExportService(personService)

	router := handlers.NewRouter(personService, exportService, personStore)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}
