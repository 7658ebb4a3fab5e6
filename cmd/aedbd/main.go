package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aedb-backend/config"
	"aedb-backend/internal/api"
	"aedb-backend/internal/db"
	"aedb-backend/internal/objstore"
	"aedb-backend/internal/pdfcover"
	"aedb-backend/internal/service"
	"aedb-backend/internal/token"
)

func main() {
	logger := log.New(os.Stdout, "aedb-backend ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Auth.TokenKey == "" {
		logger.Fatalf("auth.token_key must be configured")
	}
	codec := token.NewCodec(cfg.Auth.TokenKey, time.Duration(cfg.Auth.TokenExpireMinutes)*time.Minute)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// The object store is optional; without it manual uploads answer 503
	// while the rest of the API keeps working.
	var store service.ObjectStore
	if cfg.Storage.Endpoint != "" {
		client, err := objstore.New(cfg.Storage)
		if err != nil {
			logger.Fatalf("failed to initialize object store: %v", err)
		}
		store = client
		logger.Printf("object store initialized at %s", cfg.Storage.Endpoint)
	} else {
		logger.Println("object store not configured; manual uploads disabled")
	}

	handler := api.NewHandler(codec, store, pdfcover.NewPoppler(), cfg.Fixtures.Dir, cfg.Media.BaseURL)
	router := api.NewRouter(gormDB, handler, codec, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
