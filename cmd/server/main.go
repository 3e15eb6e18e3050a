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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/reddit-mcp/reddit-mcp-server/internal/config"
	"github.com/reddit-mcp/reddit-mcp-server/internal/monitoring"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
	"github.com/reddit-mcp/reddit-mcp-server/internal/scheduler"
	"github.com/reddit-mcp/reddit-mcp-server/internal/server"
	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

func main() {
	// stdout carries the MCP stdio transport
	logrus.SetOutput(os.Stderr)

	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Infof("Starting Reddit MCP server (%s transport)", cfg.Transport)

	// The session is built lazily on the first tool call
	sessions := reddit.NewProvider(cfg.RedditCredentials(), cfg.SessionOptions()...)

	monitoringService := monitoring.NewService()

	toolService := tools.NewService(sessions, tools.WithMetrics(monitoringService))

	mcp := server.New(toolService)

	schedulerService := scheduler.NewService(cfg, monitoringService, sessions)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case config.TransportSSE:
		err = serveSSE(ctx, cfg, mcp, monitoringService, sessions)
	default:
		err = serveStdio(ctx, mcp)
	}
	if err != nil {
		logrus.Errorf("Server stopped with error: %v", err)
	}

	logrus.Info("Server exited")
}

func serveStdio(ctx context.Context, mcp *mcpserver.MCPServer) error {
	stdio := mcpserver.NewStdioServer(mcp)
	stdio.SetErrorLogger(log.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0))

	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveSSE(ctx context.Context, cfg *config.Config, mcp *mcpserver.MCPServer,
	monitoringService *monitoring.Service, sessions monitoring.SessionSource) error {
	sse := mcpserver.NewSSEServer(mcp, mcpserver.WithBaseURL(cfg.BaseURL))

	// Set up HTTP server for health checks and the MCP endpoints
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", healthCheckHandler(monitoringService)).Methods("GET")

	// Metrics endpoint
	router.HandleFunc("/metrics", metricsHandler(monitoringService)).Methods("GET")

	// Manual session check
	router.HandleFunc("/session-check", sessionCheckHandler(monitoringService, sessions)).Methods("POST")

	// SSE stream and message endpoints
	router.PathPrefix("/").Handler(sse)

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sse.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Failed to close SSE sessions: %v", err)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func healthCheckHandler(monitoringService *monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if !monitoringService.Healthy() {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(`{"status":"` + status + `","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
	}
}

func metricsHandler(monitoringService *monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics := monitoringService.GetMetrics()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(metrics))
	}
}

func sessionCheckHandler(monitoringService *monitoring.Service, sessions monitoring.SessionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := monitoringService.CheckSession(context.Background(), sessions); err != nil {
				logrus.Errorf("Manual session check failed: %v", err)
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"message":"Session check triggered"}`))
	}
}
