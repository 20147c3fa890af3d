package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/majisafi/waterdelivery/backend/internal/adapters/database"
	"github.com/majisafi/waterdelivery/backend/internal/api/handlers"
	"github.com/majisafi/waterdelivery/backend/internal/api/routes"
	"github.com/majisafi/waterdelivery/backend/internal/application/services"
	"github.com/majisafi/waterdelivery/backend/internal/domain/providers"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/clients/postgres"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/notifications"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/observability"
	"github.com/majisafi/waterdelivery/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize adapters
	orderAdapter := database.NewOrderAdapter(pgClient)
	feedbackAdapter := database.NewFeedbackAdapter(pgClient)

	// Initialize the SMS notifier. The API stays up without it; orders
	// are still accepted, just not announced.
	var notifier providers.OrderNotifier
	sender, err := notifications.NewTextSMSSender(&cfg.SMS)
	if err != nil {
		log.Printf("Warning: SMS notifications disabled: %v", err)
	} else {
		auditDB := sqlx.NewDb(pgClient.DB(), "postgres")
		notifier = services.NewNotificationService(auditDB, sender, metrics)
		log.Println("SMS notifier initialized successfully")
	}

	// Initialize services
	orderService := services.NewOrderService(orderAdapter, notifier)
	feedbackService := services.NewFeedbackService(feedbackAdapter)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Set up router
	router := routes.NewRouter(orderHandler, feedbackHandler, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
