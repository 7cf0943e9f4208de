// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"adcamp/internal/config"
	"adcamp/internal/db"
	"adcamp/internal/db/migrations"
	"adcamp/internal/queue"
	"adcamp/internal/routes"
	"adcamp/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load configuration
	cfg := config.Load()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	// Initialize database
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Object storage client, built once for the process lifetime
	s3cfg, err := config.NewS3Config()
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}
	store := services.NewS3ImageStore(s3cfg)

	// Campaign event publishing is optional; without AMQP_URL creation
	// requests run without emitting events.
	var events queue.Publisher
	if cfg.AMQPURL != "" {
		publisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP: %v", err)
		}
		defer publisher.Close()
		events = publisher
	} else {
		log.Println("AMQP_URL not set, campaign events disabled")
	}

	// Create router and setup routes
	router := routes.SetupRoutes(database.DB, cfg, store, events)

	// Create server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
