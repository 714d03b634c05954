package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dailydewey/internal/config"
	"dailydewey/internal/dataset"
	"dailydewey/internal/db"
	"dailydewey/internal/metrics"
	"dailydewey/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed from the optional dataset file
	records, err := dataset.Load(cfg.DatasetFile)
	if err != nil {
		log.Fatalf("Failed to load dataset file: %v", err)
	}
	if len(records) > 0 {
		if err := database.SeedClassifications(ctx, records); err != nil {
			log.Fatalf("Failed to seed classifications: %v", err)
		}
		log.Printf("Seeded %d classification records from %s", len(records), cfg.DatasetFile)
	}

	count, err := database.CountClassifications(ctx)
	if err != nil {
		log.Fatalf("Failed to count classifications: %v", err)
	}
	if count == 0 {
		log.Println("Warning: classification table is empty; /daily will return 500 until it is populated")
	} else {
		log.Printf("Classification table holds %d records", count)
	}

	// Initialize metrics
	metrics.Init()

	// Initialize server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
