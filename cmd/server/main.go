package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/safariwheels/fleet-booking-backend/internal/app"
	"github.com/safariwheels/fleet-booking-backend/internal/config"
	"github.com/safariwheels/fleet-booking-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	// Init modules
	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
	})

	// Janitor: hourly, cancel pending reservations that outlived their hold
	// so the days they occupy return to the pool.
	janitor := cron.New()
	_, err = janitor.AddFunc("@hourly", func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := container.ReservationService.ReleaseStaleHolds(jobCtx, cfg.PendingTTL); err != nil {
			log.Printf("janitor run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule janitor: %v", err)
	}
	janitor.Start()
	defer janitor.Stop()

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
