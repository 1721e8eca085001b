package main

import (
	"context"
	"errors"
	"log"
	"midpoint-service/internal/api"
	"midpoint-service/internal/app"
	"midpoint-service/internal/config"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It loads configuration, wires adapters (Google Maps, caches, Kafka) behind
// ports and serves the HTTP API until interrupted.
func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("shutdown: close resources: %v", err)
		}
	}()

	router := api.NewRouter(a.Midpoint)

	// WriteTimeout covers the worst cold-cache search with default per-call
	// timeouts: four geocodes, five nearby searches and one matrix call (165s).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      180 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=:%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}
