package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/propguard/tenant-portal/internal/adapters/messaging"
	"github.com/propguard/tenant-portal/internal/adapters/outbox"
	"github.com/propguard/tenant-portal/internal/config"
)

const healthAddr = ":8090"

func main() {
	log.Println("Starting outbox relay service...")

	cfg := config.LoadRelayConfig()

	// The relay exists to move rows from the outbox table onto the queue;
	// without either end there is nothing to supervise.
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("relay: open database: %v", err)
	}
	defer db.Close()

	broker, err := messaging.Connect(cfg.RabbitMQURL, cfg.PortalQueueName)
	if err != nil {
		log.Fatalf("relay: connect rabbitmq: %v", err)
	}
	defer broker.Close()
	log.Printf("relay: publishing portal events to queue %q", cfg.PortalQueueName)

	relayWorker := outbox.NewRelay(db, cfg.DatabaseURL, broker)

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/health", probe(func() bool {
		return relayWorker.IsHealthy()
	}))
	healthMux.HandleFunc("/health/ready", probe(func() bool {
		return relayWorker.IsReady() && !broker.IsClosed()
	}))

	healthServer := &http.Server{Addr: healthAddr, Handler: healthMux}
	go func() {
		log.Printf("relay: health server listening on %s", healthAddr)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("relay: health server error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		log.Println("relay: starting event processing worker...")
		if err := relayWorker.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("relay: received signal %v, shutting down...", sig)
	case err := <-errChan:
		log.Printf("relay: worker failed, shutting down: %v", err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("relay: health server shutdown: %v", err)
	}

	log.Println("relay: shutdown complete")
}

func probe(ok func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, httpStatus := "UP", http.StatusOK
		if !ok() {
			status, httpStatus = "DOWN", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    status,
			"component": "outbox-relay",
		})
	}
}
