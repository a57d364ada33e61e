package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/propguard/tenant-portal/internal/adapters/advisor"
	"github.com/propguard/tenant-portal/internal/adapters/gateway"
	"github.com/propguard/tenant-portal/internal/adapters/handler"
	"github.com/propguard/tenant-portal/internal/adapters/middleware"
	"github.com/propguard/tenant-portal/internal/adapters/repository"
	"github.com/propguard/tenant-portal/internal/adapters/sessionstore"
	"github.com/propguard/tenant-portal/internal/config"
	"github.com/propguard/tenant-portal/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Connected to Redis successfully")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	backend := gateway.NewClient(cfg.BackendURL, gateway.NewMetrics(registry))
	store := sessionstore.NewRedisStore(redisClient)
	drafts := store.Drafts()
	outboxRepo := repository.NewSQLOutboxRepository(db)
	triageAdvisor := advisor.NewGeminiAdvisor(cfg.AdvisorAPIKey)

	sessionService := services.NewSessionService(backend, store)
	applicationService := services.NewApplicationService(backend, drafts, outboxRepo)
	recordingService := services.NewRecordingService(backend, triageAdvisor, outboxRepo)
	documentService := services.NewDocumentService(backend, triageAdvisor, store, outboxRepo)
	propertyService := services.NewPropertyService(backend)

	sessionMiddleware := middleware.NewSessionMiddleware(store)

	sessionHandler := handler.NewSessionHandler(sessionService)
	applicationHandler := handler.NewApplicationHandler(applicationService, store)
	dashboardHandler := handler.NewDashboardHandler(recordingService)
	leaseHandler := handler.NewLeaseHandler(documentService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/ready", healthHandler.Ready)
	mux.HandleFunc("/health/live", healthHandler.Live)

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Session lifecycle
	mux.HandleFunc("/login", sessionMiddleware.Wrap(sessionHandler.Login))
	mux.HandleFunc("/logout", sessionMiddleware.Wrap(sessionHandler.Logout))
	mux.HandleFunc("/session", sessionMiddleware.Wrap(sessionHandler.Session))
	mux.HandleFunc("/session/resume", sessionMiddleware.Wrap(sessionHandler.Resume))
	mux.HandleFunc("/session/refresh-status", sessionMiddleware.Wrap(sessionHandler.RefreshStatus))

	// Public browsing and applications
	mux.HandleFunc("/properties", sessionMiddleware.Wrap(propertyHandler.Listings))
	mux.HandleFunc("/application/draft", sessionMiddleware.Wrap(applicationHandler.Draft))
	mux.HandleFunc("/application", sessionMiddleware.Wrap(applicationHandler.Submit))
	mux.HandleFunc("/application/status", sessionMiddleware.Wrap(applicationHandler.CheckStatus))

	// Resident dashboard
	mux.HandleFunc("/dashboard/payments", sessionMiddleware.Wrap(dashboardHandler.Payments))
	mux.HandleFunc("/dashboard/maintenance", sessionMiddleware.Wrap(dashboardHandler.Maintenance))
	mux.HandleFunc("/dashboard/maintenance/update", sessionMiddleware.Wrap(dashboardHandler.TicketUpdate))
	mux.HandleFunc("/dashboard/maintenance/export", sessionMiddleware.Wrap(dashboardHandler.ExportMaintenance))

	// Lease signing and documents
	mux.HandleFunc("/documents", sessionMiddleware.Wrap(leaseHandler.Documents))
	mux.HandleFunc("/lease", sessionMiddleware.Wrap(leaseHandler.Lease))
	mux.HandleFunc("/lease/sign", sessionMiddleware.Wrap(leaseHandler.Sign))
	mux.HandleFunc("/lease/draft", sessionMiddleware.Wrap(leaseHandler.Draft))

	mux.HandleFunc("/contact-manager", sessionMiddleware.Wrap(propertyHandler.ContactManager))

	cors := middleware.CORSMiddleware(cfg.AllowedOrigins)

	log.Printf("Starting portal on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, cors(mux)); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
