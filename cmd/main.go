package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/cancel_booking"
	decideBookingHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/decide_booking"
	getMentorsHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/get_mentors"
	getMyBookingsHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/get_my_bookings"
	getPendingCountHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/get_pending_count"
	getStudentsHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/get_students"
	loginHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/login"
	logoutHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/logout"
	proposeBookingHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/propose_booking"
	signupHandler "github.com/linkup-team/linkup-gateway/internal/api/handlers/signup"
	"github.com/linkup-team/linkup-gateway/internal/api/middleware"
	"github.com/linkup-team/linkup-gateway/internal/config"
	"github.com/linkup-team/linkup-gateway/internal/infra/storage/migrations"
	sessionRepo "github.com/linkup-team/linkup-gateway/internal/infra/storage/session"
	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
	authService "github.com/linkup-team/linkup-gateway/internal/service/auth"
	bookingsService "github.com/linkup-team/linkup-gateway/internal/service/bookings"
	directoryService "github.com/linkup-team/linkup-gateway/internal/service/directory"
	"github.com/linkup-team/linkup-gateway/pkg/logger"
	"github.com/linkup-team/linkup-gateway/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting linkup-gateway...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Session store
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := runMigrations(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	sessionRepository := sessionRepo.NewRepository(db)

	// Backend client. The bearer token comes from the session the auth
	// middleware placed in the request context.
	tokenProvider := linkupapi.TokenProviderFunc(func(ctx context.Context) (string, bool) {
		session, ok := middleware.SessionFromContext(ctx)
		if !ok {
			return "", false
		}
		return session.Token, true
	})

	var outboundMetrics linkupapi.MetricsRecorder
	if cfg.Metrics.Enabled {
		outboundMetrics = metricsCollector
	}
	apiClient := linkupapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		tokenProvider,
		outboundMetrics,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Services
	authSvc := authService.NewService(
		apiClient,
		sessionRepository,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(apiClient, log)
	directorySvc := directoryService.NewService(apiClient, log)

	// Handlers
	login := loginHandler.NewHandler(authSvc, log)
	signup := signupHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	proposeBooking := proposeBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPendingCount := getPendingCountHandler.NewHandler(bookingSvc, log)
	getMentors := getMentorsHandler.NewHandler(directorySvc, log)
	getStudents := getStudentsHandler.NewHandler(directorySvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)

	// Protected routes (require a gateway session)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/bookings", proposeBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/pending-count", getPendingCount.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/mentors", getMentors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/students", getStudents.Handle).Methods(http.MethodGet)

	// Expired session cleanup
	stopCleanup := make(chan struct{})
	go cleanupSessions(sessionRepository, log, stopCleanup)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.Up(db, ".")
}

const sessionCleanupInterval = time.Hour

func cleanupSessions(repo *sessionRepo.Repository, log *logger.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := repo.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Error("Session cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Info("Session cleanup removed %d expired sessions", removed)
			}
		case <-stop:
			return
		}
	}
}
