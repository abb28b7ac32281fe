package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	exportSubmissionsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/export_submissions"
	getBookingContextHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_booking_context"
	getBookingFormHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_booking_form"
	getCalendarHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_calendar"
	getDateRangesHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_date_ranges"
	getSeasonsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_seasons"
	getSettingsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_settings"
	getTentsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/get_tents"
	listSubmissionsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/list_submissions"
	submitBookingHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/submit_booking"
	updateDateRangesHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/update_date_ranges"
	updateSettingsHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/update_settings"
	updateSubmissionStatusHandler "github.com/everliz/VIP-BookingService/internal/api/handlers/update_submission_status"
	"github.com/everliz/VIP-BookingService/internal/api/middleware"
	"github.com/everliz/VIP-BookingService/internal/config"
	settingsRepo "github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
	submissionRepo "github.com/everliz/VIP-BookingService/internal/infra/storage/submission"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
	seasonsService "github.com/everliz/VIP-BookingService/internal/service/seasons"
	submissionsService "github.com/everliz/VIP-BookingService/internal/service/submissions"
	tentsService "github.com/everliz/VIP-BookingService/internal/service/tents"
	getBookingContextUC "github.com/everliz/VIP-BookingService/internal/usecase/get_booking_context"
	getCalendarUC "github.com/everliz/VIP-BookingService/internal/usecase/get_calendar"
	submitBookingUC "github.com/everliz/VIP-BookingService/internal/usecase/submit_booking"
	"github.com/everliz/VIP-BookingService/pkg/dbmetrics"
	"github.com/everliz/VIP-BookingService/pkg/formtoken"
	"github.com/everliz/VIP-BookingService/pkg/logger"
	"github.com/everliz/VIP-BookingService/pkg/metrics"
	"github.com/everliz/VIP-BookingService/pkg/txmanager"
)

// settingsCredentials читает учетные данные External Booking API из Config
// Store на каждый вызов, чтобы изменения в админке применялись сразу
type settingsCredentials struct {
	repo *settingsRepo.Repository
}

func (s settingsCredentials) APICredentials(ctx context.Context) (string, string, error) {
	baseURL, err := s.repo.Get(ctx, settingsRepo.KeyAPIBaseURL)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingNotFound) {
		return "", "", err
	}
	apiKey, err := s.repo.Get(ctx, settingsRepo.KeyAPIKey)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingNotFound) {
		return "", "", err
	}
	return baseURL, apiKey, nil
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VIP-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := runMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Migrations applied from %s", cfg.Migrations.Path)

	// Подключаемся к redis (опционально, только кеш каталога шатров)
	var tentCache tentsService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Кеш не обязателен, каталог умеет жить без него
			log.Warn("Redis unavailable, tent catalog cache disabled: %v", err)
		} else {
			tentCache = tentsService.NewRedisCache(redisClient)
			log.Info("Redis connected at %s, tent catalog cache enabled", cfg.Redis.Addr)
		}
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		submissionRepository *submissionRepo.Repository
		settingsRepository   *settingsRepo.Repository
		txMgr                *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		submissionRepository = submissionRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		submissionRepository = submissionRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.SQLDBAdapter{DB: db})
	}

	// Клиент External Booking API
	apiClient := bookingapi.NewClient(
		settingsCredentials{repo: settingsRepository},
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("External Booking API client initialized (timeout=%ds)", cfg.BookingAPI.Timeout)

	// Form token issuer
	tokenIssuer := formtoken.New(cfg.BookingForm.TokenSecret, time.Duration(cfg.BookingForm.TokenTTL)*time.Second)

	// Инициализируем сервисы
	seasonsSvc := seasonsService.NewService(settingsRepository, apiClient, log)
	tentsSvc := tentsService.NewService(apiClient, tentCache, log)
	submissionsSvc := submissionsService.NewService(submissionRepository, log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		submissionRepository,
		settingsRepository,
		tokenIssuer,
		tentsSvc,
		apiClient,
		metricsCollector,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(seasonsSvc, log)
	getBookingContextUseCase := getBookingContextUC.NewUseCase(seasonsSvc, tentsSvc, log)

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, cfg.BookingForm.SessionCookie, log)
	getBookingForm := getBookingFormHandler.NewHandler(tokenIssuer, cfg.BookingForm.SessionCookie, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBookingContext := getBookingContextHandler.NewHandler(getBookingContextUseCase, log)
	getTents := getTentsHandler.NewHandler(tentsSvc, log)
	getSeasons := getSeasonsHandler.NewHandler(seasonsSvc, log)
	listSubmissions := listSubmissionsHandler.NewHandler(submissionsSvc, log)
	updateSubmissionStatus := updateSubmissionStatusHandler.NewHandler(submissionsSvc, log)
	exportSubmissions := exportSubmissionsHandler.NewHandler(submissionsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsRepository, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsRepository, log)
	getDateRanges := getDateRangesHandler.NewHandler(settingsRepository, log)
	updateDateRanges := updateDateRangesHandler.NewHandler(settingsRepository, txMgr, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования и виджет календаря)
	// ============================================================

	api.HandleFunc("/tents", getTents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/seasons", getSeasons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-context", getBookingContext.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-form", getBookingForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/date-ranges", getDateRanges.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/date-ranges", updateDateRanges.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/submissions", listSubmissions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/submissions/export", exportSubmissions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/submissions/{id}/status", updateSubmissionStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error: %v", err)
	}
	log.Info("Server stopped")
}

// runMigrations применяет невыполненные миграции из каталога path
func runMigrations(db *sql.DB, path string) error {
	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
