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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/approve_booking"
	denyBookingHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/deny_booking"
	getBookingHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/get_booking"
	getWeekSlotsHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/get_week_slots"
	listBookingsHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/list_bookings"
	reserveBookingHandler "github.com/m04kA/SMC-CallBookingService/internal/api/handlers/reserve_booking"
	"github.com/m04kA/SMC-CallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CallBookingService/internal/config"
	activityRepo "github.com/m04kA/SMC-CallBookingService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-CallBookingService/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/SMC-CallBookingService/internal/service/bookings"
	getWeekSlotsUC "github.com/m04kA/SMC-CallBookingService/internal/usecase/get_week_slots"
	reserveBookingUC "github.com/m04kA/SMC-CallBookingService/internal/usecase/reserve_booking"
	"github.com/m04kA/SMC-CallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallBookingService/pkg/logger"
	"github.com/m04kA/SMC-CallBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CallBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CallBookingService/pkg/txmanager"
)

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

	log.Info("Starting SMC-CallBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Недельная сетка слотов из конфигурации
	template := cfg.ScheduleTemplate()
	log.Info("Schedule template: %s-%s, slot=%dmin, work days=%d",
		template.DayStartTime, template.DayEndTime, template.SlotDurationMinutes, template.WorkDays)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		activityRepository *activityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		activityRepository,
		log,
	)

	// Инициализируем use cases
	getWeekSlotsUseCase := getWeekSlotsUC.NewUseCase(
		bookingRepository,
		template,
		log,
	)

	reserveBookingUseCase := reserveBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		txMgr,
		template,
		log,
	)

	// Инициализируем handlers
	getWeekSlots := getWeekSlotsHandler.NewHandler(getWeekSlotsUseCase, log)
	reserveBooking := reserveBookingHandler.NewHandler(reserveBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	denyBooking := denyBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельная сетка слотов
	api.HandleFunc("/schedule/week", getWeekSlots.Handle).Methods(http.MethodGet)

	// Резервирование слота
	api.HandleFunc("/bookings", reserveBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// Список бронирований с фильтрацией
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования со ссылкой на встречу
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// Отклонение бронирования с причиной
	admin.HandleFunc("/bookings/{bookingId}/deny", denyBooking.Handle).Methods(http.MethodPatch)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
