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
	"github.com/redis/go-redis/v9"

	appointmentsHandler "github.com/m04kA/salon-booking/internal/api/handlers/appointments"
	authHandler "github.com/m04kA/salon-booking/internal/api/handlers/auth"
	blockedSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/blocked_slots"
	businessHoursHandler "github.com/m04kA/salon-booking/internal/api/handlers/business_hours"
	createAppointmentHandler "github.com/m04kA/salon-booking/internal/api/handlers/create_appointment"
	dashboardHandler "github.com/m04kA/salon-booking/internal/api/handlers/dashboard"
	getAvailableSlotsHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_available_slots"
	getBookingWindowHandler "github.com/m04kA/salon-booking/internal/api/handlers/get_booking_window"
	parseVoiceBookingHandler "github.com/m04kA/salon-booking/internal/api/handlers/parse_voice_booking"
	servicesHandler "github.com/m04kA/salon-booking/internal/api/handlers/services"
	settingsHandler "github.com/m04kA/salon-booking/internal/api/handlers/settings"
	"github.com/m04kA/salon-booking/internal/api/middleware"
	"github.com/m04kA/salon-booking/internal/config"
	"github.com/m04kA/salon-booking/internal/infra/migrator"
	"github.com/m04kA/salon-booking/internal/infra/sessions"
	adminRepo "github.com/m04kA/salon-booking/internal/infra/storage/admin"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	blockedSlotRepo "github.com/m04kA/salon-booking/internal/infra/storage/blockedslot"
	businessHourRepo "github.com/m04kA/salon-booking/internal/infra/storage/businesshour"
	serviceRepo "github.com/m04kA/salon-booking/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/salon-booking/internal/infra/storage/settings"
	appointmentsService "github.com/m04kA/salon-booking/internal/service/appointments"
	authService "github.com/m04kA/salon-booking/internal/service/auth"
	blackoutsService "github.com/m04kA/salon-booking/internal/service/blackouts"
	catalogService "github.com/m04kA/salon-booking/internal/service/catalog"
	dashboardService "github.com/m04kA/salon-booking/internal/service/dashboard"
	hoursService "github.com/m04kA/salon-booking/internal/service/hours"
	settingsService "github.com/m04kA/salon-booking/internal/service/settings"
	createAppointmentUC "github.com/m04kA/salon-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/salon-booking/internal/usecase/get_available_slots"
	getBookingWindowUC "github.com/m04kA/salon-booking/internal/usecase/get_booking_window"
	parseVoiceBookingUC "github.com/m04kA/salon-booking/internal/usecase/parse_voice_booking"
	"github.com/m04kA/salon-booking/migrations"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/jwtauth"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/metrics"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

// revocationStore хранилище отозванных токенов (Redis или память процесса)
type revocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
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

	log.Info("Starting salon-booking...")

	// Часовой пояс салона: от него зависят "сегодня", окно записи и слоты
	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Server.Timezone, err)
	}
	log.Info("Using timezone %s", location)

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

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := m.Run(startupCtx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Хранилище отозванных токенов
	var revocations revocationStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisStore := sessions.NewRedisStore(redisClient, cfg.Redis.KeyPrefix)
		if err := redisStore.Ping(startupCtx); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		revocations = redisStore
		log.Info("Token revocations stored in redis (addr=%s)", cfg.Redis.Addr)
	} else {
		revocations = sessions.NewMemoryStore()
		log.Warn("Redis disabled: token revocations kept in memory and lost on restart")
	}

	// Выбираем исполнителя запросов (с метриками или без)
	var (
		dbExecutor dbmetrics.DBExecutor
		txMgr      *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		dbExecutor = db
		txMgr = txmanager.NewSQLTransactionManager(db)
	}

	// Инициализируем репозитории
	serviceRepository := serviceRepo.NewRepository(dbExecutor)
	businessHourRepository := businessHourRepo.NewRepository(dbExecutor)
	blockedSlotRepository := blockedSlotRepo.NewRepository(dbExecutor)
	appointmentRepository := appointmentRepo.NewRepository(dbExecutor)
	settingsRepository := settingsRepo.NewRepository(dbExecutor)
	adminRepository := adminRepo.NewRepository(dbExecutor)

	// Инициализируем сервисы
	signer := jwtauth.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Minute)

	catalogSvc := catalogService.NewService(serviceRepository, log)
	hoursSvc := hoursService.NewService(businessHourRepository, log)
	blackoutsSvc := blackoutsService.NewService(blockedSlotRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		txMgr,
		appointmentsService.Config{
			PhoneDigits:             cfg.Booking.PhoneDigits,
			FallbackDurationMinutes: cfg.Booking.FallbackDurationMin,
			MaxByPhone:              uint64(cfg.Booking.MaxAppointmentsByPhone),
		},
		log,
	)
	authSvc := authService.NewService(adminRepository, signer, revocations, cfg.Auth.MinPasswordLen, log)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		serviceRepository,
		businessHourRepository,
		&dashboardService.RealTimeProvider{Location: location},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		businessHourRepository,
		blockedSlotRepository,
		appointmentRepository,
		getAvailableSlotsUC.Config{
			StepMinutes:             cfg.Booking.SlotStepMinutes,
			FallbackDurationMinutes: cfg.Booking.FallbackDurationMin,
			PendingBlocksSlots:      cfg.Booking.PendingBlocksSlots,
		},
		location,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		businessHourRepository,
		blockedSlotRepository,
		settingsSvc,
		txMgr,
		createAppointmentUC.Config{
			StepMinutes:             cfg.Booking.SlotStepMinutes,
			FallbackDurationMinutes: cfg.Booking.FallbackDurationMin,
			PendingBlocksSlots:      cfg.Booking.PendingBlocksSlots,
			PhoneDigits:             cfg.Booking.PhoneDigits,
		},
		location,
		log,
	)

	getBookingWindowUseCase := getBookingWindowUC.NewUseCase(
		settingsSvc,
		businessHourRepository,
		blockedSlotRepository,
		cfg.Booking.WindowDays,
		location,
		log,
	)

	parseVoiceBookingUseCase := parseVoiceBookingUC.NewUseCase(serviceRepository, location, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookingWindow := getBookingWindowHandler.NewHandler(getBookingWindowUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createAppointmentAdmin := createAppointmentHandler.NewAdminHandler(createAppointmentUseCase, log)
	parseVoiceBooking := parseVoiceBookingHandler.NewHandler(parseVoiceBookingUseCase, log)
	servicesH := servicesHandler.NewHandler(catalogSvc, log)
	businessHoursH := businessHoursHandler.NewHandler(hoursSvc, log)
	blockedSlotsH := blockedSlotsHandler.NewHandler(blackoutsSvc, log)
	appointmentsH := appointmentsHandler.NewHandler(appointmentsSvc, log)
	settingsH := settingsHandler.NewHandler(settingsSvc, log)
	authH := authHandler.NewHandler(authSvc, log)
	dashboardH := dashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог и витрина ---
	api.HandleFunc("/services", servicesH.List).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", servicesH.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-settings", settingsH.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/customization", settingsH.GetCustomization).Methods(http.MethodGet)

	// --- Запись клиента ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-window", getBookingWindow.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", appointmentsH.ListByPhone).Methods(http.MethodGet)

	// --- Вход администратора ---
	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authH.Register).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(signer, revocations, log))

	admin.HandleFunc("/auth/logout", authH.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", dashboardH.Handle).Methods(http.MethodGet)

	// --- Записи ---
	admin.HandleFunc("/appointments", appointmentsH.List).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", createAppointmentAdmin.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{appointmentId}/status", appointmentsH.UpdateStatus).Methods(http.MethodPatch)

	// --- Услуги ---
	admin.HandleFunc("/services", servicesH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", servicesH.Update).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", servicesH.Delete).Methods(http.MethodDelete)

	// --- Рабочие часы ---
	admin.HandleFunc("/business-hours", businessHoursH.List).Methods(http.MethodGet)
	admin.HandleFunc("/business-hours", businessHoursH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/business-hours/{hourId}", businessHoursH.Update).Methods(http.MethodPut)
	admin.HandleFunc("/business-hours/{hourId}", businessHoursH.Delete).Methods(http.MethodDelete)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-slots", blockedSlotsH.List).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots", blockedSlotsH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots/{blockId}", blockedSlotsH.Delete).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/booking-settings", settingsH.UpdateBooking).Methods(http.MethodPut)
	admin.HandleFunc("/customization", settingsH.UpdateCustomization).Methods(http.MethodPut)

	// --- Голосовой ввод ---
	admin.HandleFunc("/voice/parse", parseVoiceBooking.Handle).Methods(http.MethodPost)

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
	close(stopMetricsCh)

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
