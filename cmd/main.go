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

	assignTechnicianHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/assign_technician"
	bookSlotHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/book_slot"
	deleteJobHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/delete_job"
	getAppointmentHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_available_slots"
	getBayOccupancyHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_bay_occupancy"
	getDueNotificationsHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_due_notifications"
	getShopConfigHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_shop_config"
	getTechniciansHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/get_technicians"
	markNotificationSentHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/mark_notification_sent"
	moveAppointmentHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/move_appointment"
	updateShopConfigHandler "github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers/update_shop_config"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/config"
	appointmentRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	shopSettingsRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/shopsettings"
	technicianRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/technician"
	crmServiceClient "github.com/m04kA/SMC-WorkshopScheduler/internal/integrations/crmservice"
	notificationsService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications"
	scheduleService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule"
	settingsService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/settings"
	bookSlotUC "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/book_slot"
	deleteJobUC "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/delete_job"
	getAvailableSlotsUC "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/get_available_slots"
	moveAppointmentUC "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/move_appointment"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/logger"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/metrics"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/simpletxmanager"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/txmanager"
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

	log.Info("Starting SMC-WorkshopScheduler...")
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

	// Инициализируем интеграционного клиента CRM
	crmClient := crmServiceClient.NewClient(
		cfg.CRMService.URL,
		time.Duration(cfg.CRMService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CRMService=%s timeout=%ds)",
		cfg.CRMService.URL, cfg.CRMService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		jobRepository          *jobRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		technicianRepository   *technicianRepo.Repository
		shopSettingsRepository *shopSettingsRepo.Repository
	)

	// Интерфейс transaction manager: оба менеджера (с метриками и без)
	// реализуют Do и DoSerializable
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		jobRepository = jobRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		technicianRepository = technicianRepo.NewRepository(wrappedDB)
		shopSettingsRepository = shopSettingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		jobRepository = jobRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		technicianRepository = technicianRepo.NewRepository(db)
		shopSettingsRepository = shopSettingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		jobRepository,
		appointmentRepository,
		technicianRepository,
		shopSettingsRepository,
		log,
	)
	notificationsSvc := notificationsService.NewService(
		appointmentRepository,
		jobRepository,
		crmClient,
		time.Duration(cfg.Notifications.AppointmentLookaheadHours)*time.Hour,
		time.Duration(cfg.Notifications.PaymentReminderAgeDays)*24*time.Hour,
		log,
	)
	settingsSvc := settingsService.NewService(shopSettingsRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		jobRepository,
		appointmentRepository,
		shopSettingsRepository,
		log,
	)
	bookSlotUseCase := bookSlotUC.NewUseCase(
		jobRepository,
		appointmentRepository,
		shopSettingsRepository,
		txMgr,
		log,
	)
	moveAppointmentUseCase := moveAppointmentUC.NewUseCase(
		appointmentRepository,
		jobRepository,
		shopSettingsRepository,
		txMgr,
		log,
	)
	deleteJobUseCase := deleteJobUC.NewUseCase(
		jobRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	moveAppointment := moveAppointmentHandler.NewHandler(moveAppointmentUseCase, log)
	deleteJob := deleteJobHandler.NewHandler(deleteJobUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(scheduleSvc, log)
	assignTechnician := assignTechnicianHandler.NewHandler(scheduleSvc, log)
	getBayOccupancy := getBayOccupancyHandler.NewHandler(scheduleSvc, log)
	getTechnicians := getTechniciansHandler.NewHandler(scheduleSvc, log)
	getDueNotifications := getDueNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationSent := markNotificationSentHandler.NewHandler(notificationsSvc, log)
	getShopConfig := getShopConfigHandler.NewHandler(settingsSvc, log)
	updateShopConfig := updateShopConfigHandler.NewHandler(settingsSvc, log)

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

	// Доступные слоты для записи заявки на дату
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятость боксов по дням интервала
	api.HandleFunc("/schedule/occupancy", getBayOccupancy.Handle).Methods(http.MethodGet)

	// Конфигурация календаря мастерской
	api.HandleFunc("/settings/calendar", getShopConfig.Handle).Methods(http.MethodGet)

	// Список механиков с недельной доступностью
	api.HandleFunc("/technicians", getTechnicians.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	// Запись заявки на слот
	protected.HandleFunc("/appointments", bookSlot.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи на другую дату
	protected.HandleFunc("/appointments/{appointmentId}/date", moveAppointment.Handle).Methods(http.MethodPut)

	// --- Заявки ---
	// Назначение механика на заявку
	protected.HandleFunc("/jobs/{jobId}/technician", assignTechnician.Handle).Methods(http.MethodPut)

	// Удаление заявки вместе с записью в расписании
	protected.HandleFunc("/jobs/{jobId}", deleteJob.Handle).Methods(http.MethodDelete)

	// --- Напоминания ---
	// Напоминания, требующие отправки
	protected.HandleFunc("/notifications/due", getDueNotifications.Handle).Methods(http.MethodGet)

	// Отметка о доставленном напоминании (callback доставщика)
	protected.HandleFunc("/notifications/sent", markNotificationSent.Handle).Methods(http.MethodPost)

	// --- Настройки ---
	// Обновление конфигурации календаря
	protected.HandleFunc("/settings/calendar", updateShopConfig.Handle).Methods(http.MethodPut)

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
