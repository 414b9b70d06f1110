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

	assignGroomerHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/assign_groomer"
	bookingAddOnsHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/booking_addons"
	bookingMediaHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/booking_media"
	cancelBookingHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/create_booking"
	createGroomerHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/create_groomer"
	customerConductHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/customer_conduct"
	getAvailableSlotsHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_booking"
	getBookingHistoryHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_booking_history"
	getBookingsHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_bookings"
	getCustomerBookingsHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_customer_bookings"
	getDayViewHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/get_day_view"
	listGroomersHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/list_groomers"
	manageAbsencesHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/manage_absences"
	manageBlackoutsHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/manage_blackouts"
	manageCatalogHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/manage_catalog"
	rescheduleBookingHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/update_booking_status"
	updateGroomerHandler "github.com/bestbuddies/grooming-booking/internal/api/handlers/update_groomer"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/config"
	catalogCache "github.com/bestbuddies/grooming-booking/internal/infra/cache/catalog"
	auditRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/audit"
	bookingRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/booking"
	calendarRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/calendar"
	catalogRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/catalog"
	conductRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/conduct"
	staffRepo "github.com/bestbuddies/grooming-booking/internal/infra/storage/staff"
	auditService "github.com/bestbuddies/grooming-booking/internal/service/audit"
	bookingsService "github.com/bestbuddies/grooming-booking/internal/service/bookings"
	calendarService "github.com/bestbuddies/grooming-booking/internal/service/calendar"
	conductService "github.com/bestbuddies/grooming-booking/internal/service/conduct"
	pricingService "github.com/bestbuddies/grooming-booking/internal/service/pricing"
	schedulingService "github.com/bestbuddies/grooming-booking/internal/service/scheduling"
	staffService "github.com/bestbuddies/grooming-booking/internal/service/staff"
	getAvailableSlotsUC "github.com/bestbuddies/grooming-booking/internal/usecase/get_available_slots"
	lifecycleUC "github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
	"github.com/bestbuddies/grooming-booking/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
	"github.com/bestbuddies/grooming-booking/pkg/metrics"
	"github.com/bestbuddies/grooming-booking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting grooming-booking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	// Метрики: при выключенных метриках collector = nil, все Record* становятся no-op
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	calendarRepository := calendarRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	conductRepository := conductRepo.NewRepository(wrappedDB)
	auditRepository := auditRepo.NewRepository(wrappedDB)

	// Кеш каталога (без redis работает как прямой доступ к Postgres)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, catalog reads fall back to database: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Catalog cache enabled (redis=%s, ttl=%s)", cfg.Redis.Address, cfg.Redis.CacheTTL())
		}
		cancel()
	}
	catalogStore := catalogCache.New(catalogRepository, redisClient, cfg.Redis.CacheTTL(), metricsCollector, log)

	if cfg.Booking.CatalogFile != "" {
		if err := seedCatalog(context.Background(), catalogStore, cfg.Booking.CatalogFile); err != nil {
			log.Fatal("Failed to load catalog from %s: %v", cfg.Booking.CatalogFile, err)
		}
		log.Info("Catalog loaded from %s", cfg.Booking.CatalogFile)
	}

	// Сервисы
	conductSvc := conductService.NewService(conductRepository, conductService.Options{
		HardLimit:      cfg.Booking.WarningHardLimit,
		WatchThreshold: cfg.Booking.WarningThreshold,
		BanLiftFee:     cfg.Booking.BanLiftFee,
	}, metricsCollector, log)
	auditLog := auditService.NewLog(auditRepository, log)
	pricer := pricingService.NewEngine(pricingService.Options{
		BookingFee:               cfg.Booking.BookingFee,
		SingleServiceThresholdKg: cfg.Booking.SingleServiceThresholdKg,
		StrictWeight:             cfg.Booking.StrictWeight,
	})
	scheduler := schedulingService.NewEngine(
		cfg.Booking.GroomerDailyLimit,
		schedulingService.NewStrategy(cfg.Booking.AssignmentStrategy),
	)
	policy := calendarService.NewPolicy(cfg.Booking.SameDayCutoffMinutes).
		InLocation(location).
		WithAdvanceWindow(cfg.Booking.AdvanceBookingDays)
	staffSvc := staffService.NewService(staffRepository, cfg.Booking.GroomerDailyLimit, log)

	// Use cases
	lifecycle := lifecycleUC.NewUseCase(lifecycleUC.Deps{
		Bookings:  bookingRepository,
		Staff:     staffRepository,
		Calendar:  calendarRepository,
		Catalog:   catalogStore,
		Conduct:   conductSvc,
		Audit:     auditLog,
		TxManager: txMgr,
		Scheduler: scheduler,
		Pricer:    pricer,
		Policy:    policy,
		Location:  location,
		Metrics:   metricsCollector,
		Logger:    log,
	})
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		staffRepository,
		calendarRepository,
		scheduler,
		policy,
		location,
		log,
	)
	bookingSvc := bookingsService.NewService(lifecycle, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(lifecycle, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, location, log)
	getDayView := getDayViewHandler.NewHandler(bookingSvc, location, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(bookingSvc, auditLog, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(lifecycle, location, log)
	assignGroomer := assignGroomerHandler.NewHandler(lifecycle, log)
	bookingAddOns := bookingAddOnsHandler.NewHandler(lifecycle, log)
	bookingMedia := bookingMediaHandler.NewHandler(lifecycle, log)
	manageBlackouts := manageBlackoutsHandler.NewHandler(lifecycle, location, log)
	customerConduct := customerConductHandler.NewHandler(conductSvc, log)
	listGroomers := listGroomersHandler.NewHandler(staffSvc, log)
	createGroomer := createGroomerHandler.NewHandler(staffSvc, log)
	updateGroomer := updateGroomerHandler.NewHandler(staffSvc, log)
	manageAbsences := manageAbsencesHandler.NewHandler(staffSvc, location, log)
	manageCatalog := manageCatalogHandler.NewHandler(catalogStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog", manageCatalog.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/groomers", listGroomers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-Actor-ID / X-Actor-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования клиента и админа ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/history", getBookingHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/assign", assignGroomer.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/addons", bookingAddOns.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/addons/{addOnId}", bookingAddOns.HandleRemove).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/media", bookingMedia.HandleAttach).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}/featured", bookingMedia.HandleFeatured).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/{date}", getDayView.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/audit/export", getBookingHistory.HandleExport).Methods(http.MethodGet)

	admin.HandleFunc("/blackouts", manageBlackouts.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blackouts", manageBlackouts.HandleClose).Methods(http.MethodPost)
	admin.HandleFunc("/blackouts/{date}", manageBlackouts.HandleReopen).Methods(http.MethodDelete)

	admin.HandleFunc("/customers/review", customerConduct.HandleReview).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{customerId}/conduct", customerConduct.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{customerId}/warnings", customerConduct.HandleWarn).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{customerId}/ban", customerConduct.HandleBan).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{customerId}/enforce", customerConduct.HandleEnforce).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{customerId}/lift", customerConduct.HandleLift).Methods(http.MethodPost)

	admin.HandleFunc("/groomers", createGroomer.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/groomers/{groomerId}", updateGroomer.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/groomers/{groomerId}/absences", manageAbsences.HandleRequest).Methods(http.MethodPost)
	admin.HandleFunc("/absences", manageAbsences.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/absences/{absenceId}/decision", manageAbsences.HandleDecide).Methods(http.MethodPost)

	admin.HandleFunc("/catalog", manageCatalog.HandleUpdate).Methods(http.MethodPut)

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
