package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getProfileHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_profile"
	getRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_room"
	getSessionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_session"
	getStatsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_rooms"
	signInHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_up"
	updateBookingStatusHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_booking_status"
	updateProfileHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_profile"
	updateRoomHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/sessionstore"
	accountRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/account"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	profileRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/profile"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/emailjs"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/notifyqueue"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/access"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	identityService "github.com/m04kA/SMC-HotelBookingService/internal/service/identity"
	profilesService "github.com/m04kA/SMC-HotelBookingService/internal/service/profiles"
	roomsService "github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	statsService "github.com/m04kA/SMC-HotelBookingService/internal/service/stats"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

// sessionStore хранилище отозванных токенов с закрытием соединения
type sessionStore interface {
	identityService.SessionStore
	Close() error
}

func serve(parent context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	cfg, log := rt.cfg, rt.log
	log.Info("Starting hotel booking service...")

	// Хранилище сессий
	sessions, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sessions.Close()

	// Уведомления
	sender, closeSender, err := newNotifier(cfg, rt.metrics, log)
	if err != nil {
		return err
	}
	defer closeSender()

	// Репозитории
	rooms := roomRepo.NewRepository(rt.db)
	bookings := bookingRepo.NewRepository(rt.db)
	profiles := profileRepo.NewRepository(rt.db)
	accounts := accountRepo.NewRepository(rt.db)
	txMgr := txmanager.NewTransactionManager(rt.db)

	// Сервисы
	gate := access.NewGate(profiles, log)
	tokens := identityService.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	identitySvc := identityService.NewService(accounts, profiles, sessions, txMgr, tokens, cfg.Auth.BcryptCost, log)
	roomsSvc := roomsService.NewService(rooms, gate, log)
	bookingsSvc := bookingsService.NewService(bookings, gate, log)
	profilesSvc := profilesService.NewService(profiles, log)
	statsSvc := statsService.NewService(rooms, bookings, profiles, gate, log)

	// Use cases
	createBookingUseCase, err := createBookingUC.NewUseCase(rooms, bookings, txMgr, sender, createBookingUC.Config{
		InitialStatus:  cfg.Booking.InitialStatus,
		RejectOverlaps: cfg.Booking.RejectOverlaps,
		MaxNights:      cfg.Booking.MaxNights,
		Currency:       cfg.Booking.Currency,
		Locale:         cfg.Booking.Locale,
		TemplateID:     cfg.Notifier.ConfirmationTemplateID,
		NotifyTimeout:  time.Duration(cfg.Notifier.TimeoutSeconds) * time.Second,
	}, log)
	if err != nil {
		return fmt.Errorf("create booking use case: %w", err)
	}
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(rooms, bookings, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	if rt.metrics != nil {
		r.Use(middleware.Metrics(rt.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/sign-up", signUpHandler.NewHandler(identitySvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-in", signInHandler.NewHandler(identitySvc, log).Handle).Methods(http.MethodPost)

	api.HandleFunc("/rooms", listRoomsHandler.NewHandler(roomsSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoomHandler.NewHandler(roomsSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability",
		checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth(identitySvc, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/sign-out", signOutHandler.NewHandler(identitySvc, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/session", getSessionHandler.NewHandler(gate, log).Handle).Methods(http.MethodGet)

	// --- Бронирования гостя ---
	protected.HandleFunc("/bookings", createBookingHandler.NewHandler(createBookingUseCase, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookingsHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel",
		cancelBookingHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodPatch)

	// --- Профиль ---
	protected.HandleFunc("/profile", getProfileHandler.NewHandler(profilesSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", updateProfileHandler.NewHandler(profilesSvc, log).Handle).Methods(http.MethodPut)

	// --- Администрирование (права проверяются в сервисах) ---
	protected.HandleFunc("/rooms/{roomId}", updateRoomHandler.NewHandler(roomsSvc, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/bookings", listBookingsHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/bookings/{bookingId}/status",
		updateBookingStatusHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/bookings/{bookingId}",
		deleteBookingHandler.NewHandler(bookingsSvc, log).Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/stats", getStatsHandler.NewHandler(statsSvc, log).Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся писем, отправленных уже после ответа клиенту
	done := make(chan struct{})
	go func() {
		createBookingUseCase.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout reached with notifications still in flight")
	}

	log.Info("Server stopped gracefully")
	return nil
}

func newSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (sessionStore, error) {
	if !cfg.Redis.Enabled {
		log.Info("Session store: in-memory")
		return sessionstore.NewMemoryStore(), nil
	}

	store, err := sessionstore.NewRedisStore(ctx, sessionstore.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	log.Info("Session store: redis at %s", cfg.Redis.Addr)
	return store, nil
}

func newNotifier(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (notifier.Sender, func(), error) {
	counter := notificationsCounter(m)

	switch strings.ToLower(cfg.Notifier.Driver) {
	case config.NotifierDriverEmailJS:
		client := emailjs.NewClient(
			cfg.Notifier.EmailJSURL,
			cfg.Notifier.EmailJSServiceID,
			cfg.Notifier.EmailJSPublicKey,
			time.Duration(cfg.Notifier.TimeoutSeconds)*time.Second,
			log,
		)
		log.Info("Notifier: emailjs (service=%s)", cfg.Notifier.EmailJSServiceID)
		return notifier.NewInstrumented(client, config.NotifierDriverEmailJS, counter), func() {}, nil

	case config.NotifierDriverRabbitMQ:
		publisher, err := notifyqueue.NewPublisher(cfg.Notifier.AMQPURL, cfg.Notifier.Queue, log)
		if err != nil {
			return nil, nil, fmt.Errorf("notifier: %w", err)
		}
		log.Info("Notifier: rabbitmq (queue=%s)", cfg.Notifier.Queue)
		return notifier.NewInstrumented(publisher, config.NotifierDriverRabbitMQ, counter), publisher.Close, nil

	default:
		log.Info("Notifier: disabled")
		return notifier.Nop{}, func() {}, nil
	}
}

func notificationsCounter(m *metrics.Metrics) *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.NotificationsTotal
}
