package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/message"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	cfg         Config
	status      domain.BookingStatus
	printer     *message.Printer
	logger      Logger

	// уведомления в полете, ждем их при остановке сервера
	pending sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	cfg Config,
	logger Logger,
) (*UseCase, error) {
	status, err := domain.ParseBookingStatus(cfg.InitialStatus)
	if err != nil {
		return nil, fmt.Errorf("initial status: %w", err)
	}
	if status != domain.StatusPending && status != domain.StatusConfirmed {
		return nil, fmt.Errorf("initial status must be pending or confirmed, got %q", status)
	}
	if cfg.MaxNights <= 0 {
		cfg.MaxNights = domain.DefaultMaxNights
	}

	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		cfg:         cfg,
		status:      status,
		printer:     newPrinter(cfg.Locale),
		logger:      logger,
	}, nil
}

// Execute выполняет use case создания бронирования
// При включенном reject_overlaps проверка пересечений и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, actor *domain.Identity, req *Request) (*models.BookingResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	normalizeRequest(req)

	uc.logger.Info("CreateBooking: user=%s, room=%s, checkIn=%s, checkOut=%s, guests=%d",
		actor.ID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.cfg.MaxNights); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrStore, err)
	}

	// 3. Вместимость
	if err := validateCapacity(room, req.Guests); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	guestEmail := req.GuestEmail
	if guestEmail == "" {
		guestEmail = actor.Email
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	booking := &domain.Booking{
		UserID:   actor.ID,
		RoomID:   room.ID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Guest: domain.GuestContact{
			Name:  req.GuestName,
			Phone: req.GuestPhone,
			Email: guestEmail,
		},
		TotalPrice: domain.TotalPrice(room.Price, nights),
		Status:     uc.status,
	}

	// 4. Сохраняем бронирование
	var created *domain.Booking
	if uc.cfg.RejectOverlaps {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, room.ID, req.CheckIn, req.CheckOut)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrStore, err)
			}
			if len(overlapping) > 0 {
				uc.logger.Warn("CreateBooking: room id=%s has %d active bookings in range", room.ID, len(overlapping))
				return ErrRoomNotAvailable
			}

			created, err = uc.create(txCtx, booking)
			return err
		})
	} else {
		created, err = uc.create(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s, total=%d",
		created.ID, created.Status, created.TotalPrice)

	// 5. Письмо-подтверждение после коммита, ошибки только логируются
	uc.notify(created, room, actor.Email)

	return models.FromDomainBooking(created), nil
}

// Wait блокируется до завершения отправки всех уведомлений
func (uc *UseCase) Wait() {
	uc.pending.Wait()
}

func (uc *UseCase) create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrStore, err)
	}
	return created, nil
}

func (uc *UseCase) notify(booking *domain.Booking, room *domain.Room, actorEmail string) {
	if uc.notifier == nil {
		return
	}

	vars := templateVars(booking, room, actorEmail, uc.cfg.Currency, uc.printer)

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		ctx := context.Background()
		if uc.cfg.NotifyTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, uc.cfg.NotifyTimeout)
			defer cancel()
		}

		if err := uc.notifier.Send(ctx, uc.cfg.TemplateID, vars); err != nil {
			uc.logger.Error("CreateBooking: failed to send confirmation for booking id=%s: %v", booking.ID, err)
			return
		}
		uc.logger.Info("CreateBooking: confirmation sent for booking id=%s", booking.ID)
	}()
}
