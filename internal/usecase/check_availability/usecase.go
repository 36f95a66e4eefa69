package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
)

// UseCase проверка доступности номера на даты
// Результат носит рекомендательный характер: создание бронирования его не требует
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, checkIn=%s, checkOut=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrStore, err)
	}

	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, room.ID, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrStore, err)
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	availability := domain.Availability{
		RoomID:    room.ID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: len(overlapping) == 0,
		Conflicts: len(overlapping),
	}

	uc.logger.Info("CheckAvailability: room=%s available=%t conflicts=%d",
		room.ID, availability.Available, availability.Conflicts)

	return &Response{
		RoomID:     availability.RoomID.String(),
		CheckIn:    availability.CheckIn.Format(domain.DateFormat),
		CheckOut:   availability.CheckOut.Format(domain.DateFormat),
		Nights:     nights,
		Available:  availability.Available,
		Conflicts:  availability.Conflicts,
		TotalPrice: domain.TotalPrice(room.Price, nights),
	}, nil
}

func validateRequest(req *Request) error {
	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}
	return nil
}
