package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/access"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

// Service жизненный цикл бронирований после создания
type Service struct {
	bookingRepo BookingRepository
	gate        AdminGate
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, gate AdminGate, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		gate:        gate,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование
// Доступно владельцу или администратору
func (s *Service) GetByID(ctx context.Context, actor *domain.Identity, id uuid.UUID) (*models.BookingResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !s.canAccess(ctx, actor, booking) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings бронирования текущего пользователя, новые первыми
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, actor *domain.Identity, status *string) (*models.BookingListResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%q", actor.ID, ptr.Value(status))

	var domainStatus *domain.BookingStatus
	if status != nil {
		parsed, err := domain.ParseBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *status, actor.ID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainStatus = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, actor.ID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrStore, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

// List все бронирования с фильтрацией
// Доступно только администраторам
func (s *Service) List(ctx context.Context, actor *domain.Identity, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	if !access.Check(ctx, s.gate, actor.ID, s.logger) {
		s.logger.Warn("List: user=%s is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStore, err)
	}

	s.logger.Info("List: fetched %d bookings for admin=%s", len(bookings), actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Владелец или администратор; только из pending/confirmed
func (s *Service) Cancel(ctx context.Context, actor *domain.Identity, id uuid.UUID) (*models.BookingResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, actor.ID)

	booking, err := s.load(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !s.canAccess(ctx, actor, booking) {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", actor.ID, id)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			s.logger.Warn("Cancel: booking id=%s changed status concurrently", id)
			return nil, fmt.Errorf("%w: booking is no longer active", ErrInvalidTransition)
		default:
			s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrStore, err)
		}
	}

	cancelledAt := s.now()
	booking.Status = domain.StatusCancelled
	booking.CancelledAt = &cancelledAt
	booking.UpdatedAt = cancelledAt

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус бронирования
// Доступно только администраторам, переходы по таблице жизненного цикла
func (s *Service) UpdateStatus(ctx context.Context, actor *domain.Identity, id uuid.UUID, rawStatus string) (*models.BookingResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by user=%s", id, rawStatus, actor.ID)

	newStatus, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", rawStatus, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !access.Check(ctx, s.gate, actor.ID, s.logger) {
		s.logger.Warn("UpdateStatus: user=%s is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	booking, err := s.load(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%s", booking.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: booking id=%s changed status concurrently", id)
			return nil, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStore, err)
	}

	now := s.now()
	booking.Status = newStatus
	booking.UpdatedAt = now
	if newStatus == domain.StatusCancelled {
		booking.CancelledAt = &now
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Delete физически удаляет бронирование независимо от статуса
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, actor *domain.Identity, id uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	s.logger.Info("Delete: deleting booking id=%s by user=%s", id, actor.ID)

	if !access.Check(ctx, s.gate, actor.ID, s.logger) {
		s.logger.Warn("Delete: user=%s is not an admin", actor.ID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStore, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStore, op, err)
	}
	return booking, nil
}

// canAccess владелец проходит без обращения к гейту
func (s *Service) canAccess(ctx context.Context, actor *domain.Identity, booking *domain.Booking) bool {
	if booking.IsOwnedBy(actor.ID) {
		return true
	}
	return access.Check(ctx, s.gate, actor.ID, s.logger)
}
