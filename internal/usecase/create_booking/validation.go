package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// normalizeRequest обрезает пробелы в контактах гостя
func normalizeRequest(req *Request) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestPhone = strings.TrimSpace(req.GuestPhone)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxNights int) error {
	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	if nights := domain.Nights(req.CheckIn, req.CheckOut); nights > maxNights {
		return fmt.Errorf("%w: stay of %d nights exceeds limit of %d", ErrInvalidInput, nights, maxNights)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}

	if req.GuestPhone == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}
	if len(req.GuestPhone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone is too long", ErrInvalidInput)
	}

	if req.GuestEmail != "" {
		if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
			return fmt.Errorf("%w: invalid guest email: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateCapacity проверяет, что номер вмещает указанное число гостей
func validateCapacity(room *domain.Room, guests int) error {
	if !room.CanHost(guests) {
		return fmt.Errorf("%w: room %q hosts at most %d guests, requested %d",
			ErrInvalidInput, room.Name, room.Capacity, guests)
	}
	return nil
}
