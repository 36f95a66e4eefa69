package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ErrUnknownStatus is returned by ParseBookingStatus for values outside the lifecycle
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// transitions допустимые переходы статусов
// cancelled и completed терминальные
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: nil,
	StatusCompleted: nil,
}

// ParseBookingStatus converts a raw value into a known BookingStatus
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}

// IsValid reports whether the status belongs to the lifecycle
func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal returns true for statuses without outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// IsActive returns true if the booking still holds the room
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether s -> to is one of the legal edges
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// OwnerMayApply returns true if a non-admin owner may move a booking into the status.
// Owners can only cancel; confirmation and completion are admin actions.
func (s BookingStatus) OwnerMayApply() bool {
	return s == StatusCancelled
}

// GuestContact is the contact information of the guest staying in the room
type GuestContact struct {
	Name  string
	Phone string
	Email string
}

// Booking represents a room reservation
type Booking struct {
	ID         uuid.UUID
	UserID     uuid.UUID // владелец бронирования
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Guest      GuestContact
	TotalPrice int64 // в минимальных единицах валюты, фиксируется при создании
	Status     BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// Nights returns the number of nights between check-in and check-out, rounded up.
// Returns 0 when checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// TotalPrice returns the price of a stay
func TotalPrice(pricePerNight int64, nights int) int64 {
	return pricePerNight * int64(nights)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID      *uuid.UUID     // Только бронирования пользователя (опционально)
	RoomID      *uuid.UUID     // Фильтр по номеру (опционально)
	Status      *BookingStatus // Фильтр по статусу (опционально)
	CheckInFrom *time.Time     // check_in >= CheckInFrom
	CheckInTo   *time.Time     // check_in <= CheckInTo
}

// Availability result of an advisory availability check
type Availability struct {
	RoomID    uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Available bool
	Conflicts int
}
