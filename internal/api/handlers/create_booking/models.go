package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID     string `json:"roomId"`
	CheckIn    string `json:"checkIn"`  // "2024-06-01"
	CheckOut   string `json:"checkOut"` // "2024-06-03"
	Guests     int    `json:"guests"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	GuestEmail string `json:"guestEmail,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return nil, fmt.Errorf("roomId: %w", err)
	}

	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &createBooking.Request{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		GuestEmail: r.GuestEmail,
	}, nil
}
