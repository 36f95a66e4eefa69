package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр административного списка бронирований
type ListBookingsRequest struct {
	Status      *string `json:"status,omitempty"`
	RoomID      *string `json:"roomId,omitempty"`
	CheckInFrom *string `json:"checkInFrom,omitempty"` // "2024-06-01"
	CheckInTo   *string `json:"checkInTo,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.RoomID != nil {
		roomID, err := uuid.Parse(*r.RoomID)
		if err != nil {
			return filter, fmt.Errorf("roomId: %w", err)
		}
		filter.RoomID = &roomID
	}

	if r.CheckInFrom != nil {
		from, err := time.Parse(domain.DateFormat, *r.CheckInFrom)
		if err != nil {
			return filter, fmt.Errorf("checkInFrom: %w", err)
		}
		filter.CheckInFrom = &from
	}

	if r.CheckInTo != nil {
		to, err := time.Parse(domain.DateFormat, *r.CheckInTo)
		if err != nil {
			return filter, fmt.Errorf("checkInTo: %w", err)
		}
		filter.CheckInTo = &to
	}

	return filter, nil
}

// Response модели

// GuestResponse контакты гостя
type GuestResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	RoomID      string        `json:"roomId"`
	CheckIn     string        `json:"checkIn"`  // "2024-06-01"
	CheckOut    string        `json:"checkOut"` // "2024-06-03"
	Nights      int           `json:"nights"`
	Guests      int           `json:"guests"`
	Guest       GuestResponse `json:"guest"`
	TotalPrice  int64         `json:"totalPrice"`
	Status      string        `json:"status"`
	CancelledAt *string       `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:       b.ID.String(),
		UserID:   b.UserID.String(),
		RoomID:   b.RoomID.String(),
		CheckIn:  b.CheckIn.Format(domain.DateFormat),
		CheckOut: b.CheckOut.Format(domain.DateFormat),
		Nights:   domain.Nights(b.CheckIn, b.CheckOut),
		Guests:   b.Guests,
		Guest: GuestResponse{
			Name:  b.Guest.Name,
			Phone: b.Guest.Phone,
			Email: b.Guest.Email,
		},
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// Пустой список кодируется как [], а не null
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
