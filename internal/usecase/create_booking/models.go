package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID     uuid.UUID
	CheckIn    time.Time // дата заезда (без времени)
	CheckOut   time.Time // дата выезда, строго позже заезда
	Guests     int
	GuestName  string
	GuestPhone string
	GuestEmail string // опционально, по умолчанию email пользователя
}

// Config параметры создания бронирования
type Config struct {
	InitialStatus  string
	RejectOverlaps bool
	MaxNights      int
	Currency       string
	Locale         string // для форматирования цены в письме, например "en-IN"
	TemplateID     string
	NotifyTimeout  time.Duration
}
