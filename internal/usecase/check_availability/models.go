package check_availability

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса проверки доступности
type Request struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

// Response модель ответа
type Response struct {
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Nights    int    `json:"nights"`
	Available bool   `json:"available"`
	Conflicts int    `json:"conflicts"`
	// Стоимость проживания, если забронировать сейчас
	TotalPrice int64 `json:"totalPrice"`
}
