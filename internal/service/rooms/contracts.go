package rooms

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.RoomPatch) (*domain.Room, error)
}

// AdminGate проверка прав администратора
type AdminGate interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
