package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

type RoomCounter interface {
	Count(ctx context.Context) (int64, error)
}

type ProfileCounter interface {
	Count(ctx context.Context) (int64, error)
}

type BookingAggregator interface {
	Count(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context, statuses []domain.BookingStatus) (int64, error)
}

type AdminGate interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
