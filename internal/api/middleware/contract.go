package middleware

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// SessionResolver проверяет токен и возвращает сессию
type SessionResolver interface {
	GetSession(ctx context.Context, rawToken string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
