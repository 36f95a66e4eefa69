package access

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository источник флага администратора
type ProfileRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminChecker то, что сервисы используют как гейт
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
