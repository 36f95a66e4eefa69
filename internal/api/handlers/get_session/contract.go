package get_session

import (
	"context"

	"github.com/google/uuid"
)

type AdminGate interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
