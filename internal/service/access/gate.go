package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	profileRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/profile"
)

// Gate отвечает на вопрос "является ли пользователь администратором"
// Источник истины: profiles.is_admin
type Gate struct {
	profiles ProfileRepository
	logger   Logger
}

func NewGate(profiles ProfileRepository, logger Logger) *Gate {
	return &Gate{
		profiles: profiles,
		logger:   logger,
	}
}

// IsAdmin возвращает (false, nil), если профиля нет.
// При ошибке хранилища возвращает (false, ErrGateUnavailable): вызывающий трактует это как "не админ".
func (g *Gate) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	isAdmin, err := g.profiles.IsAdmin(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return false, nil
		}
		g.logger.Error("IsAdmin: failed to read admin flag for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: %v", ErrGateUnavailable, err)
	}

	return isAdmin, nil
}

// Check удобная обертка для сервисов: любая ошибка гейта означает "не админ"
func Check(ctx context.Context, gate AdminChecker, userID uuid.UUID, logger Logger) bool {
	isAdmin, err := gate.IsAdmin(ctx, userID)
	if err != nil {
		logger.Error("admin check failed for user=%s, treating as non-admin: %v", userID, err)
		return false
	}
	return isAdmin
}
