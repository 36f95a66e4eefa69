package get_profile

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/profiles/models"
)

type ProfileService interface {
	Get(ctx context.Context, actor *domain.Identity) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
