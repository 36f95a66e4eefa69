package sign_up

import (
	"context"

	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity/models"
)

type IdentityService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.IdentityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
