package get_session

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/identity/models"
)

// SessionResponse текущая сессия и признак администратора
type SessionResponse struct {
	User      models.IdentityResponse `json:"user"`
	IsAdmin   bool                    `json:"isAdmin"`
	ExpiresAt time.Time               `json:"expiresAt"`
}

func fromDomain(session *domain.Session, isAdmin bool) *SessionResponse {
	return &SessionResponse{
		User:      models.FromDomainIdentity(session.User),
		IsAdmin:   isAdmin,
		ExpiresAt: session.ExpiresAt,
	}
}
