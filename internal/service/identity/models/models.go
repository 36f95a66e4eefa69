package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// SignUpRequest запрос на регистрацию
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse данные пользователя
type IdentityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionResponse выданный токен доступа
type SessionResponse struct {
	AccessToken string           `json:"accessToken"`
	TokenType   string           `json:"tokenType"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	User        IdentityResponse `json:"user"`
}

func FromDomainIdentity(i domain.Identity) IdentityResponse {
	return IdentityResponse{
		ID:    i.ID.String(),
		Email: i.Email,
	}
}

func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
		User:        FromDomainIdentity(s.User),
	}
}
