package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// UpdateProfileRequest запрос на обновление профиля
// Флаг администратора здесь не принимается
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	UserID      string     `json:"userId"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	IsAdmin     bool       `json:"isAdmin"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		UserID:      p.UserID.String(),
		FullName:    p.FullName,
		Email:       p.Email,
		IsAdmin:     p.IsAdmin,
		LastLoginAt: p.LastLoginAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
