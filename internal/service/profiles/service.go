package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	profileRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/profiles/models"
)

// Service профили гостей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя, создавая пустой при отсутствии
func (s *Service) Get(ctx context.Context, actor *domain.Identity) (*models.ProfileResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	profile, err := s.profileRepo.EnsureExists(ctx, actor.ID, actor.Email)
	if err != nil {
		s.logger.Error("Get: failed to load profile for user=%s: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrStore, err)
	}

	return models.FromDomainProfile(profile), nil
}

// Update сохраняет имя пользователя (upsert по user_id)
func (s *Service) Update(ctx context.Context, actor *domain.Identity, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	s.logger.Info("Update: updating profile of user=%s", actor.ID)

	fullName := strings.TrimSpace(req.FullName)
	if utf8.RuneCountInString(fullName) > domain.MaxFullNameLength {
		return nil, fmt.Errorf("%w: full name is longer than %d characters", ErrInvalidInput, domain.MaxFullNameLength)
	}

	profile, err := s.profileRepo.Upsert(ctx, &domain.Profile{
		UserID:   actor.ID,
		FullName: fullName,
		Email:    actor.Email,
	})
	if err != nil {
		s.logger.Error("Update: repository error for user=%s: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStore, err)
	}

	return models.FromDomainProfile(profile), nil
}

// SetAdmin выдает или снимает права администратора
// Вызывается только из операторской CLI-команды
func (s *Service) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.profileRepo.SetAdminByEmail(ctx, email, isAdmin); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("SetAdmin: profile with email=%s not found", email)
			return ErrProfileNotFound
		}
		s.logger.Error("SetAdmin: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: SetAdmin - repository error: %v", ErrStore, err)
	}

	s.logger.Info("SetAdmin: email=%s is_admin=%t", email, isAdmin)
	return nil
}
