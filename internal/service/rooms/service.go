package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/access"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/rooms/models"
)

// Service каталог номеров
type Service struct {
	roomRepo RoomRepository
	gate     AdminGate
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, gate AdminGate, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		gate:     gate,
		logger:   logger,
	}
}

// List возвращает каталог по возрастанию цены
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStore, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStore, err)
	}

	return models.FromDomainRoom(room), nil
}

// Update частично обновляет номер
// Доступно только администраторам
func (s *Service) Update(ctx context.Context, actor *domain.Identity, id uuid.UUID, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	s.logger.Info("Update: updating room id=%s by user=%s", id, actor.ID)

	if !access.Check(ctx, s.gate, actor.ID, s.logger) {
		s.logger.Warn("Update: user=%s is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	patch := req.ToDomainPatch()
	if err := validatePatch(patch); err != nil {
		s.logger.Warn("Update: invalid patch for room id=%s: %v", id, err)
		return nil, err
	}

	room, err := s.roomRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrStore, err)
	}

	s.logger.Info("Update: successfully updated room id=%s", id)
	return models.FromDomainRoom(room), nil
}

// validatePatch проверяет каждое переданное поле
func validatePatch(p domain.RoomPatch) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if p.Type != nil && strings.TrimSpace(*p.Type) == "" {
		return fmt.Errorf("%w: type must not be empty", ErrInvalidInput)
	}
	if p.Price != nil && *p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if p.Capacity != nil && *p.Capacity < domain.MinGuests {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	if p.Size != nil && *p.Size < 0 {
		return fmt.Errorf("%w: size must not be negative", ErrInvalidInput)
	}
	if p.Amenities != nil && hasBlank(*p.Amenities) {
		return fmt.Errorf("%w: amenities must not contain empty labels", ErrInvalidInput)
	}
	if p.Images != nil && hasBlank(*p.Images) {
		return fmt.Errorf("%w: images must not contain empty references", ErrInvalidInput)
	}
	return nil
}

func hasBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
