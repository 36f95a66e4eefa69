package stats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/access"
)

// StatsResponse сводка для панели администратора
type StatsResponse struct {
	TotalRooms    int64 `json:"totalRooms"`
	TotalBookings int64 `json:"totalBookings"`
	TotalProfiles int64 `json:"totalProfiles"`
	Revenue       int64 `json:"revenue"`
}

type Service struct {
	rooms    RoomCounter
	bookings BookingAggregator
	profiles ProfileCounter
	gate     AdminGate
	logger   Logger
}

func NewService(rooms RoomCounter, bookings BookingAggregator, profiles ProfileCounter, gate AdminGate, logger Logger) *Service {
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		profiles: profiles,
		gate:     gate,
		logger:   logger,
	}
}

// Get считает количество номеров, бронирований, профилей и выручку
// Выручка: сумма total_price по confirmed и completed
func (s *Service) Get(ctx context.Context, actor *domain.Identity) (*StatsResponse, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !access.Check(ctx, s.gate, actor.ID, s.logger) {
		s.logger.Warn("Get: user=%s is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	var (
		stats domain.DashboardStats
		err   error
	)

	if stats.TotalRooms, err = s.rooms.Count(ctx); err != nil {
		return nil, s.storeError("count rooms", err)
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, s.storeError("count bookings", err)
	}
	if stats.TotalProfiles, err = s.profiles.Count(ctx); err != nil {
		return nil, s.storeError("count profiles", err)
	}
	if stats.Revenue, err = s.bookings.SumRevenue(ctx, domain.RevenueStatuses); err != nil {
		return nil, s.storeError("sum revenue", err)
	}

	return &StatsResponse{
		TotalRooms:    stats.TotalRooms,
		TotalBookings: stats.TotalBookings,
		TotalProfiles: stats.TotalProfiles,
		Revenue:       stats.Revenue,
	}, nil
}

func (s *Service) storeError(op string, err error) error {
	s.logger.Error("Get: failed to %s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
