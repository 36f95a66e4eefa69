package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type counterFunc func(ctx context.Context) (int64, error)

func (f counterFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

type mockBookings struct {
	count    int64
	revenue  int64
	err      error
	statuses []domain.BookingStatus
}

func (m *mockBookings) Count(ctx context.Context) (int64, error) { return m.count, nil }

func (m *mockBookings) SumRevenue(ctx context.Context, statuses []domain.BookingStatus) (int64, error) {
	m.statuses = statuses
	return m.revenue, m.err
}

type mockGate struct{ admin bool }

func (m mockGate) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) { return m.admin, nil }

func constCount(n int64) counterFunc {
	return func(ctx context.Context) (int64, error) { return n, nil }
}

func TestService_Get(t *testing.T) {
	actor := &domain.Identity{ID: uuid.New()}
	bookings := &mockBookings{count: 7, revenue: 95000}

	svc := NewService(constCount(4), bookings, constCount(3), mockGate{admin: true}, logger.NewNop())
	resp, err := svc.Get(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, &StatsResponse{TotalRooms: 4, TotalBookings: 7, TotalProfiles: 3, Revenue: 95000}, resp)
	assert.Equal(t, []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted}, bookings.statuses)
}

func TestService_Get_Errors(t *testing.T) {
	actor := &domain.Identity{ID: uuid.New()}

	_, err := NewService(constCount(4), &mockBookings{}, constCount(3), mockGate{admin: true}, logger.NewNop()).Get(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = NewService(constCount(4), &mockBookings{}, constCount(3), mockGate{admin: false}, logger.NewNop()).Get(context.Background(), actor)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = NewService(constCount(4), &mockBookings{err: errors.New("boom")}, constCount(3), mockGate{admin: true}, logger.NewNop()).Get(context.Background(), actor)
	assert.ErrorIs(t, err, ErrStore)
}
