package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
)

type mockRoomRepo struct {
	room *domain.Room
	err  error
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.room, nil
}

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.RoomID == roomID && b.Status.IsActive() && b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			out = append(out, b)
		}
	}
	return out, nil
}

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func TestExecute(t *testing.T) {
	room := &domain.Room{ID: uuid.New(), Name: "Suite Room", Price: 25000, Capacity: 2}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{RoomID: room.ID, CheckIn: day("2024-06-01"), CheckOut: day("2024-06-03"), Status: domain.StatusConfirmed},
		{RoomID: room.ID, CheckIn: day("2024-06-10"), CheckOut: day("2024-06-12"), Status: domain.StatusCancelled},
	}}
	uc := NewUseCase(&mockRoomRepo{room: room}, bookings, logger.NewNop())

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		available bool
		conflicts int
	}{
		{"overlapping confirmed booking", "2024-06-02", "2024-06-04", false, 1},
		{"check-in on previous check-out", "2024-06-03", "2024-06-05", true, 0},
		{"check-out on existing check-in", "2024-05-30", "2024-06-01", true, 0},
		{"cancelled booking ignored", "2024-06-10", "2024-06-12", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				RoomID:   room.ID,
				CheckIn:  day(tt.checkIn),
				CheckOut: day(tt.checkOut),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, resp.Available)
			assert.Equal(t, tt.conflicts, resp.Conflicts)
			assert.Equal(t, int64(50000), resp.TotalPrice)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	room := &domain.Room{ID: uuid.New(), Price: 10000, Capacity: 1}

	t.Run("invalid range", func(t *testing.T) {
		uc := NewUseCase(&mockRoomRepo{room: room}, &mockBookingRepo{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{RoomID: room.ID, CheckIn: day("2024-06-03"), CheckOut: day("2024-06-03")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("room not found", func(t *testing.T) {
		uc := NewUseCase(&mockRoomRepo{err: roomRepo.ErrRoomNotFound}, &mockBookingRepo{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{RoomID: room.ID, CheckIn: day("2024-06-01"), CheckOut: day("2024-06-02")})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		uc := NewUseCase(&mockRoomRepo{room: room}, &mockBookingRepo{err: errors.New("timeout")}, logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{RoomID: room.ID, CheckIn: day("2024-06-01"), CheckOut: day("2024-06-02")})
		assert.ErrorIs(t, err, ErrStore)
	})
}
