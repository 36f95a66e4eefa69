package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
)

type mockBookingRepo struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByUserIDFunc  func(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListFunc         func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CancelFunc       func(ctx context.Context, id uuid.UUID) error
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.GetByUserIDFunc(ctx, userID, status)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	return m.CancelFunc(ctx, id)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	return m.UpdateStatusFunc(ctx, id, from, to)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type mockGate struct {
	admins map[uuid.UUID]bool
	err    error
	calls  int
}

func (m *mockGate) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return m.admins[userID], nil
}

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

type fixture struct {
	owner   *domain.Identity
	admin   *domain.Identity
	other   *domain.Identity
	booking *domain.Booking
	repo    *mockBookingRepo
	gate    *mockGate
	svc     *Service
}

func newFixture(status domain.BookingStatus) *fixture {
	f := &fixture{
		owner: &domain.Identity{ID: uuid.New(), Email: "owner@example.com"},
		admin: &domain.Identity{ID: uuid.New(), Email: "admin@example.com"},
		other: &domain.Identity{ID: uuid.New(), Email: "other@example.com"},
	}
	f.booking = &domain.Booking{
		ID:         uuid.New(),
		UserID:     f.owner.ID,
		RoomID:     uuid.New(),
		CheckIn:    day("2024-06-01"),
		CheckOut:   day("2024-06-03"),
		Guests:     2,
		TotalPrice: 30000,
		Status:     status,
	}
	f.repo = &mockBookingRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
			if id != f.booking.ID {
				return nil, bookingRepo.ErrBookingNotFound
			}
			copied := *f.booking
			return &copied, nil
		},
		CancelFunc: func(ctx context.Context, id uuid.UUID) error {
			if !f.booking.Status.IsActive() {
				return bookingRepo.ErrStatusConflict
			}
			f.booking.Status = domain.StatusCancelled
			return nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
			if f.booking.Status != from {
				return bookingRepo.ErrStatusConflict
			}
			f.booking.Status = to
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			if id != f.booking.ID {
				return bookingRepo.ErrBookingNotFound
			}
			return nil
		},
	}
	f.gate = &mockGate{admins: map[uuid.UUID]bool{f.admin.ID: true}}
	f.svc = NewService(f.repo, f.gate, logger.NewNop())
	return f
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		actor   func(f *fixture) *domain.Identity
		wantErr error
	}{
		{"owner cancels confirmed", domain.StatusConfirmed, func(f *fixture) *domain.Identity { return f.owner }, nil},
		{"owner cancels pending", domain.StatusPending, func(f *fixture) *domain.Identity { return f.owner }, nil},
		{"admin cancels foreign booking", domain.StatusConfirmed, func(f *fixture) *domain.Identity { return f.admin }, nil},
		{"stranger is denied", domain.StatusConfirmed, func(f *fixture) *domain.Identity { return f.other }, ErrAccessDenied},
		{"completed is terminal", domain.StatusCompleted, func(f *fixture) *domain.Identity { return f.owner }, ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, func(f *fixture) *domain.Identity { return f.admin }, ErrInvalidTransition},
		{"no session", domain.StatusConfirmed, func(f *fixture) *domain.Identity { return nil }, ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status)

			resp, err := f.svc.Cancel(context.Background(), tt.actor(f), f.booking.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, f.booking.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cancelled", resp.Status)
			assert.NotNil(t, resp.CancelledAt)
			assert.Equal(t, domain.StatusCancelled, f.booking.Status)
		})
	}
}

func TestService_Cancel_OwnerSkipsGate(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	f.gate.err = errors.New("gate down")

	_, err := f.svc.Cancel(context.Background(), f.owner, f.booking.ID)
	require.NoError(t, err)
	assert.Zero(t, f.gate.calls)
}

func TestService_Cancel_NotFound(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	_, err := f.svc.Cancel(context.Background(), f.owner, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_LostRace(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	f.repo.CancelFunc = func(ctx context.Context, id uuid.UUID) error {
		return bookingRepo.ErrStatusConflict
	}

	_, err := f.svc.Cancel(context.Background(), f.owner, f.booking.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_TransitionTable(t *testing.T) {
	all := []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted}

	for _, from := range all {
		for _, to := range all {
			f := newFixture(from)
			_, err := f.svc.UpdateStatus(context.Background(), f.admin, f.booking.ID, string(to))

			if from.CanTransitionTo(to) {
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, f.booking.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, f.booking.Status)
			}
		}
	}
}

func TestService_UpdateStatus_CompletedToConfirmed(t *testing.T) {
	f := newFixture(domain.StatusCompleted)
	_, err := f.svc.UpdateStatus(context.Background(), f.admin, f.booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_ErrorOrder(t *testing.T) {
	f := newFixture(domain.StatusPending)

	_, err := f.svc.UpdateStatus(context.Background(), f.other, uuid.New(), "archived")
	assert.ErrorIs(t, err, ErrInvalidInput, "unknown status is reported before authorization")

	_, err = f.svc.UpdateStatus(context.Background(), f.other, uuid.New(), "confirmed")
	assert.ErrorIs(t, err, ErrAccessDenied, "authorization is checked before lookup")

	_, err = f.svc.UpdateStatus(context.Background(), f.admin, uuid.New(), "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.UpdateStatus(context.Background(), f.owner, f.booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrAccessDenied, "owners cannot confirm their own bookings")
}

func TestService_UpdateStatus_GateFailureDenies(t *testing.T) {
	f := newFixture(domain.StatusPending)
	f.gate.err = errors.New("connection refused")

	_, err := f.svc.UpdateStatus(context.Background(), f.admin, f.booking.ID, "confirmed")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, f.booking.Status)
}

func TestService_GetByID(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	resp, err := f.svc.GetByID(context.Background(), f.owner, f.booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, int64(30000), resp.TotalPrice)

	_, err = f.svc.GetByID(context.Background(), f.admin, f.booking.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), f.other, f.booking.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserBookings(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	f.repo.GetByUserIDFunc = func(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
		assert.Equal(t, f.owner.ID, userID)
		return nil, nil
	}

	resp, err := f.svc.GetUserBookings(context.Background(), f.owner, nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)

	_, err = f.svc.GetUserBookings(context.Background(), f.owner, ptr.Ptr("archived"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.repo.GetByUserIDFunc = func(ctx context.Context, userID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
		return nil, errors.New("connection reset")
	}
	_, err = f.svc.GetUserBookings(context.Background(), f.owner, nil)
	assert.ErrorIs(t, err, ErrStore)
}

func TestService_List(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)
	roomID := uuid.New()
	f.repo.ListFunc = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		require.NotNil(t, filter.Status)
		assert.Equal(t, domain.StatusPending, *filter.Status)
		assert.Equal(t, roomID, *filter.RoomID)
		assert.Equal(t, day("2024-06-01"), *filter.CheckInFrom)
		return []*domain.Booking{f.booking}, nil
	}

	req := &models.ListBookingsRequest{
		Status:      ptr.Ptr("pending"),
		RoomID:      ptr.Ptr(roomID.String()),
		CheckInFrom: ptr.Ptr("2024-06-01"),
	}

	resp, err := f.svc.List(context.Background(), f.admin, req)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = f.svc.List(context.Background(), f.owner, req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.List(context.Background(), f.admin, &models.ListBookingsRequest{CheckInTo: ptr.Ptr("06/30/2024")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(domain.StatusCompleted)

	assert.NoError(t, f.svc.Delete(context.Background(), f.admin, f.booking.ID))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), f.owner, f.booking.ID), ErrAccessDenied)
	assert.ErrorIs(t, f.svc.Delete(context.Background(), f.admin, uuid.New()), ErrBookingNotFound)
}
